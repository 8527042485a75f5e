// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/random"
)

// InstructionRate is the default number of instructions executed per second.
// There was never a standard clock for CHIP-8 interpreters; this value makes
// the bulk of the surviving software playable.
const InstructionRate = 700.0

// Chip8 is the root of the emulation and contains references to all the
// machine's sub-systems.
type Chip8 struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Timers *timer.Timers
	Keypad *keypad.Keypad
	Random *random.Random

	// the display is not part of the machine but is attached to it
	Display *display.Display

	// the most recently attached cartridge. retained so that Reset() can
	// restore memory to its freshly-loaded state
	cartload cartridgeloader.Loader

	// wall-clock pacing for the Run() loop
	insLimiter *limiter.Limiter
	tmrLimiter *limiter.Limiter

	// pacing for Step() and RunUncapped(), where timer progress is derived
	// from instruction progress rather than the wall-clock. timerAccum
	// carries the fraction of a timer tick owed after each instruction
	instructionRate float32
	timerAccum      float32

	// the number of calls to ExecuteInstruction() since the last Reset().
	// used to seed the random source
	instructionCount uint64
}

// NewChip8 creates a new CHIP-8 machine and everything associated with the
// hardware. It is used for all aspects of emulation: debugging sessions and
// regular play.
func NewChip8(dsp *display.Display) (*Chip8, error) {
	var err error

	ch8 := &Chip8{
		Display:         dsp,
		instructionRate: InstructionRate,
	}

	ch8.Mem = memory.NewMemory()
	ch8.Timers = timer.NewTimers()
	ch8.Keypad = keypad.NewKeypad()
	ch8.Random = random.NewRandom(ch8)
	ch8.CPU = cpu.NewCPU(ch8.Mem, dsp, ch8.Timers, ch8.Keypad, ch8.Random)

	ch8.insLimiter, err = limiter.NewLimiter(InstructionRate)
	if err != nil {
		return nil, err
	}

	ch8.tmrLimiter, err = limiter.NewLimiter(timer.TickHz)
	if err != nil {
		return nil, err
	}

	return ch8, nil
}

// AttachCartridge loads a program into the machine's memory and resets the
// machine. The loader's Load() function is called on the caller's behalf if
// it hasn't been already.
func (ch8 *Chip8) AttachCartridge(cartload cartridgeloader.Loader) error {
	if len(cartload.Data) == 0 {
		err := cartload.Load()
		if err != nil {
			return err
		}
	}
	ch8.cartload = cartload

	return ch8.Reset()
}

// Reset the machine to its launch state. The attached program is preserved;
// everything else (registers, timers, keypad, display, work RAM) returns to
// its power-on value.
func (ch8 *Chip8) Reset() error {
	ch8.Mem.Reset()

	if len(ch8.cartload.Data) > 0 {
		err := ch8.Mem.WriteProgram(ch8.cartload.Data)
		if err != nil {
			return err
		}
	}

	ch8.CPU.Reset()
	ch8.Timers.Reset()
	ch8.Keypad.Reset()
	ch8.Display.Reset()

	ch8.timerAccum = 0
	ch8.instructionCount = 0

	return nil
}

// SetInstructionRate changes how many instructions are executed per second.
// Affects Run() immediately and the Step() timer coupling from the next
// step.
func (ch8 *Chip8) SetInstructionRate(perSecond float32) error {
	err := ch8.insLimiter.SetRate(perSecond)
	if err != nil {
		return err
	}
	ch8.instructionRate = perSecond
	return nil
}

// InstructionCount returns the number of instructions executed since the
// machine was last reset. Satisfies the random.TickCounter interface.
func (ch8 *Chip8) InstructionCount() uint64 {
	return ch8.instructionCount
}

// End cleanly shuts down the machine and everything attached to it.
func (ch8 *Chip8) End() error {
	err := ch8.Timers.End()
	if err != nil {
		return err
	}
	return ch8.Display.End()
}
