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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/random"
)

// Sentinal error returned by ExecuteInstruction().
const (
	StackUnderflow = "cpu: return with an empty call stack (%#04x)"
)

// StackDepth is the nesting level the call stack is sized for on creation.
// It is a starting capacity and not a limit. Programs that nest deeper
// simply cause the stack to grow.
const StackDepth = 16

// CPU implements the instruction interpreter at the centre of the CHIP-8
// machine. Register logic is implemented by the types in the registers
// sub-package.
type CPU struct {
	PC registers.ProgramCounter
	I  registers.Index
	V  [16]registers.Register

	// the call stack stores return addresses only. CHIP-8 has no stack
	// pointer register and no general purpose stack access
	Stack []uint16

	// last result. the fields are refreshed on every fetch, so after an
	// execution error they describe the instruction that failed
	LastResult execution.Result

	// state for the key-wait instruction. while waiting is true the CPU
	// does not fetch; each call to ExecuteInstruction() polls the keypad
	// instead and completes the load once a key is found
	waiting bool
	waitReg uint8

	mem *memory.Memory
	dsp *display.Display
	tmr *timer.Timers
	key *keypad.Keypad
	rnd *random.Random
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem *memory.Memory, dsp *display.Display, tmr *timer.Timers, key *keypad.Keypad, rnd *random.Random) *CPU {
	mc := &CPU{
		mem: mem,
		dsp: dsp,
		tmr: tmr,
		key: key,
		rnd: rnd,
		PC:  registers.NewProgramCounter(memory.OriginProgram),
		I:   registers.NewIndex(0),
	}

	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}

	mc.Stack = make([]uint16, 0, StackDepth)

	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s=%s %s stack=%d", mc.PC.Label(), mc.PC, mc.I, len(mc.Stack)))
	if mc.waiting {
		s.WriteString(fmt.Sprintf(" (waiting on key for %s)", mc.V[mc.waitReg].Label()))
	}
	for i := range mc.V {
		if i%8 == 0 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
		s.WriteString(mc.V[i].String())
	}
	return s.String()
}

// Reset reinitialises all registers and empties the call stack. The program
// counter is loaded with the program origin address.
func (mc *CPU) Reset() {
	mc.PC.Load(memory.OriginProgram)
	mc.I.Load(0)
	for i := range mc.V {
		mc.V[i].Load(0)
	}
	mc.Stack = mc.Stack[:0]
	mc.waiting = false
	mc.waitReg = 0
	mc.LastResult = execution.Result{}
}

// IsWaiting returns true if the CPU has been suspended by the key-wait
// instruction and has not yet seen a key.
func (mc *CPU) IsWaiting() bool {
	return mc.waiting
}

// the flag register VF receives the outcome of the arithmetic, shift and
// draw instructions, overwriting whatever value it held. the write always
// happens after the operation itself so the flag survives even when VF is
// also the operand register.
func (mc *CPU) setFlag(set bool) {
	if set {
		mc.V[0xf].Load(1)
	} else {
		mc.V[0xf].Load(0)
	}
}

// ExecuteInstruction fetches, decodes and executes a single instruction.
//
// The program counter advances past the instruction word before the execute
// stage begins. Errors from the execute stage (an unimplemented instruction
// being the most likely) are therefore recoverable: the machine state is
// untouched except for the advanced program counter and the caller can
// carry on calling ExecuteInstruction() if it wants to.
//
// If the CPU is suspended by a previous key-wait instruction, the function
// polls the keypad and returns without fetching anything. Timers and the
// caller's event loop are unaffected by the suspension.
func (mc *CPU) ExecuteInstruction() error {
	if mc.waiting {
		k, ok := mc.key.FirstPressed()
		if !ok {
			return nil
		}
		mc.V[mc.waitReg].Load(k)
		mc.waiting = false
		return nil
	}

	// fetch. the two bytes of the instruction word are read big-endian and
	// the program counter advances immediately
	addr := mc.PC.Address()
	opcode := mc.mem.ReadWord(addr)
	mc.PC.Advance()

	// decode. operand fields are extracted whether or not the word decodes
	// so that a debugger can display them
	mc.LastResult = execution.Result{
		Address: addr,
		Opcode:  opcode,
		Fields:  instructions.FieldsOf(opcode),
	}

	defn, err := instructions.Decode(opcode)
	if err != nil {
		return err
	}
	mc.LastResult.Defn = defn

	f := mc.LastResult.Fields

	// execute
	switch defn.Operator {
	case instructions.Sys:
		// machine code routines for the original COSMAC VIP hardware.
		// nothing sensible to do except refuse
		return curated.Errorf(instructions.UnimplementedInstruction, opcode)

	case instructions.Cls:
		mc.dsp.Clear()

	case instructions.Ret:
		if len(mc.Stack) == 0 {
			return curated.Errorf(StackUnderflow, addr)
		}
		mc.PC.Load(mc.Stack[len(mc.Stack)-1])
		mc.Stack = mc.Stack[:len(mc.Stack)-1]

	case instructions.Jp:
		mc.PC.Load(f.NNN)

	case instructions.Call:
		mc.Stack = append(mc.Stack, mc.PC.Address())
		mc.PC.Load(f.NNN)

	case instructions.SeImm:
		if mc.V[f.X].Value() == f.NN {
			mc.PC.Advance()
		}

	case instructions.SneImm:
		if mc.V[f.X].Value() != f.NN {
			mc.PC.Advance()
		}

	case instructions.SeReg:
		if mc.V[f.X].Value() == mc.V[f.Y].Value() {
			mc.PC.Advance()
		}

	case instructions.LdImm:
		mc.V[f.X].Load(f.NN)

	case instructions.AddImm:
		// the immediate form of ADD never touches the flag register
		mc.V[f.X].Add(f.NN)

	case instructions.LdReg:
		mc.V[f.X].Load(mc.V[f.Y].Value())

	case instructions.Or:
		mc.V[f.X].OR(mc.V[f.Y].Value())

	case instructions.And:
		mc.V[f.X].AND(mc.V[f.Y].Value())

	case instructions.Xor:
		mc.V[f.X].XOR(mc.V[f.Y].Value())

	case instructions.AddReg:
		mc.setFlag(mc.V[f.X].Add(mc.V[f.Y].Value()))

	case instructions.Sub:
		mc.setFlag(mc.V[f.X].Subtract(mc.V[f.Y].Value()))

	case instructions.Shr:
		mc.setFlag(mc.V[f.X].SHR())

	case instructions.Subn:
		mc.setFlag(mc.V[f.X].SubtractFrom(mc.V[f.Y].Value()))

	case instructions.Shl:
		mc.setFlag(mc.V[f.X].SHL())

	case instructions.SneReg:
		if mc.V[f.X].Value() != mc.V[f.Y].Value() {
			mc.PC.Advance()
		}

	case instructions.LdIdx:
		mc.I.Load(f.NNN)

	case instructions.JpV0:
		mc.PC.Load(f.NNN + uint16(mc.V[0].Value()))

	case instructions.Rnd:
		mc.V[f.X].Load(uint8(mc.rnd.Intn(256)) & f.NN)

	case instructions.Drw:
		sprite := make([]uint8, f.N)
		for i := range sprite {
			sprite[i] = mc.mem.Read(mc.I.Address() + uint16(i))
		}
		mc.setFlag(mc.dsp.DrawSprite(mc.V[f.X].Value(), mc.V[f.Y].Value(), sprite))

	case instructions.Skp:
		if mc.key.IsPressed(mc.V[f.X].Value() & 0x0f) {
			mc.PC.Advance()
		}

	case instructions.Sknp:
		if !mc.key.IsPressed(mc.V[f.X].Value() & 0x0f) {
			mc.PC.Advance()
		}

	case instructions.LdDelay:
		mc.V[f.X].Load(mc.tmr.Delay())

	case instructions.LdKey:
		// a key that is already held satisfies the wait immediately
		if k, ok := mc.key.FirstPressed(); ok {
			mc.V[f.X].Load(k)
		} else {
			mc.waiting = true
			mc.waitReg = f.X
		}

	case instructions.SetDelay:
		mc.tmr.SetDelay(mc.V[f.X].Value())

	case instructions.SetSound:
		mc.tmr.SetSound(mc.V[f.X].Value())

	case instructions.AddIdx:
		// no flag side effect, matching the majority of original
		// interpreters
		mc.I.Add(uint16(mc.V[f.X].Value()))

	case instructions.LdFont:
		mc.I.Load(memory.FontAddress(mc.V[f.X].Value()))

	case instructions.Bcd:
		v := mc.V[f.X].Value()
		mc.mem.Write(mc.I.Address(), v/100)
		mc.mem.Write(mc.I.Address()+1, (v/10)%10)
		mc.mem.Write(mc.I.Address()+2, v%10)

	case instructions.Store:
		// the index register itself is left alone, matching modern
		// interpreter behaviour rather than the original COSMAC VIP
		for i := uint16(0); i <= uint16(f.X); i++ {
			mc.mem.Write(mc.I.Address()+i, mc.V[i].Value())
		}

	case instructions.Load:
		for i := uint16(0); i <= uint16(f.X); i++ {
			mc.V[i].Load(mc.mem.Read(mc.I.Address() + i))
		}
	}

	mc.LastResult.Final = true

	return nil
}
