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
	"github.com/jetsetilly/gopher8/hardware/timer"
)

// Step executes one instruction and advances the timers in proportion.
//
// The wall-clock limiters play no part here. Timer progress is derived from
// the instruction count instead, so a sequence of Step() calls produces the
// same machine state however quickly it is called. The debugger relies on
// this, as do the regression-style tests that hash the display output.
func (ch8 *Chip8) Step() error {
	ch8.instructionCount++

	err := ch8.CPU.ExecuteInstruction()
	if err != nil {
		return err
	}

	return ch8.stepTimers()
}

// the fractional accumulator keeps the sixty-a-second coupling exact
// whatever the instruction rate. a rate below the timer rate simply means
// more than one timer tick per instruction.
func (ch8 *Chip8) stepTimers() error {
	ch8.timerAccum += timer.TickHz / ch8.instructionRate
	for ch8.timerAccum >= 1.0 {
		ch8.timerAccum -= 1.0

		err := ch8.Timers.Tick()
		if err != nil {
			return err
		}

		err = ch8.Display.NewFrame()
		if err != nil {
			return err
		}
	}
	return nil
}
