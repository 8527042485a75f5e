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

package debugger

import (
	"io"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// inputLoop is the heart of the debugger. Control passes between the
// terminal and the running emulation; breakpoints, interrupts and gui
// events bring it back.
func (dbg *Debugger) inputLoop() error {
	for !dbg.quit {
		if dbg.runUntilHalt {
			dbg.runUntilHalt = false
			dbg.runMachine()
			continue
		}

		n, err := dbg.term.TermRead(dbg.input, dbg.buildPrompt(), dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.handleInterrupt()
				continue
			}
			if curated.Is(err, terminal.UserQuit) {
				dbg.quit = true
				continue
			}
			if err == io.EOF {
				dbg.quit = true
				continue
			}
			return err
		}

		if n == 0 {
			continue
		}

		err = dbg.parseInput(string(dbg.input[:n]))
		if err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// handleInterrupt deals with a ctrl-c arriving at the command prompt. An
// interactive session asks for confirmation; a second ctrl-c, or input from
// a non-interactive terminal, quits immediately.
func (dbg *Debugger) handleInterrupt() {
	if !dbg.term.IsInteractive() {
		dbg.quit = true
		return
	}

	confirm := make([]byte, 32)
	n, err := dbg.term.TermRead(confirm,
		terminal.Prompt{Type: terminal.PromptTypeConfirm, Content: "really quit (y/n) "},
		dbg.events)
	if err != nil {
		dbg.quit = true
		return
	}

	if n > 0 && (confirm[0] == 'y' || confirm[0] == 'Y') {
		dbg.quit = true
	}
}

// runMachine hands control to the emulation until a halt condition: a
// breakpoint, a ctrl-c, a request from the gui, or a CPU error.
//
// The recoverable CPU errors halt the emulation rather than ending the
// session. The machine is in a consistent state and can be inspected, or
// even resumed.
func (dbg *Debugger) runMachine() {
	// if the program counter is sitting on a breakpoint, step over it
	// first. otherwise the check below halts before anything has run
	if dbg.breakpoints.check(dbg.ch8.CPU.PC.Address()) {
		err := dbg.ch8.Step()
		if err != nil {
			dbg.printExecutionError(err)
			return
		}
	}

	err := dbg.ch8.Run(dbg.checkContinue)
	if err != nil {
		if curated.Is(err, terminal.UserInterrupt) {
			dbg.printLine(terminal.StyleFeedback, "emulation halted")
			return
		}
		if curated.Is(err, terminal.UserQuit) {
			dbg.quit = true
			return
		}
		dbg.printExecutionError(err)
	}
}

// checkContinue is the continueCheck function for the running emulation.
func (dbg *Debugger) checkContinue() (bool, error) {
	select {
	case <-dbg.events.IntEvents:
		return false, curated.Errorf(terminal.UserInterrupt)
	case ev := <-dbg.events.GuiEvents:
		err := dbg.events.GuiEventHandler(ev)
		if err != nil {
			return false, err
		}
	default:
	}

	if dbg.breakpoints.check(dbg.ch8.CPU.PC.Address()) {
		dbg.printLine(terminal.StyleFeedback, "break at $%04x", dbg.ch8.CPU.PC.Address())
		return false, nil
	}

	return true, nil
}

// the CPU errors that leave the machine in a consistent, inspectable state
// halt the emulation. anything else is printed too but there is nothing
// more we can say about it.
func (dbg *Debugger) printExecutionError(err error) {
	dbg.printLine(terminal.StyleError, "%v", err)
	if curated.Has(err, instructions.UnimplementedInstruction) || curated.Has(err, cpu.StackUnderflow) {
		dbg.printLine(terminal.StyleFeedback, "emulation halted")
	}
}
