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
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// maximum length of a single line of input.
const inputBuffLen = 255

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	ch8  *hardware.Chip8
	scr  gui.GUI
	term terminal.Terminal

	// the linear sweep disassembly of the attached cartridge. the DISASM
	// command writes this; the prompt and the step feedback decode live
	// from memory instead, because memory may have changed
	dsm *disassembly.Disassembly

	breakpoints *breakpoints

	// events that the emulation and the terminal need to respond to,
	// wherever the control happens to be
	events *terminal.ReadEvents

	// buffer for the current line of user input
	input []byte

	// set by the RUN command (and friends). the input loop hands control
	// to the emulation until a halt condition is met
	runUntilHalt bool

	// set when the debugging session should end as soon as possible
	quit bool
}

// NewDebugger creates and initialises everything required by the debugger.
func NewDebugger(ch8 *hardware.Chip8, scr gui.GUI, term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		ch8:         ch8,
		scr:         scr,
		term:        term,
		breakpoints: newBreakpoints(),
		input:       make([]byte, inputBuffLen),
	}

	dbg.events = &terminal.ReadEvents{
		GuiEvents:       make(chan gui.Event, 2),
		GuiEventHandler: dbg.guiEventHandler,
		IntEvents:       make(chan os.Signal, 1),
	}

	err := scr.SetFeature(gui.ReqSetEventChan, dbg.events.GuiEvents)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return dbg, nil
}

// Start the main debugger sequence. The debugger is not reusable: once
// Start() returns the session is over.
func (dbg *Debugger) Start(initScript string, cartload cartridgeloader.Loader) error {
	err := dbg.ch8.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	dbg.dsm = disassembly.FromMemory(dbg.ch8.Mem, memory.OriginProgram, len(cartload.Data))

	err = dbg.scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	// ctrl-c is an event like any other. while the emulation is running it
	// halts; while the terminal is reading it ends the session
	signal.Notify(dbg.events.IntEvents, os.Interrupt)

	err = dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(newTabCompletion())

	if initScript != "" {
		err = dbg.playScript(initScript)
		if err != nil {
			dbg.printLine(terminal.StyleError, "error running debugger initialisation script: %v", err)
		}
	}

	err = dbg.inputLoop()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	return nil
}

// buildPrompt decodes the instruction at the current program counter. The
// decode is from live memory, not the stored disassembly, so self-modified
// code shows its current form.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	if dbg.ch8.CPU.IsWaiting() {
		return terminal.Prompt{
			Type:    terminal.PromptTypeStep,
			Content: "waiting on key",
		}
	}

	addr := dbg.ch8.CPU.PC.Address()

	result := execution.Result{
		Address: addr,
		Opcode:  dbg.ch8.Mem.ReadWord(addr),
	}
	result.Fields = instructions.FieldsOf(result.Opcode)
	result.Defn, _ = instructions.Decode(result.Opcode)

	return terminal.Prompt{
		Type:    terminal.PromptTypeStep,
		Content: disassembly.FormatResult(result).String(),
	}
}
