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
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/logger"
)

// debugger command set. the tab completion and the help system are built
// from the same list, so a new command needs an entry here, in the help
// map and an arm in enactCommand().
const (
	cmdBreak   = "BREAK"
	cmdClear   = "CLEAR"
	cmdCPU     = "CPU"
	cmdDisasm  = "DISASM"
	cmdDisplay = "DISPLAY"
	cmdDump    = "DUMP"
	cmdHelp    = "HELP"
	cmdKey     = "KEY"
	cmdKeypad  = "KEYPAD"
	cmdLast    = "LAST"
	cmdList    = "LIST"
	cmdLog     = "LOG"
	cmdPeek    = "PEEK"
	cmdPoke    = "POKE"
	cmdQuit    = "QUIT"
	cmdReset   = "RESET"
	cmdRun     = "RUN"
	cmdScript  = "SCRIPT"
	cmdStack   = "STACK"
	cmdStep    = "STEP"
	cmdTimers  = "TIMERS"
)

var help = map[string]string{
	cmdBreak:   "Toggle a breakpoint on the program counter: BREAK <address> [addresses...]",
	cmdClear:   "Clear all breakpoints",
	cmdCPU:     "Display the current state of the CPU registers",
	cmdDisasm:  "Print the disassembly of the attached cartridge: DISASM [BYTECODE]",
	cmdDisplay: "Print the display grid to the terminal",
	cmdDump:    "Write a graphviz visualisation of the machine to file: DUMP [filename]",
	cmdHelp:    "Lists commands and provides help for individual commands: HELP [command]",
	cmdKey:     "Hold a keypad key through a single instruction: KEY <0 to F>",
	cmdKeypad:  "Display the currently held keypad keys",
	cmdLast:    "Print the result of the last instruction executed",
	cmdList:    "List current breakpoints",
	cmdLog:     "Print the session log: LOG [CLEAR]",
	cmdPeek:    "Inspect memory: PEEK <address> [number of bytes]",
	cmdPoke:    "Modify memory: POKE <address> <value> [values...]",
	cmdQuit:    "Exit the debugger",
	cmdReset:   "Reset the machine to its initial state",
	cmdRun:     "Run the machine until a halt condition is met",
	cmdScript:  "Run commands from a script file: SCRIPT <file>",
	cmdStack:   "Display the call stack",
	cmdStep:    "Step forward one or more instructions: STEP [number]",
	cmdTimers:  "Display the delay and sound timers",
}

// parseInput splits the input into individual commands and acts on each
// one in turn.
func (dbg *Debugger) parseInput(input string) error {
	for _, c := range strings.Split(input, ";") {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}

		err := dbg.enactCommand(tokeniseInput(c))
		if err != nil {
			return err
		}

		// no use running anything else once the session is over
		if dbg.quit {
			break
		}
	}

	return nil
}

func (dbg *Debugger) enactCommand(tok *tokens) error {
	command, _ := tok.get()
	command = strings.ToUpper(command)

	switch command {
	default:
		return curated.Errorf("unknown command (%s)", command)

	case cmdHelp:
		if s, ok := tok.get(); ok {
			s = strings.ToUpper(s)
			if h, ok := help[s]; ok {
				dbg.printLine(terminal.StyleHelp, h)
			} else {
				dbg.printLine(terminal.StyleHelp, "no help for %s", s)
			}
			return tok.end()
		}

		commands := make([]string, 0, len(help))
		for c := range help {
			commands = append(commands, c)
		}
		sort.Strings(commands)
		dbg.printLine(terminal.StyleHelp, strings.Join(commands, " "))

	case cmdQuit:
		dbg.quit = true

	case cmdReset:
		err := dbg.ch8.Reset()
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdRun:
		if err := tok.end(); err != nil {
			return err
		}
		dbg.runUntilHalt = true

	case cmdStep:
		num := 1
		if s, ok := tok.get(); ok {
			n, err := parseNumber(s)
			if err != nil {
				return err
			}
			if n < 1 {
				return curated.Errorf(NotANumber, s)
			}
			num = n
		}
		if err := tok.end(); err != nil {
			return err
		}

		for i := 0; i < num; i++ {
			err := dbg.ch8.Step()
			if err != nil {
				dbg.printExecutionError(err)
				break
			}
		}
		dbg.printLastResult(false)

	case cmdLast:
		if err := tok.end(); err != nil {
			return err
		}
		dbg.printLastResult(true)

	case cmdCPU:
		dbg.printLine(terminal.StyleMachineInfo, dbg.ch8.CPU.String())

	case cmdStack:
		dbg.printLine(terminal.StyleMachineInfo, dbg.stackInfo())

	case cmdTimers:
		dbg.printLine(terminal.StyleMachineInfo, dbg.ch8.Timers.String())

	case cmdKeypad:
		dbg.printLine(terminal.StyleMachineInfo, dbg.ch8.Keypad.String())

	case cmdKey:
		k, err := tok.getKey()
		if err != nil {
			return err
		}
		if err := tok.end(); err != nil {
			return err
		}

		// hold the key through exactly one instruction. long enough for a
		// skip-if-key test or a key-wait to see it
		dbg.ch8.Keypad.SetKey(k, true)
		err = dbg.ch8.Step()
		dbg.ch8.Keypad.SetKey(k, false)
		if err != nil {
			dbg.printExecutionError(err)
			return nil
		}
		dbg.printLastResult(false)

	case cmdPeek:
		addr, err := tok.getAddress()
		if err != nil {
			return err
		}

		num := 1
		if s, ok := tok.get(); ok {
			num, err = parseNumber(s)
			if err != nil {
				return err
			}
			if num < 1 {
				return curated.Errorf(NotANumber, s)
			}
		}
		if err := tok.end(); err != nil {
			return err
		}

		dbg.printLine(terminal.StyleMachineInfo, dbg.peekInfo(addr, num))

	case cmdPoke:
		addr, err := tok.getAddress()
		if err != nil {
			return err
		}
		if tok.remaining() == 0 {
			return curated.Errorf(MissingArgument, "value")
		}
		for tok.remaining() > 0 {
			v, err := tok.getByte()
			if err != nil {
				return err
			}
			dbg.ch8.Mem.Write(addr, v)
			addr++
		}

	case cmdBreak:
		addr, err := tok.getAddress()
		if err != nil {
			return err
		}
		for {
			if dbg.breakpoints.toggle(addr) {
				dbg.printLine(terminal.StyleFeedback, "breakpoint set at $%04x", addr)
			} else {
				dbg.printLine(terminal.StyleFeedback, "breakpoint removed from $%04x", addr)
			}

			if tok.remaining() == 0 {
				break
			}
			addr, err = tok.getAddress()
			if err != nil {
				return err
			}
		}

	case cmdList:
		// BREAKS is accepted for typing comfort. breakpoints are the only
		// listable thing
		if s, ok := tok.peek(); ok && strings.ToUpper(s) == "BREAKS" {
			_, _ = tok.get()
		}
		dbg.printLine(terminal.StyleFeedback, dbg.breakpoints.list())

	case cmdClear:
		if s, ok := tok.peek(); ok && strings.ToUpper(s) == "BREAKS" {
			_, _ = tok.get()
		}
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")

	case cmdDisasm:
		attr := disassembly.WriteAttr{}
		if s, ok := tok.get(); ok {
			if strings.ToUpper(s) != "BYTECODE" {
				return curated.Errorf(TrailingTokens, s)
			}
			attr.ByteCode = true
		}

		s := &strings.Builder{}
		err := dbg.dsm.Write(s, attr)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstruction, strings.TrimRight(s.String(), "\n"))

	case cmdDisplay:
		dbg.printLine(terminal.StyleMachineInfo, dbg.displayInfo())

	case cmdDump:
		filename := "gopher8_dump.dot"
		if s, ok := tok.get(); ok {
			filename = s
		}
		if err := tok.end(); err != nil {
			return err
		}

		f, err := os.Create(filename)
		if err != nil {
			return curated.Errorf("dump: %v", err)
		}
		defer f.Close()

		memviz.Map(f, dbg.ch8)
		dbg.printLine(terminal.StyleFeedback, "machine state written to %s", filename)

	case cmdLog:
		if s, ok := tok.get(); ok {
			if strings.ToUpper(s) != "CLEAR" {
				return curated.Errorf(TrailingTokens, s)
			}
			logger.Clear()
			return nil
		}

		s := &strings.Builder{}
		logger.Write(s)
		if s.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
		} else {
			dbg.printLine(terminal.StyleFeedback, strings.TrimRight(s.String(), "\n"))
		}

	case cmdScript:
		s, ok := tok.get()
		if !ok {
			return curated.Errorf(MissingArgument, "script file")
		}
		if err := tok.end(); err != nil {
			return err
		}
		return dbg.playScript(s)
	}

	return tok.end()
}

// printLastResult shows the outcome of the most recent instruction. the
// key-wait suspension has no result to show, so say that instead.
func (dbg *Debugger) printLastResult(bytecode bool) {
	if dbg.ch8.CPU.IsWaiting() {
		dbg.printLine(terminal.StyleInstruction, "waiting on key")
		return
	}

	e := disassembly.FormatResult(dbg.ch8.CPU.LastResult)
	if bytecode {
		dbg.printLine(terminal.StyleInstruction, "%s  %s", e.Bytecode, e.String())
	} else {
		dbg.printLine(terminal.StyleInstruction, e.String())
	}
}

func (dbg *Debugger) stackInfo() string {
	if len(dbg.ch8.CPU.Stack) == 0 {
		return "stack is empty"
	}

	s := strings.Builder{}
	for i := len(dbg.ch8.CPU.Stack) - 1; i >= 0; i-- {
		s.WriteString(fmt.Sprintf("%2d: $%04x", i, dbg.ch8.CPU.Stack[i]))
		if i > 0 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

func (dbg *Debugger) peekInfo(addr uint16, num int) string {
	s := strings.Builder{}
	for i := 0; i < num; i++ {
		if i%8 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("$%04x:", addr+uint16(i)))
		}
		s.WriteString(fmt.Sprintf(" %02x", dbg.ch8.Mem.Read(addr+uint16(i))))
	}
	return s.String()
}
