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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/playmode"
)

// guiEventHandler is called by the emulation's continueCheck and by the
// terminal's TermRead. The keyboard handling is the same as playmode, so
// keypad input works in the debugger window whether the machine is running
// or halted.
func (dbg *Debugger) guiEventHandler(ev gui.Event) error {
	switch ev.ID {
	case gui.EventWindowClose:
		return curated.Errorf(terminal.UserQuit)

	case gui.EventKeyboard:
		cont, err := playmode.KeyboardEventHandler(ev.Data.(gui.EventDataKeyboard), dbg.ch8)
		if err != nil {
			return err
		}
		if !cont {
			return curated.Errorf(terminal.UserQuit)
		}
	}

	return nil
}
