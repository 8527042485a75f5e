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

package playmode

import (
	"strings"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
)

// the conventional mapping of the machine's 4x4 hex pad onto the left side
// of a modern keyboard:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <--  Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keypadMap = map[string]uint8{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// KeyboardEventHandler handles keypresses for play/run mode. The returned
// boolean is false if the event means the emulation should end.
func KeyboardEventHandler(ev gui.EventDataKeyboard, ch8 *hardware.Chip8) (bool, error) {
	key := strings.ToUpper(ev.Key)

	// quit and reset are only meaningful on the way down and unmodified
	if ev.Down && ev.Mod == gui.KeyModNone {
		switch key {
		case "ESCAPE":
			return false, nil
		case "F2":
			return true, ch8.Reset()
		}
	}

	if k, ok := keypadMap[key]; ok {
		ch8.Keypad.SetKey(k, ev.Down)
	}

	return true, nil
}
