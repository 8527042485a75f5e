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

// Package keypad implements the sixteen-key hexadecimal keypad of the
// CHIP-8 machine.
//
// The keypad is written by the input adapter (the SDL screen, or the
// debugger's KEY command) and read by the CPU's key-test and key-wait
// instructions. The CPU never mutates it.
package keypad

import (
	"fmt"
	"strings"
)

// NumKeys is the number of keys on the keypad, labelled 0 to F.
const NumKeys = 16

// Keypad is the current pressed state of the sixteen keys. Key indices are
// 0x0 to 0xf; an out-of-range index is a programming error in the caller
// and panics like any other bad array index.
type Keypad struct {
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

func (key *Keypad) String() string {
	s := strings.Builder{}
	s.WriteString("keys held:")
	held := false
	for k := uint8(0); k < NumKeys; k++ {
		if key.keys[k] {
			s.WriteString(fmt.Sprintf(" %X", k))
			held = true
		}
	}
	if !held {
		s.WriteString(" none")
	}
	return s.String()
}

// Reset releases every key.
func (key *Keypad) Reset() {
	for i := range key.keys {
		key.keys[i] = false
	}
}

// SetKey records the pressed state of a key. Called by the input adapter.
func (key *Keypad) SetKey(k uint8, pressed bool) {
	key.keys[k] = pressed
}

// IsPressed returns the pressed state of a key.
func (key *Keypad) IsPressed(k uint8) bool {
	return key.keys[k]
}

// FirstPressed returns the lowest-numbered key currently pressed. The
// second return value is false if no key is pressed at all. Used by the
// key-wait instruction's polling.
func (key *Keypad) FirstPressed() (uint8, bool) {
	for k := uint8(0); k < NumKeys; k++ {
		if key.keys[k] {
			return k, true
		}
	}
	return 0, false
}
