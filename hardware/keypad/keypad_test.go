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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestKeypad(t *testing.T) {
	key := keypad.NewKeypad()

	test.Equate(t, key.IsPressed(0x0), false)

	key.SetKey(0xa, true)
	test.Equate(t, key.IsPressed(0xa), true)
	test.Equate(t, key.IsPressed(0xb), false)

	key.SetKey(0xa, false)
	test.Equate(t, key.IsPressed(0xa), false)
}

func TestFirstPressed(t *testing.T) {
	key := keypad.NewKeypad()

	_, ok := key.FirstPressed()
	test.Equate(t, ok, false)

	// the lowest numbered key wins when several are held
	key.SetKey(0xc, true)
	key.SetKey(0x3, true)

	k, ok := key.FirstPressed()
	test.Equate(t, ok, true)
	test.Equate(t, k, 0x3)

	key.SetKey(0x3, false)
	k, ok = key.FirstPressed()
	test.Equate(t, ok, true)
	test.Equate(t, k, 0xc)
}

func TestReset(t *testing.T) {
	key := keypad.NewKeypad()

	key.SetKey(0x0, true)
	key.SetKey(0xf, true)
	key.Reset()

	_, ok := key.FirstPressed()
	test.Equate(t, ok, false)
	test.Equate(t, key.String(), "keys held: none")
}
