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
	"testing"

	"github.com/jetsetilly/gopher8/test"
)

func TestTokeniser(t *testing.T) {
	tok := tokeniseInput("BREAK $200 $20a")

	s, ok := tok.get()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "BREAK")
	test.Equate(t, tok.remaining(), 2)

	s, ok = tok.peek()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "$200")
	test.Equate(t, tok.remaining(), 2)

	addr, err := tok.getAddress()
	test.ExpectedSuccess(t, err == nil)
	test.Equate(t, addr, 0x200)

	addr, err = tok.getAddress()
	test.ExpectedSuccess(t, err == nil)
	test.Equate(t, addr, 0x20a)

	test.ExpectedSuccess(t, tok.end() == nil)

	_, ok = tok.get()
	test.ExpectedFailure(t, ok)
}

func TestNumberNotation(t *testing.T) {
	n, err := parseNumber("$2ff")
	test.ExpectedSuccess(t, err == nil)
	test.Equate(t, n, 0x2ff)

	n, err = parseNumber("0x2FF")
	test.ExpectedSuccess(t, err == nil)
	test.Equate(t, n, 0x2ff)

	n, err = parseNumber("512")
	test.ExpectedSuccess(t, err == nil)
	test.Equate(t, n, 512)

	_, err = parseNumber("twelve")
	test.ExpectedFailure(t, err == nil)
}

func TestArgumentValidation(t *testing.T) {
	tok := tokeniseInput("POKE $300 ff 1000")

	_, _ = tok.get()

	addr, err := tok.getAddress()
	test.ExpectedSuccess(t, err == nil)
	test.Equate(t, addr, 0x300)

	// "ff" does not parse as a decimal number and has no hex prefix
	_, err = tok.getByte()
	test.ExpectedFailure(t, err == nil)

	// out of range for a byte
	_, err = tok.getByte()
	test.ExpectedFailure(t, err == nil)

	// exhausted
	_, err = tok.getByte()
	test.ExpectedFailure(t, err == nil)
}

func TestKeyValidation(t *testing.T) {
	tok := tokeniseInput("KEY a")
	_, _ = tok.get()
	k, err := tok.getKey()
	test.ExpectedSuccess(t, err == nil)
	test.Equate(t, k, 0xa)

	tok = tokeniseInput("KEY 10")
	_, _ = tok.get()
	_, err = tok.getKey()
	test.ExpectedFailure(t, err == nil)
}
