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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestFields(t *testing.T) {
	f := instructions.FieldsOf(0xdabc)
	test.Equate(t, f.X, 0x0a)
	test.Equate(t, f.Y, 0x0b)
	test.Equate(t, f.N, 0x0c)
	test.Equate(t, f.NN, 0xbc)
	test.Equate(t, f.NNN, 0x0abc)

	// the address field is the low twelve bits of the word, whatever the
	// instruction type
	f = instructions.FieldsOf(0x1fff)
	test.Equate(t, f.NNN, 0x0fff)
	f = instructions.FieldsOf(0x2000)
	test.Equate(t, f.NNN, 0x0000)
}

func TestDecode(t *testing.T) {
	// one word per operator, chosen with non-zero operand fields so that a
	// sloppy pattern match would be caught
	words := map[uint16]instructions.Operator{
		0x0123: instructions.Sys,
		0x00e0: instructions.Cls,
		0x00ee: instructions.Ret,
		0x1abc: instructions.Jp,
		0x2abc: instructions.Call,
		0x3a42: instructions.SeImm,
		0x4a42: instructions.SneImm,
		0x5ab0: instructions.SeReg,
		0x6a42: instructions.LdImm,
		0x7a42: instructions.AddImm,
		0x8ab0: instructions.LdReg,
		0x8ab1: instructions.Or,
		0x8ab2: instructions.And,
		0x8ab3: instructions.Xor,
		0x8ab4: instructions.AddReg,
		0x8ab5: instructions.Sub,
		0x8ab6: instructions.Shr,
		0x8ab7: instructions.Subn,
		0x8abe: instructions.Shl,
		0x9ab0: instructions.SneReg,
		0xaabc: instructions.LdIdx,
		0xbabc: instructions.JpV0,
		0xca42: instructions.Rnd,
		0xdab5: instructions.Drw,
		0xea9e: instructions.Skp,
		0xeaa1: instructions.Sknp,
		0xfa07: instructions.LdDelay,
		0xfa0a: instructions.LdKey,
		0xfa15: instructions.SetDelay,
		0xfa18: instructions.SetSound,
		0xfa1e: instructions.AddIdx,
		0xfa29: instructions.LdFont,
		0xfa33: instructions.Bcd,
		0xfa55: instructions.Store,
		0xfa65: instructions.Load,
	}

	for word, op := range words {
		defn, err := instructions.Decode(word)
		if test.ExpectedSuccess(t, err) {
			test.Equate(t, int(defn.Operator), int(op))
		}
	}
}

func TestDecodeFailure(t *testing.T) {
	// words that match no encoding pattern
	words := []uint16{
		0x5ab1, // SE with a non-zero low nibble
		0x8ab8, // no ALU operation 8
		0x8abf,
		0x9ab9, // SNE with a non-zero low nibble
		0xea00,
		0xeaff,
		0xfa00,
		0xfa66,
		0xfaff,
	}

	for _, word := range words {
		defn, err := instructions.Decode(word)
		test.ExpectedFailure(t, err)
		test.ExpectedSuccess(t, defn == nil)
		test.ExpectedSuccess(t, curated.Is(err, instructions.UnimplementedInstruction))
	}
}
