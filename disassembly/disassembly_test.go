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

package disassembly_test

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func newMemory(t *testing.T, program ...byte) *memory.Memory {
	t.Helper()
	mem := memory.NewMemory()
	err := mem.WriteProgram(program)
	if err != nil {
		t.Fatal(err)
	}
	return mem
}

func TestFromMemory(t *testing.T) {
	mem := newMemory(t,
		0x00, 0xe0, // CLS
		0x60, 0x2a, // LD V0,$2a
		0x12, 0x00, // JP $200
		0xfa, 0xfa, // does not decode
	)

	dsm := disassembly.FromMemory(mem, memory.OriginProgram, 8)
	test.Equate(t, dsm.NumEntries(), 4)

	e, ok := dsm.GetEntryByAddress(0x200)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, e.String(), "$0200 CLS")

	e, ok = dsm.GetEntryByAddress(0x202)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, e.String(), "$0202 LD V0,$2a")

	e, ok = dsm.GetEntryByAddress(0x204)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, e.String(), "$0204 JP $200")

	// the word that doesn't decode is presented as data
	e, ok = dsm.GetEntryByAddress(0x206)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, e.String(), "$0206 ???")
	test.Equate(t, e.Bytecode, "fa fa")
}

func TestGetEntryByAddress(t *testing.T) {
	mem := newMemory(t, 0x00, 0xe0, 0x00, 0xee)
	dsm := disassembly.FromMemory(mem, memory.OriginProgram, 4)

	// misaligned address
	_, ok := dsm.GetEntryByAddress(0x201)
	test.ExpectedFailure(t, ok)

	// before the origin
	_, ok = dsm.GetEntryByAddress(0x1fe)
	test.ExpectedFailure(t, ok)

	// past the end of the sweep
	_, ok = dsm.GetEntryByAddress(0x204)
	test.ExpectedFailure(t, ok)
}

func TestOperandFormats(t *testing.T) {
	mem := newMemory(t,
		0x85, 0x64, // ADD V5,V6
		0x87, 0x86, // SHR V7
		0xa1, 0x23, // LD I,$123
		0xb2, 0x34, // JP V0,$234
		0xc4, 0x0f, // RND V4,$0f
		0xd1, 0x25, // DRW V1,V2,$5
		0xe1, 0x9e, // SKP V1
		0xf3, 0x0a, // LD V3,K
		0xf4, 0x18, // LD ST,V4
		0xf5, 0x33, // LD B,V5
		0xf6, 0x55, // LD [I],V6
		0xf7, 0x65, // LD V7,[I]
	)

	expected := []string{
		"ADD V5,V6",
		"SHR V7",
		"LD I,$123",
		"JP V0,$234",
		"RND V4,$0f",
		"DRW V1,V2,$5",
		"SKP V1",
		"LD V3,K",
		"LD ST,V4",
		"LD B,V5",
		"LD [I],V6",
		"LD V7,[I]",
	}

	dsm := disassembly.FromMemory(mem, memory.OriginProgram, len(expected)*2)
	test.Equate(t, dsm.NumEntries(), len(expected))

	for i, x := range expected {
		e, ok := dsm.GetEntryByAddress(memory.OriginProgram + uint16(i*2))
		test.ExpectedSuccess(t, ok)
		test.Equate(t, e.String()[6:], x)
	}
}

func TestWrite(t *testing.T) {
	mem := newMemory(t,
		0x00, 0xe0, // CLS
		0x70, 0x01, // ADD V0,$01
	)
	dsm := disassembly.FromMemory(mem, memory.OriginProgram, 4)

	s := &strings.Builder{}
	err := dsm.Write(s, disassembly.WriteAttr{})
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "$0200 CLS\n$0202 ADD V0,$01\n")

	s.Reset()
	err = dsm.Write(s, disassembly.WriteAttr{ByteCode: true})
	test.ExpectedSuccess(t, err)
	test.Equate(t, s.String(), "00 e0  $0200 CLS\n70 01  $0202 ADD V0,$01\n")
}

func TestFromCartridge(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sweep.ch8")
	err := ioutil.WriteFile(fn, []byte{0x00, 0xe0, 0x12, 0x00}, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	dsm, err := disassembly.FromCartridge(cartridgeloader.NewLoader(fn))
	test.ExpectedSuccess(t, err)
	test.Equate(t, dsm.NumEntries(), 2)

	e, ok := dsm.GetEntryByAddress(0x202)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, e.String(), "$0202 JP $200")
}
