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

package disassembly

import (
	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Disassembly represents the annotated disassembly of a CHIP-8 program.
type Disassembly struct {
	// the address of the first entry. always memory.OriginProgram for
	// disassemblies created by FromCartridge()
	origin uint16

	// entries in address order, two bytes apart starting at origin. no
	// entry is ever nil
	entries []*Entry
}

// FromCartridge initialises a new partial machine and returns a
// disassembly from the supplied cartridge loader. Useful for one-shot
// disassemblies, like the gopher8 "disasm" mode.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	err := cartload.Load()
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	mem := memory.NewMemory()
	err = mem.WriteProgram(cartload.Data)
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	return FromMemory(mem, memory.OriginProgram, len(cartload.Data)), nil
}

// FromMemory disassembles length bytes of memory in a linear sweep
// starting at origin. An odd length takes the trailing byte as the high
// byte of a final word, which is how the machine itself would fetch it.
func FromMemory(mem *memory.Memory, origin uint16, length int) *Disassembly {
	dsm := &Disassembly{
		origin:  origin,
		entries: make([]*Entry, 0, (length+1)/2),
	}

	for addr := origin; addr < origin+uint16(length); addr += 2 {
		opcode := mem.ReadWord(addr)

		result := execution.Result{
			Address: addr,
			Opcode:  opcode,
			Fields:  instructions.FieldsOf(opcode),
		}

		// decode failure means the entry is formatted as data. the error
		// itself holds no more information than that
		result.Defn, _ = instructions.Decode(opcode)

		dsm.entries = append(dsm.entries, FormatResult(result))
	}

	return dsm
}

// GetEntryByAddress returns the disassembly entry at the specified
// address. The second return value is false if the address is outside the
// swept area or misaligned with respect to the origin.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	if address < dsm.origin || (address-dsm.origin)%2 != 0 {
		return nil, false
	}

	idx := int(address-dsm.origin) / 2
	if idx >= len(dsm.entries) {
		return nil, false
	}

	return dsm.entries[idx], true
}

// NumEntries returns the number of entries in the disassembly.
func (dsm *Disassembly) NumEntries() int {
	return len(dsm.entries)
}
