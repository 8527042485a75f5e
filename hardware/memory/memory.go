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

package memory

import (
	"github.com/jetsetilly/gopher8/curated"
)

// Size of the addressable memory space.
const Size = 0x1000

// Memtop is the top address of memory. Doubles as the mask value used by
// MapAddress.
const Memtop = Size - 1

// OriginFont is the address the font glyph table is loaded to. The font
// lives inside the area reserved for the machine (0x000 to 0x1ff).
const OriginFont = 0x050

// OriginProgram is the address program images are loaded to and where
// execution begins.
const OriginProgram = 0x200

// Sentinal error returned by WriteProgram().
const ProgramTooLarge = "memory: program too large (%d bytes)"

// MapAddress reduces an address to the 12-bit addressable space. Addressing
// is total: there is no such thing as an out-of-range address, only a
// wrapped one.
func MapAddress(address uint16) uint16 {
	return address & Memtop
}

// Memory is the flat 4KB address space of the machine. Addresses are always
// mapped with MapAddress() before the backing array is touched, so every
// Read() and Write() succeeds.
type Memory struct {
	ram [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset zeroes all addresses and reloads the font glyph table.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	copy(mem.ram[OriginFont:], fontData[:])
}

// Read a byte from the specified address.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.ram[MapAddress(address)]
}

// ReadWord reads a 16-bit instruction word from the specified address. The
// most significant byte is at the lower address. The two reads are mapped
// individually, meaning a word read from Memtop wraps to address zero for
// its second byte.
func (mem *Memory) ReadWord(address uint16) uint16 {
	return uint16(mem.Read(address))<<8 | uint16(mem.Read(address+1))
}

// Write a byte to the specified address.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.ram[MapAddress(address)] = data
}

// WriteProgram copies a program image into memory starting at
// OriginProgram. The memory above OriginProgram is the only area available
// to a program, limiting images to 3584 bytes.
func (mem *Memory) WriteProgram(data []byte) error {
	if len(data) > Size-OriginProgram {
		return curated.Errorf(ProgramTooLarge, len(data))
	}
	copy(mem.ram[OriginProgram:], data)
	return nil
}
