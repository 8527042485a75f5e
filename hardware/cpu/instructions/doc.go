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

// Package instructions defines the CHIP-8 instruction set and the decoder
// that maps instruction words onto it.
//
// An instruction word is two bytes. The top nibble selects the broad
// instruction type and, depending on that type, further bits refine the
// selection. Decode() performs the pattern match and returns a Definition
// from the Definitions table; FieldsOf() splits the word into the operand
// fields (register numbers and literals) that execution and disassembly
// share.
//
// Decoding is total over the defined encodings only. Any other word is met
// with the UnimplementedInstruction error, which callers are expected to
// treat as recoverable.
package instructions
