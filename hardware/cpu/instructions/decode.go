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

package instructions

import (
	"github.com/jetsetilly/gopher8/curated"
)

// UnimplementedInstruction is the error returned when an instruction word
// does not decode to anything in the instruction set. The same error is
// returned by the CPU for instructions that decode but cannot be executed,
// SYS being the only example.
//
// The error is recoverable. The program counter has already advanced past
// the offending word by the time it is returned, so the machine is in a
// fit state to carry on.
const UnimplementedInstruction = "unimplemented instruction (%#04x)"

// Fields is the operand bit fields of an instruction word. Every field is
// extracted on decode regardless of whether the instruction uses it.
type Fields struct {
	// X and Y are register numbers
	X uint8
	Y uint8

	// N is a nibble literal; used only by DRW for the sprite height
	N uint8

	// NN is a byte literal
	NN uint8

	// NNN is an address. the low twelve bits of the word taken directly,
	// never recomposed from the individual nibbles
	NNN uint16
}

// FieldsOf splits an instruction word into its operand bit fields.
func FieldsOf(opcode uint16) Fields {
	return Fields{
		X:   uint8((opcode >> 8) & 0x000f),
		Y:   uint8((opcode >> 4) & 0x000f),
		N:   uint8(opcode & 0x000f),
		NN:  uint8(opcode & 0x00ff),
		NNN: opcode & 0x0fff,
	}
}

// Decode returns the instruction definition matching the instruction word.
// Words that match no encoding pattern return the UnimplementedInstruction
// error.
func Decode(opcode uint16) (*Definition, error) {
	switch opcode >> 12 {
	case 0x0:
		switch opcode & 0x0fff {
		case 0x0e0:
			return &Definitions[Cls], nil
		case 0x0ee:
			return &Definitions[Ret], nil
		default:
			// machine code routine on the original COSMAC VIP. decodes so
			// that a disassembly can label it but the CPU will refuse to
			// execute it
			return &Definitions[Sys], nil
		}
	case 0x1:
		return &Definitions[Jp], nil
	case 0x2:
		return &Definitions[Call], nil
	case 0x3:
		return &Definitions[SeImm], nil
	case 0x4:
		return &Definitions[SneImm], nil
	case 0x5:
		if opcode&0x000f == 0x0 {
			return &Definitions[SeReg], nil
		}
	case 0x6:
		return &Definitions[LdImm], nil
	case 0x7:
		return &Definitions[AddImm], nil
	case 0x8:
		switch opcode & 0x000f {
		case 0x0:
			return &Definitions[LdReg], nil
		case 0x1:
			return &Definitions[Or], nil
		case 0x2:
			return &Definitions[And], nil
		case 0x3:
			return &Definitions[Xor], nil
		case 0x4:
			return &Definitions[AddReg], nil
		case 0x5:
			return &Definitions[Sub], nil
		case 0x6:
			return &Definitions[Shr], nil
		case 0x7:
			return &Definitions[Subn], nil
		case 0xe:
			return &Definitions[Shl], nil
		}
	case 0x9:
		if opcode&0x000f == 0x0 {
			return &Definitions[SneReg], nil
		}
	case 0xa:
		return &Definitions[LdIdx], nil
	case 0xb:
		return &Definitions[JpV0], nil
	case 0xc:
		return &Definitions[Rnd], nil
	case 0xd:
		return &Definitions[Drw], nil
	case 0xe:
		switch opcode & 0x00ff {
		case 0x9e:
			return &Definitions[Skp], nil
		case 0xa1:
			return &Definitions[Sknp], nil
		}
	case 0xf:
		switch opcode & 0x00ff {
		case 0x07:
			return &Definitions[LdDelay], nil
		case 0x0a:
			return &Definitions[LdKey], nil
		case 0x15:
			return &Definitions[SetDelay], nil
		case 0x18:
			return &Definitions[SetSound], nil
		case 0x1e:
			return &Definitions[AddIdx], nil
		case 0x29:
			return &Definitions[LdFont], nil
		case 0x33:
			return &Definitions[Bcd], nil
		case 0x55:
			return &Definitions[Store], nil
		case 0x65:
			return &Definitions[Load], nil
		}
	}

	return nil, curated.Errorf(UnimplementedInstruction, opcode)
}
