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
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Entry is a disassembled instruction. The constituent parts of the
// disassembly. It is a representation of execution.Result.
type Entry struct {
	// copy of the execution result the entry was created from. entries
	// created by the linear sweep are decode-only, meaning the Final field
	// is false and always will be
	Result execution.Result

	// string representations of the information in Result
	Bytecode string
	Address  string
	Operator string
	Operand  string
}

// String returns a very basic representation of an Entry. Provided for
// convenience. Most callers will want the WriteEntry() function, which
// includes the bytecode field on request.
func (e *Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s %s", e.Address, e.Operator)
	}
	return fmt.Sprintf("%s %s %s", e.Address, e.Operator, e.Operand)
}

// FormatResult creates an Entry for the supplied execution result. The
// result does not need to be Final. In particular, the result of a decode
// with no execution attached is fine.
func FormatResult(result execution.Result) *Entry {
	e := &Entry{
		Result:   result,
		Address:  fmt.Sprintf("$%04x", result.Address),
		Bytecode: fmt.Sprintf("%02x %02x", uint8(result.Opcode>>8), uint8(result.Opcode)),
	}

	// a word that failed to decode is data as far as we can tell. the
	// operator field marks it so that it stands out in a listing
	if result.Defn == nil {
		e.Operator = "???"
		return e
	}

	e.Operator = result.Defn.Mnemonic
	e.Operand = formatOperand(result.Defn.Operand, result.Fields)

	return e
}

// operand notation follows the conventional CHIP-8 assembly forms. the
// pseudo-operands DT, ST, K, F, B and [I] are properties of the operator
// rather than anything encoded in the opcode fields.
func formatOperand(operand instructions.Operand, fields instructions.Fields) string {
	switch operand {
	case instructions.OperandNone:
		return ""
	case instructions.OperandAddress:
		return fmt.Sprintf("$%03x", fields.NNN)
	case instructions.OperandRegImm:
		return fmt.Sprintf("V%X,$%02x", fields.X, fields.NN)
	case instructions.OperandRegReg:
		return fmt.Sprintf("V%X,V%X", fields.X, fields.Y)
	case instructions.OperandReg:
		return fmt.Sprintf("V%X", fields.X)
	case instructions.OperandIdxAddress:
		return fmt.Sprintf("I,$%03x", fields.NNN)
	case instructions.OperandV0Address:
		return fmt.Sprintf("V0,$%03x", fields.NNN)
	case instructions.OperandRegRegNib:
		return fmt.Sprintf("V%X,V%X,$%x", fields.X, fields.Y, fields.N)
	case instructions.OperandDelayRead:
		return fmt.Sprintf("V%X,DT", fields.X)
	case instructions.OperandKeyRead:
		return fmt.Sprintf("V%X,K", fields.X)
	case instructions.OperandDelayWrite:
		return fmt.Sprintf("DT,V%X", fields.X)
	case instructions.OperandSoundWrite:
		return fmt.Sprintf("ST,V%X", fields.X)
	case instructions.OperandIdxReg:
		return fmt.Sprintf("I,V%X", fields.X)
	case instructions.OperandFontReg:
		return fmt.Sprintf("F,V%X", fields.X)
	case instructions.OperandBcdReg:
		return fmt.Sprintf("B,V%X", fields.X)
	case instructions.OperandStoreRegs:
		return fmt.Sprintf("[I],V%X", fields.X)
	case instructions.OperandLoadRegs:
		return fmt.Sprintf("V%X,[I]", fields.X)
	}

	return ""
}
