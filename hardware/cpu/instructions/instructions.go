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

// Operator identifies the operation performed by a decoded instruction.
// The set is closed: execution is an exhaustive switch over these values,
// so adding an instruction is a localised change here, in Decode() and in
// one arm of the CPU's switch.
type Operator int

// The operators of the base CHIP-8 instruction set.
const (
	Sys Operator = iota
	Cls
	Ret
	Jp
	Call
	SeImm
	SneImm
	SeReg
	LdImm
	AddImm
	LdReg
	Or
	And
	Xor
	AddReg
	Sub
	Shr
	Subn
	Shl
	SneReg
	LdIdx
	JpV0
	Rnd
	Drw
	Skp
	Sknp
	LdDelay
	LdKey
	SetDelay
	SetSound
	AddIdx
	LdFont
	Bcd
	Store
	Load
)

// Operand describes how an instruction's operand fields are written in
// conventional CHIP-8 assembly. Used by the disassembly package when
// rendering an instruction; the fields themselves live alongside the
// opcode, not in the definition.
type Operand int

// List of operand formats.
const (
	OperandNone      Operand = iota
	OperandAddress           // JP nnn
	OperandRegImm            // LD Vx,nn
	OperandRegReg            // OR Vx,Vy
	OperandReg               // SKP Vx
	OperandIdxAddress        // LD I,nnn
	OperandV0Address         // JP V0,nnn
	OperandRegRegNib         // DRW Vx,Vy,n
	OperandDelayRead         // LD Vx,DT
	OperandKeyRead           // LD Vx,K
	OperandDelayWrite        // LD DT,Vx
	OperandSoundWrite        // LD ST,Vx
	OperandIdxReg            // ADD I,Vx
	OperandFontReg           // LD F,Vx
	OperandBcdReg            // LD B,Vx
	OperandStoreRegs         // LD [I],Vx
	OperandLoadRegs          // LD Vx,[I]
)

// Definition defines each instruction in the instruction set; one per
// operator.
type Definition struct {
	Operator Operator
	Mnemonic string
	Operand  Operand
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return defn.Mnemonic
}

// Definitions is the table of instruction definitions, indexed by Operator.
var Definitions = [...]Definition{
	Sys:      {Operator: Sys, Mnemonic: "SYS", Operand: OperandAddress},
	Cls:      {Operator: Cls, Mnemonic: "CLS", Operand: OperandNone},
	Ret:      {Operator: Ret, Mnemonic: "RET", Operand: OperandNone},
	Jp:       {Operator: Jp, Mnemonic: "JP", Operand: OperandAddress},
	Call:     {Operator: Call, Mnemonic: "CALL", Operand: OperandAddress},
	SeImm:    {Operator: SeImm, Mnemonic: "SE", Operand: OperandRegImm},
	SneImm:   {Operator: SneImm, Mnemonic: "SNE", Operand: OperandRegImm},
	SeReg:    {Operator: SeReg, Mnemonic: "SE", Operand: OperandRegReg},
	LdImm:    {Operator: LdImm, Mnemonic: "LD", Operand: OperandRegImm},
	AddImm:   {Operator: AddImm, Mnemonic: "ADD", Operand: OperandRegImm},
	LdReg:    {Operator: LdReg, Mnemonic: "LD", Operand: OperandRegReg},
	Or:       {Operator: Or, Mnemonic: "OR", Operand: OperandRegReg},
	And:      {Operator: And, Mnemonic: "AND", Operand: OperandRegReg},
	Xor:      {Operator: Xor, Mnemonic: "XOR", Operand: OperandRegReg},
	AddReg:   {Operator: AddReg, Mnemonic: "ADD", Operand: OperandRegReg},
	Sub:      {Operator: Sub, Mnemonic: "SUB", Operand: OperandRegReg},
	Shr:      {Operator: Shr, Mnemonic: "SHR", Operand: OperandReg},
	Subn:     {Operator: Subn, Mnemonic: "SUBN", Operand: OperandRegReg},
	Shl:      {Operator: Shl, Mnemonic: "SHL", Operand: OperandReg},
	SneReg:   {Operator: SneReg, Mnemonic: "SNE", Operand: OperandRegReg},
	LdIdx:    {Operator: LdIdx, Mnemonic: "LD", Operand: OperandIdxAddress},
	JpV0:     {Operator: JpV0, Mnemonic: "JP", Operand: OperandV0Address},
	Rnd:      {Operator: Rnd, Mnemonic: "RND", Operand: OperandRegImm},
	Drw:      {Operator: Drw, Mnemonic: "DRW", Operand: OperandRegRegNib},
	Skp:      {Operator: Skp, Mnemonic: "SKP", Operand: OperandReg},
	Sknp:     {Operator: Sknp, Mnemonic: "SKNP", Operand: OperandReg},
	LdDelay:  {Operator: LdDelay, Mnemonic: "LD", Operand: OperandDelayRead},
	LdKey:    {Operator: LdKey, Mnemonic: "LD", Operand: OperandKeyRead},
	SetDelay: {Operator: SetDelay, Mnemonic: "LD", Operand: OperandDelayWrite},
	SetSound: {Operator: SetSound, Mnemonic: "LD", Operand: OperandSoundWrite},
	AddIdx:   {Operator: AddIdx, Mnemonic: "ADD", Operand: OperandIdxReg},
	LdFont:   {Operator: LdFont, Mnemonic: "LD", Operand: OperandFontReg},
	Bcd:      {Operator: Bcd, Mnemonic: "LD", Operand: OperandBcdReg},
	Store:    {Operator: Store, Mnemonic: "LD", Operand: OperandStoreRegs},
	Load:     {Operator: Load, Mnemonic: "LD", Operand: OperandLoadRegs},
}
