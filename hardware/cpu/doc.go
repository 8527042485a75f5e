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

// Package cpu emulates the instruction interpreter of the CHIP-8 machine.
// Unlike a silicon CPU, a CHIP-8 "CPU" never existed as hardware; it is the
// fetch-decode-execute loop of an interpreter that originally ran on the
// COSMAC VIP. That ancestry is visible in the instruction set: instructions
// are two bytes, big-endian, and the top nibble selects the operation.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction()
// function. It performs one full fetch-decode-execute sequence and returns.
// There is no cycle accuracy to worry about; real interpreters ran each
// instruction in whatever time the host machine took, and the machine is
// paced instead by the hardware package calling ExecuteInstruction() at a
// chosen rate.
//
// The program counter is advanced as part of the fetch stage, before
// execution. An error from the execute stage therefore leaves the CPU
// pointing at the next instruction and in a perfectly usable state. Whether
// to carry on or to halt is the caller's decision, and the playmode and
// debugger packages decide it differently.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
// Very useful for debuggers.
package cpu
