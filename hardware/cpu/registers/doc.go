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

// Package registers implements the register types of the CHIP-8 CPU: the
// sixteen 8-bit general registers, the 16-bit program counter and the
// 16-bit index register.
//
// The arithmetic functions on the Register type return the carry or
// no-borrow bit where the corresponding instruction defines one. The
// registers themselves never write the flag register; that composition is
// the CPU's responsibility, which matters because VF is itself one of the
// general registers.
package registers
