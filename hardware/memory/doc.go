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

// Package memory implements the flat 4KB address space of the CHIP-8
// machine.
//
// The address space is 12 bits wide. All addresses are reduced modulo 4096
// before use, meaning reads and writes are total functions: a program that
// runs past the top of memory simply wraps around to the bottom. There are
// no bus errors in this machine.
//
// The area below OriginProgram (0x200) is reserved. The only thing in it is
// the built-in font: sixteen five-byte glyphs for the hexadecimal digits,
// loaded at OriginFont (0x050) on creation and on Reset(). The reserved
// area is mutable all the same; some programs use it as scratch space.
package memory
