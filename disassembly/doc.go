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

// Package disassembly coordinates the disassembly of CHIP-8 program
// images.
//
// For quick disassemblies the FromCartridge() function can be used.
// Debuggers will probably find it more useful to disassemble from the
// memory of an already instantiated machine with FromMemory().
//
// The disassembly is a simple linear sweep. Every even offset from the
// program origin is treated as an instruction, which means data embedded
// in the program (sprites mostly) shows up as spurious entries. Words
// that do not decode at all are presented as data. Without executing the
// program there is no way of telling the difference so the sweep makes no
// attempt to.
package disassembly
