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

// Package debugger implements a terminal based debugging interface to the
// CHIP-8 machine. The debugger is started with NewDebugger() and the
// Start() function.
//
// The details of the terminal interface are in the terminal sub-package.
// Two implementations are provided: a plain terminal that works anywhere,
// and a color terminal with command history and tab completion for ANSI
// capable terminals.
//
// The command set is deliberately small. Every command is documented in
// the help map in commands.go and available interactively with the HELP
// command.
package debugger
