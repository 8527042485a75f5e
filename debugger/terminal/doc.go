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

// Package terminal defines the operations required for command line
// interaction with the debugger.
//
// For flexibility, terminal interaction is split across four interfaces:
// Input, Output, Terminal and TabCompletion. In most instances the first
// two interfaces will be implemented together, the Terminal interface
// gathers them up along with the lifecycle functions, but for clarity they
// are defined separately.
//
// Two reference implementations ship with the debugger: the plainterm
// sub-package, which does nothing beyond reading and writing lines; and the
// colorterm sub-package, which adds ANSI color, command history and tab
// completion.
package terminal
