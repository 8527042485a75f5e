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

package terminal

// Style is used to hint to the terminal implementation how a line of output
// should be presented. Implementations are free to ignore the hint.
type Style int

// List of terminal styles.
const (
	// input that has been echoed back to the user. interactive terminals
	// will not need to print anything for this style
	StyleEcho Style = iota

	// help information
	StyleHelp

	// disassembly of the instruction that has just executed or is about to
	// execute
	StyleInstruction

	// information about the state of the machine (registers, timers,
	// memory, display)
	StyleMachineInfo

	// information from the debugger itself rather than the machine
	StyleFeedback

	// the command could not be run as requested
	StyleError
)
