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

package debugger

import (
	"strings"

	"github.com/jetsetilly/gopher8/display"
)

// displayInfo renders the display grid as text, one character per pixel.
// Good enough to check what a program has drawn without leaving the
// terminal.
func (dbg *Debugger) displayInfo() string {
	s := strings.Builder{}

	s.WriteString("+")
	s.WriteString(strings.Repeat("-", display.Width))
	s.WriteString("+")

	for y := 0; y < display.Height; y++ {
		s.WriteString("\n|")
		for x := 0; x < display.Width; x++ {
			if dbg.ch8.Display.Pixel(x, y) {
				s.WriteString("#")
			} else {
				s.WriteString(" ")
			}
		}
		s.WriteString("|")
	}

	s.WriteString("\n+")
	s.WriteString(strings.Repeat("-", display.Width))
	s.WriteString("+")

	return s.String()
}
