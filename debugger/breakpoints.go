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
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/memory"
)

// breakpoints is the list of addresses at which the running emulation
// halts. The only breakable condition in this machine is the program
// counter; with no interrupts and a single thread of execution everything
// else follows from where the program is.
type breakpoints struct {
	breaks map[uint16]bool
}

func newBreakpoints() *breakpoints {
	return &breakpoints{
		breaks: make(map[uint16]bool),
	}
}

// check returns true if the address has a breakpoint attached.
func (bp *breakpoints) check(address uint16) bool {
	return bp.breaks[memory.MapAddress(address)]
}

// toggle a breakpoint on the address. Returns true if the address now has
// a breakpoint attached.
func (bp *breakpoints) toggle(address uint16) bool {
	address = memory.MapAddress(address)
	if bp.breaks[address] {
		delete(bp.breaks, address)
		return false
	}
	bp.breaks[address] = true
	return true
}

// clear all breakpoints.
func (bp *breakpoints) clear() {
	bp.breaks = make(map[uint16]bool)
}

func (bp *breakpoints) list() string {
	if len(bp.breaks) == 0 {
		return "no breakpoints"
	}

	addresses := make([]int, 0, len(bp.breaks))
	for a := range bp.breaks {
		addresses = append(addresses, int(a))
	}
	sort.Ints(addresses)

	s := strings.Builder{}
	for i, a := range addresses {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("break on PC = $%04x", a))
	}
	return s.String()
}
