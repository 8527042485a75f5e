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
	"testing"

	"github.com/jetsetilly/gopher8/test"
)

func TestBreakpoints(t *testing.T) {
	bp := newBreakpoints()

	test.ExpectedFailure(t, bp.check(0x200))
	test.Equate(t, bp.list(), "no breakpoints")

	test.ExpectedSuccess(t, bp.toggle(0x200))
	test.ExpectedSuccess(t, bp.check(0x200))
	test.ExpectedFailure(t, bp.check(0x202))

	// toggling again removes the breakpoint
	test.ExpectedFailure(t, bp.toggle(0x200))
	test.ExpectedFailure(t, bp.check(0x200))

	test.ExpectedSuccess(t, bp.toggle(0x300))
	test.ExpectedSuccess(t, bp.toggle(0x250))
	test.Equate(t, bp.list(), "break on PC = $0250\nbreak on PC = $0300")

	bp.clear()
	test.ExpectedFailure(t, bp.check(0x250))
	test.Equate(t, bp.list(), "no breakpoints")
}

func TestBreakpointAddressMapping(t *testing.T) {
	bp := newBreakpoints()

	// addresses are mapped into the addressable range, the same as the
	// memory package maps them
	test.ExpectedSuccess(t, bp.toggle(0x1200))
	test.ExpectedSuccess(t, bp.check(0x200))
	test.ExpectedSuccess(t, bp.check(0x1200))
}
