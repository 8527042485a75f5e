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

// Package assert contains a test helper for comparing register values
// against expected numbers without boilerplate.
package assert

import (
	"reflect"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
)

// Assert is used to test the value of a register against an expected int
// value.
func Assert(t *testing.T, r, x interface{}) {
	t.Helper()

	switch r := r.(type) {
	default:
		t.Fatalf("assert failed (unknown register type [%s])", reflect.TypeOf(r))

	case registers.Register:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown value type [%s])", reflect.TypeOf(x))
		case int:
			if int(r.Value()) != x {
				t.Errorf("assert Register failed (%#02x  - wanted %#02x)", r.Value(), x)
			}
		}

	case *registers.Register:
		Assert(t, *r, x)

	case registers.ProgramCounter:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown value type [%s])", reflect.TypeOf(x))
		case int:
			if int(r.Address()) != x {
				t.Errorf("assert ProgramCounter failed (%#04x  - wanted %#04x)", r.Address(), x)
			}
		}

	case *registers.ProgramCounter:
		Assert(t, *r, x)

	case registers.Index:
		switch x := x.(type) {
		default:
			t.Errorf("assert failed (unknown value type [%s])", reflect.TypeOf(x))
		case int:
			if int(r.Address()) != x {
				t.Errorf("assert Index failed (%#04x  - wanted %#04x)", r.Address(), x)
			}
		}

	case *registers.Index:
		Assert(t, *r, x)
	}
}
