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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

const testPattern = "test error: %s"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern"))

	// uncurated errors never match
	f := errors.New("plain error")
	test.ExpectedFailure(t, curated.Is(f, testPattern))
	test.ExpectedFailure(t, curated.IsAny(f))
	test.ExpectedSuccess(t, curated.IsAny(e))

	// nil is not an error of any kind
	test.ExpectedFailure(t, curated.Is(nil, testPattern))
	test.ExpectedFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf("wrapping: %v", e)
	g := curated.Errorf("wrapping again: %v", f)

	// Is() only matches the head of the chain
	test.ExpectedFailure(t, curated.Is(f, testPattern))

	// Has() matches anywhere in the chain
	test.ExpectedSuccess(t, curated.Has(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(g, testPattern))
	test.ExpectedSuccess(t, curated.Has(g, "wrapping: %v"))
	test.ExpectedFailure(t, curated.Has(g, "some other pattern"))
}

func TestDeduplication(t *testing.T) {
	// duplicate adjacent message parts collapse when the error is printed
	e := curated.Errorf("error: %s", "detail")
	f := curated.Errorf("error: %v", e)
	test.Equate(t, f.Error(), "error: detail")

	// non-adjacent duplication is left alone
	g := curated.Errorf("outer: %v", curated.Errorf("error: %s", "detail"))
	test.Equate(t, g.Error(), "outer: error: detail")
}
