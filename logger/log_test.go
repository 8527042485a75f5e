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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

func TestCentralLogger(t *testing.T) {
	logger.Clear()

	w := &test.Writer{}

	logger.Write(w)
	test.ExpectedSuccess(t, w.Compare(""))

	logger.Log("test", "this is a test")
	logger.Write(w)
	test.ExpectedSuccess(t, w.Compare("test: this is a test\n"))

	// clear the test.Writer buffer before continuing, makes comparisons
	// easier to manage
	w.Clear()

	logger.Logf("test2", "this is %s test", "another")
	logger.Write(w)
	test.ExpectedSuccess(t, w.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	w.Clear()
	logger.Tail(w, 100)
	test.ExpectedSuccess(t, w.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	w.Clear()
	logger.Tail(w, 1)
	test.ExpectedSuccess(t, w.Compare("test2: this is another test\n"))

	logger.Clear()
	w.Clear()
	logger.Write(w)
	test.ExpectedSuccess(t, w.Compare(""))
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()

	w := &test.Writer{}

	// identical adjacent entries collapse into a repeat count
	logger.Log("test", "this is a test")
	logger.Log("test", "this is a test")
	logger.Write(w)
	test.ExpectedSuccess(t, w.Compare("test: this is a test (repeat x2)\n"))

	// a different detail string breaks the run
	w.Clear()
	logger.Log("test", "something else")
	logger.Write(w)
	test.ExpectedSuccess(t, w.Compare("test: this is a test (repeat x2)\ntest: something else\n"))

	logger.Clear()
}
