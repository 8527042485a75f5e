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

// Package test contains helper functions that remove common boilerplate from
// the project's tests.
//
// The Equate() function compares like-typed values for equality. Some types
// (eg. uint8, uint16) can be compared against int for convenience, meaning
// literal number values can be used as the expected value without casting.
//
// The ExpectedFailure() and ExpectedSuccess() functions test for failure and
// success under generic conditions. How the nil type is handled is worth
// spelling out: nil is considered a success, causing ExpectedFailure to fail
// and ExpectedSuccess to succeed. This follows from how errors work in Go,
// where nil indicates no error.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
