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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values, and returns an error.
//
// The Is() function can be used to check whether an error was created by
// Errorf() with a specific pattern. For example:
//
//	e := curated.Errorf("unimplemented instruction (%#04x)", 0xf065)
//
//	if curated.Is(e, "unimplemented instruction (%#04x)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain, rather than only at the head:
//
//	e := curated.Errorf("unimplemented instruction (%#04x)", 0xf065)
//	f := curated.Errorf("debugger: %v", e)
//
//	curated.Is(f, "unimplemented instruction (%#04x)")    // false
//	curated.Has(f, "unimplemented instruction (%#04x)")   // true
//
// The IsAny() function answers whether the error is curated at all. A
// curated error is one the program has anticipated and can sensibly recover
// from; an uncurated error is unexpected and is best passed up the chain
// unaltered.
//
// The Error() function for curated errors normalises the error chain by
// removing duplicate adjacent parts of the message. The practical advantage
// is that it alleviates the problem of when and how to wrap errors. Wrapping
// the same context twice does not produce a stuttering message.
package curated
