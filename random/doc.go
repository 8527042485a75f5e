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

// Package random should be used in preference to the math/rand package when
// a random number is required inside the emulation. In particular, it is
// the source for the random-byte instruction.
//
// Numbers are seeded by the machine's instruction count. The same point in
// the emulation always yields the same number for a given base seed, so two
// emulations primed with the same seed see the same random sequence.
//
// If the same random numbers are required every single run then set ZeroSeed
// to true. This is useful for testing and performance measurement, where a
// run must be reproducible.
package random
