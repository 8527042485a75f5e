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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// TickCounter is a measure of time within the emulation. The instruction
// count of the running machine is such a measure.
type TickCounter interface {
	InstructionCount() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation. The same point in the emulation always yields the same number,
// making random sequences reproducible for a given seed.
type Random struct {
	tick TickCounter

	// use a zero seed rather than the random base seed. this is only really
	// useful for instances where random numbers must be predictable, such
	// as testing and performance measurement
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(tick TickCounter) *Random {
	return &Random{
		tick: tick,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(int64(rnd.tick.InstructionCount())))
	}
	return rand.New(rand.NewSource(baseSeed + int64(rnd.tick.InstructionCount())))
}

// Intn returns a random number between 0 and n.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
