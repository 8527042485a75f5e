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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

type tick struct {
	count uint64
}

func (tk *tick) InstructionCount() uint64 {
	return tk.count
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(&tick{count: 100})
	b := random.NewRandom(&tick{count: 100})
	a.ZeroSeed = true
	b.ZeroSeed = true

	// two zero-seeded generators at the same emulation time always agree
	for i := 1; i < 256; i++ {
		test.Equate(t, a.Intn(i), b.Intn(i))
	}
}

func TestRandomAdvances(t *testing.T) {
	tk := &tick{count: 100}
	a := random.NewRandom(tk)
	a.ZeroSeed = true

	// same emulation time, same number
	test.Equate(t, a.Intn(1000), a.Intn(1000))

	// the sequence moves on with the instruction count
	v := a.Intn(1000)
	tk.count++
	w := a.Intn(1000)
	tk.count--
	test.Equate(t, a.Intn(1000), v)
	tk.count++
	test.Equate(t, a.Intn(1000), w)
}
