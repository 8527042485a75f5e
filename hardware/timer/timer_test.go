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

package timer_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/test"
)

type countingMixer struct {
	buzzes    int
	remaining []uint8
	ended     bool
}

func (m *countingMixer) Buzz(remaining uint8) error {
	m.buzzes++
	m.remaining = append(m.remaining, remaining)
	return nil
}

func (m *countingMixer) EndMixing() error {
	m.ended = true
	return nil
}

func TestDelayClampsAtZero(t *testing.T) {
	tmr := timer.NewTimers()
	tmr.SetDelay(5)

	for i := 0; i < 5; i++ {
		test.ExpectedSuccess(t, tmr.Tick())
	}
	test.Equate(t, tmr.Delay(), 0)

	// the sixth tick must not underflow
	test.ExpectedSuccess(t, tmr.Tick())
	test.Equate(t, tmr.Delay(), 0)
}

func TestSoundBeeps(t *testing.T) {
	tmr := timer.NewTimers()
	m := &countingMixer{}
	tmr.AddAudioMixer(m)

	// one tick of a sound timer of one triggers exactly one beep
	tmr.SetSound(1)
	test.ExpectedSuccess(t, tmr.Tick())
	test.Equate(t, tmr.Sound(), 0)
	test.Equate(t, m.buzzes, 1)

	// further ticks are silent
	test.ExpectedSuccess(t, tmr.Tick())
	test.Equate(t, m.buzzes, 1)

	// the sound timer beeps on every tick it spends above zero, and each
	// beep reports the countdown as it stood
	tmr.SetSound(3)
	for i := 0; i < 10; i++ {
		test.ExpectedSuccess(t, tmr.Tick())
	}
	test.Equate(t, m.buzzes, 4)
	test.Equate(t, m.remaining[1], 3)
	test.Equate(t, m.remaining[2], 2)
	test.Equate(t, m.remaining[3], 1)
}

func TestTimersAreIndependent(t *testing.T) {
	tmr := timer.NewTimers()
	m := &countingMixer{}
	tmr.AddAudioMixer(m)

	tmr.SetDelay(2)
	tmr.SetSound(1)

	test.ExpectedSuccess(t, tmr.Tick())
	test.Equate(t, tmr.Delay(), 1)
	test.Equate(t, tmr.Sound(), 0)
	test.Equate(t, m.buzzes, 1)

	test.ExpectedSuccess(t, tmr.Tick())
	test.Equate(t, tmr.Delay(), 0)
	test.Equate(t, m.buzzes, 1)
}

func TestEndMixing(t *testing.T) {
	tmr := timer.NewTimers()
	m := &countingMixer{}
	tmr.AddAudioMixer(m)

	test.ExpectedSuccess(t, tmr.End())
	test.Equate(t, m.ended, true)
}
