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

package timer

import (
	"fmt"
)

// TickHz is the rate at which Tick() is called by the running machine. The
// rate is a fixed property of the architecture, independent of the
// instruction rate.
const TickHz = 60

// AudioMixer implementations sound, or otherwise consume, the beep emitted
// while the sound timer is running. For example, the SDL beeper or the WAV
// file writer.
type AudioMixer interface {
	// Buzz is called once per timer tick while the sound timer is positive.
	// Each call represents one tick's worth of tone. The argument is the
	// value of the sound timer at the moment of the tick; mixers that only
	// care that a beep is happening can ignore it.
	Buzz(remaining uint8) error

	// EndMixing is called when the machine is being shut down. The mixer
	// will not be called again after EndMixing.
	EndMixing() error
}

// Timers is the pair of 8-bit countdown timers. Both decrement on the tick
// cadence and clamp at zero. The sound timer beeps on every tick it spends
// above zero.
type Timers struct {
	delay uint8
	sound uint8

	mixers []AudioMixer
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{
		mixers: make([]AudioMixer, 0),
	}
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("delay=%02x sound=%02x", tmr.delay, tmr.sound)
}

// AddAudioMixer registers an (additional) implementation of AudioMixer.
func (tmr *Timers) AddAudioMixer(m AudioMixer) {
	tmr.mixers = append(tmr.mixers, m)
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.delay = 0
	tmr.sound = 0
}

// Delay returns the current value of the delay timer.
func (tmr *Timers) Delay() uint8 {
	return tmr.delay
}

// SetDelay loads the delay timer.
func (tmr *Timers) SetDelay(value uint8) {
	tmr.delay = value
}

// Sound returns the current value of the sound timer.
func (tmr *Timers) Sound() uint8 {
	return tmr.sound
}

// SetSound loads the sound timer.
func (tmr *Timers) SetSound(value uint8) {
	tmr.sound = value
}

// Tick decrements both timers, clamping at zero. A positive sound timer
// emits one unit of beep to every attached mixer before it decrements.
//
// Tick has no failure modes of its own; any error is from a mixer.
func (tmr *Timers) Tick() error {
	if tmr.delay > 0 {
		tmr.delay--
	}

	if tmr.sound > 0 {
		for _, m := range tmr.mixers {
			err := m.Buzz(tmr.sound)
			if err != nil {
				return err
			}
		}
		tmr.sound--
	}

	return nil
}

// End calls EndMixing on every attached mixer. The timers should be
// considered unusable after End.
func (tmr *Timers) End() error {
	var rerr error
	for _, m := range tmr.mixers {
		err := m.EndMixing()
		if err != nil {
			rerr = err
		}
	}
	return rerr
}
