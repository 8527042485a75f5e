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

// Package sdlaudio plays the machine's beep through an SDL audio device.
package sdlaudio

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8/curated"
)

const sampleRate = 48000

// samples queued per Buzz. each buzz is one timer tick's worth of tone and
// the timer runs at sixty ticks per second.
const samplesPerTick = sampleRate / 60

// the pitch of the beep. nothing in the machine specifies one; this is in
// the range of the original hardware's fixed tone.
const beepFrequency = 440

const amplitude = 40

// if the machine is running faster than real time the queue backs up. when
// it reaches this many bytes further buzzes are dropped rather than
// allowing the beep to lag ever further behind the event that caused it.
const maxQueuedBytes = samplesPerTick * 10

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// one tick's worth of samples, refilled and queued on every Buzz
	buffer []uint8

	// phase of the square wave, carried across Buzz calls so that adjacent
	// ticks join into a continuous tone
	phase int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() (*Audio, error) {
	aud := &Audio{
		buffer: make([]uint8, samplesPerTick),
	}

	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(samplesPerTick),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Buzz implements the timer.AudioMixer interface.
func (aud *Audio) Buzz(_ uint8) error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueuedBytes {
		return nil
	}

	const halfPeriod = sampleRate / beepFrequency / 2

	for i := range aud.buffer {
		if (aud.phase/halfPeriod)%2 == 0 {
			aud.buffer[i] = aud.spec.Silence + amplitude
		} else {
			aud.buffer[i] = aud.spec.Silence - amplitude
		}
		aud.phase++
	}

	err := sdl.QueueAudio(aud.id, aud.buffer)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// EndMixing implements the timer.AudioMixer interface. Safe to call more
// than once; the machine and the GUI teardown can both reach it.
func (aud *Audio) EndMixing() error {
	if aud.id == 0 {
		return nil
	}

	sdl.CloseAudioDevice(aud.id)
	aud.id = 0

	return nil
}
