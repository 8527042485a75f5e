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

// Package wavwriter allows writing of the machine's beep output to disk as
// a WAV file. Note that audio data is buffered in memory in its entirety
// and written to disk on program end. It is therefore probably only
// suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

const (
	sampleRate = 48000

	// samples generated per Buzz. each buzz is one timer tick's worth of
	// tone and the timer runs at sixty ticks per second
	samplesPerTick = sampleRate / 60

	// the pitch of the beep. nothing in the machine specifies one; this is
	// in the range of the original hardware's fixed tone
	beepFrequency = 440

	amplitude = 8000
)

// WavWriter implements the timer.AudioMixer interface.
type WavWriter struct {
	filename string
	samples  []int

	// phase of the square wave, carried across Buzz calls so that adjacent
	// ticks join into a continuous tone
	phase int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		samples:  make([]int, 0, sampleRate),
	}

	return aw, nil
}

// Buzz implements the timer.AudioMixer interface.
func (aw *WavWriter) Buzz(_ uint8) error {
	const halfPeriod = sampleRate / beepFrequency / 2

	for i := 0; i < samplesPerTick; i++ {
		if (aw.phase/halfPeriod)%2 == 0 {
			aw.samples = append(aw.samples, amplitude)
		} else {
			aw.samples = append(aw.samples, -amplitude)
		}
		aw.phase++
	}

	return nil
}

// EndMixing implements the timer.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           aw.samples,
		SourceBitDepth: 16,
	}

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "written audio to %s", aw.filename)

	return nil
}
