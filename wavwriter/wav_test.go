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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/gopher8/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "beep.wav")

	aw, err := wavwriter.New(fn)
	require.NoError(t, err)

	// three ticks of tone
	require.NoError(t, aw.Buzz(3))
	require.NoError(t, aw.Buzz(2))
	require.NoError(t, aw.Buzz(1))

	require.NoError(t, aw.EndMixing())

	f, err := os.Open(fn)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	assert.Equal(t, 1, buf.Format.NumChannels)
	assert.Equal(t, 48000, buf.Format.SampleRate)

	// one tick is a sixtieth of a second of samples
	assert.Equal(t, 3*48000/60, len(buf.Data))

	// the tone must actually oscillate
	var positive, negative bool
	for _, s := range buf.Data {
		if s > 0 {
			positive = true
		} else if s < 0 {
			negative = true
		}
	}
	assert.True(t, positive)
	assert.True(t, negative)
}

func TestWavWriterEmpty(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "silence.wav")

	aw, err := wavwriter.New(fn)
	require.NoError(t, err)
	require.NoError(t, aw.EndMixing())

	f, err := os.Open(fn)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 0, len(buf.Data))
}
