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

package cartridgeloader_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/gopher8/cartridgeloader"
)

func writeROM(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(fn, data, 0o644))
	return fn
}

func TestLoad(t *testing.T) {
	fn := writeROM(t, "pong.ch8", []byte{0x60, 0x0a, 0x12, 0x00})

	cl := cartridgeloader.NewLoader(fn)
	assert.False(t, cl.HasLoaded())

	require.NoError(t, cl.Load())
	assert.True(t, cl.HasLoaded())
	assert.Equal(t, []byte{0x60, 0x0a, 0x12, 0x00}, cl.Data)

	// the hash field is populated as a side effect of loading
	assert.NotEmpty(t, cl.Hash)

	// a second load is a no-op
	require.NoError(t, cl.Load())
	assert.Equal(t, 4, len(cl.Data))
}

func TestHashCheck(t *testing.T) {
	fn := writeROM(t, "pong.ch8", []byte{0x60, 0x0a})

	// load once to discover the correct hash
	witness := cartridgeloader.NewLoader(fn)
	require.NoError(t, witness.Load())

	// a loader primed with the correct hash succeeds
	cl := cartridgeloader.NewLoader(fn)
	cl.Hash = witness.Hash
	assert.NoError(t, cl.Load())

	// and one primed with a wrong hash does not
	cl = cartridgeloader.NewLoader(fn)
	cl.Hash = "0000000000000000000000000000000000000000"
	assert.Error(t, cl.Load())
}

func TestLoadFailures(t *testing.T) {
	// missing file
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "no-such-rom.ch8"))
	assert.Error(t, cl.Load())

	// empty file
	fn := writeROM(t, "empty.ch8", nil)
	cl = cartridgeloader.NewLoader(fn)
	assert.Error(t, cl.Load())
}

func TestShortName(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join("roms", "games", "pong.ch8"))
	assert.Equal(t, "pong", cl.ShortName())

	cl = cartridgeloader.NewLoader("breakout")
	assert.Equal(t, "breakout", cl.ShortName())
}
