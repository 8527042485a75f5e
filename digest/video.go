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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/display"
)

// Video is an implementation of the display.PixelRenderer interface with an
// embedded display for convenience. The hash is chained: each frame's
// fingerprint covers the pixels of that frame plus the fingerprint of the
// frame before it, so the final value summarises the whole run.
type Video struct {
	*display.Display
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(dsp *display.Display) (*Video, error) {
	dig := &Video{Display: dsp}

	// enough room for the previous frame's digest value followed by one
	// byte per pixel
	dig.pixels = make([]byte, len(dig.digest)+display.Width*display.Height)

	// register ourselves as a pixel renderer
	dig.AddPixelRenderer(dig)

	return dig, nil
}

// Hash implements the digest.Digest interface.
func (dig Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// NewFrame implements the display.PixelRenderer interface.
func (dig *Video) NewFrame(frameNum int) error {
	// chain fingerprints by copying the value of the last fingerprint to
	// the head of the video data
	copy(dig.pixels, dig.digest[:])
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum
	return nil
}

// SetPixel implements the display.PixelRenderer interface.
func (dig *Video) SetPixel(x, y int, on bool) error {
	i := len(dig.digest) + y*display.Width + x
	if i < len(dig.pixels) {
		if on {
			dig.pixels[i] = 1
		} else {
			dig.pixels[i] = 0
		}
	}
	return nil
}

// EndRendering implements the display.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
