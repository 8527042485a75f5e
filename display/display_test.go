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

package display_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestClear(t *testing.T) {
	dsp := display.NewDisplay()

	dsp.DrawSprite(3, 4, []uint8{0xff, 0x81, 0xff})
	test.Equate(t, dsp.Pixel(3, 4), true)

	dsp.Clear()
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if dsp.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) still set after Clear()", x, y)
			}
		}
	}
}

func TestDrawCollision(t *testing.T) {
	dsp := display.NewDisplay()

	// drawing onto an empty grid sets pixels and reports no collision
	collision := dsp.DrawSprite(0, 0, []uint8{0xff})
	test.Equate(t, collision, false)
	for x := 0; x < 8; x++ {
		test.Equate(t, dsp.Pixel(x, 0), true)
	}
	test.Equate(t, dsp.Pixel(8, 0), false)

	// drawing the same sprite again XORs the pixels off and reports the
	// collision
	collision = dsp.DrawSprite(0, 0, []uint8{0xff})
	test.Equate(t, collision, true)
	for x := 0; x < 8; x++ {
		test.Equate(t, dsp.Pixel(x, 0), false)
	}

	// a partial overlap is still a collision
	_ = dsp.DrawSprite(0, 0, []uint8{0xff})
	collision = dsp.DrawSprite(4, 0, []uint8{0xf0})
	test.Equate(t, collision, true)
}

func TestDrawWrap(t *testing.T) {
	dsp := display.NewDisplay()

	// every pixel wraps modulo the grid dimensions individually
	collision := dsp.DrawSprite(62, 31, []uint8{0xc0, 0xc0})
	test.Equate(t, collision, false)
	test.Equate(t, dsp.Pixel(62, 31), true)
	test.Equate(t, dsp.Pixel(63, 31), true)
	test.Equate(t, dsp.Pixel(62, 0), true)
	test.Equate(t, dsp.Pixel(63, 0), true)

	// starting coordinates beyond the grid wrap too
	dsp.Clear()
	_ = dsp.DrawSprite(64, 32, []uint8{0x80})
	test.Equate(t, dsp.Pixel(0, 0), true)
}

type countingRenderer struct {
	frames int

	// pixels counts SetPixel calls since the last frame marker. the marker
	// arrives after the grid so pixelsInFrame holds the count for the frame
	// just completed
	pixels        int
	pixelsInFrame int
	setCount      int
}

func (r *countingRenderer) NewFrame(frameNum int) error {
	r.frames = frameNum
	r.pixelsInFrame = r.pixels
	r.pixels = 0
	return nil
}

func (r *countingRenderer) SetPixel(x, y int, on bool) error {
	r.pixels++
	if on {
		r.setCount++
	}
	return nil
}

func (r *countingRenderer) EndRendering() error {
	return nil
}

func TestRendererPush(t *testing.T) {
	dsp := display.NewDisplay()
	r := &countingRenderer{}
	dsp.AddPixelRenderer(r)

	_ = dsp.DrawSprite(0, 0, []uint8{0xff})

	err := dsp.NewFrame()
	test.ExpectedSuccess(t, err)
	test.Equate(t, r.frames, 1)
	test.Equate(t, r.pixelsInFrame, display.Width*display.Height)
	test.Equate(t, r.setCount, 8)

	err = dsp.NewFrame()
	test.ExpectedSuccess(t, err)
	test.Equate(t, r.frames, 2)
	test.Equate(t, dsp.FrameNum(), 2)
}
