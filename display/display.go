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

package display

// Width and Height are the dimensions of the pixel grid. They are fixed
// properties of the machine, not of any particular renderer.
const (
	Width  = 64
	Height = 32
)

// Display is the monochrome pixel grid of the machine. It is mutated only
// by the CPU's draw and clear instructions and pushed to any attached
// PixelRenderer implementations once per frame.
type Display struct {
	pixels [Height][Width]bool

	renderers []PixelRenderer

	frameNum int
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{
		renderers: make([]PixelRenderer, 0),
	}
}

// AddPixelRenderer registers an (additional) implementation of
// PixelRenderer.
func (dsp *Display) AddPixelRenderer(r PixelRenderer) {
	dsp.renderers = append(dsp.renderers, r)
}

// Clear sets every pixel to off. It cannot fail.
func (dsp *Display) Clear() {
	for y := range dsp.pixels {
		for x := range dsp.pixels[y] {
			dsp.pixels[y][x] = false
		}
	}
}

// Reset returns the display to its initial state. The frame count restarts
// from zero.
func (dsp *Display) Reset() {
	dsp.Clear()
	dsp.frameNum = 0
}

// DrawSprite XORs the sprite onto the grid at the specified coordinates and
// returns the collision flag: true if any pixel was turned off by the draw.
//
// Each byte of the sprite is one row, eight pixels wide, most significant
// bit leftmost. Coordinates wrap modulo the grid dimensions for every pixel
// individually.
//
// Writing the collision flag to the flag register is the caller's
// responsibility. DrawSprite knows nothing about registers.
func (dsp *Display) DrawSprite(x, y uint8, sprite []uint8) bool {
	collision := false

	for row, b := range sprite {
		py := (int(y) + row) % Height
		for col := 0; col < 8; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}
			px := (int(x) + col) % Width
			if dsp.pixels[py][px] {
				dsp.pixels[py][px] = false
				collision = true
			} else {
				dsp.pixels[py][px] = true
			}
		}
	}

	return collision
}

// Pixel returns the state of the pixel at the specified coordinates.
// Coordinates wrap in the same way as DrawSprite.
func (dsp *Display) Pixel(x, y int) bool {
	return dsp.pixels[((y%Height)+Height)%Height][((x%Width)+Width)%Width]
}

// NewFrame pushes the current pixel grid to every attached renderer. Called
// on the timer cadence, 60 times per second, by the running machine.
//
// Renderers see the full grid through SetPixel() and then the NewFrame()
// marker, in that order. By the time the marker arrives the frame is
// complete and can be presented, hashed or written out.
func (dsp *Display) NewFrame() error {
	dsp.frameNum++

	for _, r := range dsp.renderers {
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				err := r.SetPixel(x, y, dsp.pixels[y][x])
				if err != nil {
					return err
				}
			}
		}
		err := r.NewFrame(dsp.frameNum)
		if err != nil {
			return err
		}
	}

	return nil
}

// FrameNum returns the number of frames pushed since the last reset.
func (dsp *Display) FrameNum() int {
	return dsp.frameNum
}

// End calls EndRendering on every attached renderer. The display should be
// considered unusable after End.
func (dsp *Display) End() error {
	var rerr error
	for _, r := range dsp.renderers {
		err := r.EndRendering()
		if err != nil {
			rerr = err
		}
	}
	return rerr
}
