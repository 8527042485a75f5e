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

// PixelRenderer implementations display, or otherwise work with, the visual
// output of the machine. For example, the SDL screen or digest.Video.
//
// The Display pushes the whole pixel grid to every attached renderer once
// per frame: a SetPixel() for every pixel in the grid followed by the
// NewFrame() marker. All calls arrive on the emulation goroutine; renderers
// that hand pixels to another thread must arrange their own
// synchronisation.
type PixelRenderer interface {
	// NewFrame is called once the full grid has been delivered through
	// SetPixel. The frame is complete and can be presented. The frame
	// number increases monotonically from machine reset.
	NewFrame(frameNum int) error

	// SetPixel is called for every pixel of the grid, in row order. The
	// pixel is either on or off; the machine has no notion of colour.
	SetPixel(x, y int, on bool) error

	// EndRendering is called when the machine is being shut down. The
	// renderer will not be called again after EndRendering.
	EndRendering() error
}
