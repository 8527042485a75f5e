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

// Package display implements the 64x32 monochrome pixel grid of the CHIP-8
// machine and the protocol for observing it.
//
// The Display type itself presents nothing visually. Instead,
// implementations of the PixelRenderer interface are added to it and the
// grid is pushed to each of them once per frame. The SDL screen, the video
// digest used for fingerprinting and the debugger's terminal display are
// all renderers in this sense.
//
// Sprite drawing is XOR compositing: a drawn bit flips its pixel, and the
// draw operation reports whether any pixel was flipped from on to off. The
// machine uses that collision flag as the result of the draw instruction.
package display
