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

// Package hardware is the base package for the CHIP-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Chip8 type is the root of the emulation and contains external
// references to all the machine's sub-systems. From here, the emulation can
// either be started to run continuously at the configured instruction rate
// (with optional callback to check for continuation); or it can be stepped
// one instruction at a time.
//
// The two pacing regimes differ in how the sixty-times-a-second timer pulse
// is generated. Run() takes the pulse from a wall-clock limiter, which is
// right for interactive use. Step() and RunUncapped() derive the pulse from
// the number of instructions executed, which keeps the machine deterministic
// when there is no wall-clock to follow.
package hardware
