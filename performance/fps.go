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

package performance

import "github.com/jetsetilly/gopher8/hardware/timer"

// CalcFPS takes the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage of
// the 60Hz the timers and display run at.
func CalcFPS(numFrames int, duration float64) (fps float64, accuracy float64) {
	fps = float64(numFrames) / duration
	accuracy = 100 * fps / float64(timer.TickHz)
	return fps, accuracy
}

// CalcIPS takes the number of executed instructions and duration (in
// seconds) and returns the instructions-per-second and the accuracy of that
// value as a percentage of the nominal instruction rate. Uncapped runs will
// exceed 100%.
func CalcIPS(numInstructions uint64, duration float64, nominalRate float32) (ips float64, accuracy float64) {
	ips = float64(numInstructions) / duration
	accuracy = 100 * ips / float64(nominalRate)
	return ips, accuracy
}
