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

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/hardware"
)

// Check the performance of the emulator using the supplied cartridge.
//
// The emulation is run for the specified duration and the aggregate
// instruction and frame rates are written to output. A cpu and memory
// profile is created if the profile argument is true.
func Check(output io.Writer, profile bool, cartload cartridgeloader.Loader, duration string, uncapped bool, ips float32) error {
	dsp := display.NewDisplay()

	// attaching a digest renderer means every frame has a consumer, which is
	// closer to how the emulation performs in real use than rendering into
	// the void would be
	_, err := digest.NewVideo(dsp)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	ch8, err := hardware.NewChip8(dsp)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer ch8.End()

	if ips > 0 {
		err = ch8.SetInstructionRate(ips)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	} else {
		ips = hardware.InstructionRate
	}

	err = ch8.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// counters are re-noted when the leadtime concludes
	startFrame := dsp.FrameNum()
	startInstructions := ch8.InstructionCount()

	runner := func() error {
		// the timerChan signals false when the leadtime has elapsed and the
		// measurement proper should begin; true when the measurement period
		// is over
		timerChan := make(chan bool)

		// force a two second leadtime to allow the rate limiters to settle
		// down and then restart the timer for the specified duration
		go func() {
			time.AfterFunc(2*time.Second, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only check the timerChan every PerformanceBrake instructions.
		// checking a channel is relatively expensive and would distort the
		// measurement if it happened every instruction
		performanceBrake := 0

		continueCheck := func() (bool, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						return false, nil
					}

					// leadtime has concluded. note the counters the final
					// figures will be measured against
					startFrame = dsp.FrameNum()
					startInstructions = ch8.InstructionCount()
				default:
				}
			}

			return true, nil
		}

		if uncapped {
			return ch8.RunUncapped(continueCheck)
		}
		return ch8.Run(continueCheck)
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	if profile {
		err = ProfileCPU("performance.cpu.profile", runner)
		if err == nil {
			err = ProfileMem("performance.mem.profile")
		}
	} else {
		err = runner()
	}
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := dsp.FrameNum() - startFrame
	numInstructions := ch8.InstructionCount() - startInstructions

	fps, fpsAccuracy := CalcFPS(numFrames, dur.Seconds())
	actual, ipsAccuracy := CalcIPS(numInstructions, dur.Seconds(), ips)

	output.Write([]byte(fmt.Sprintf("%.0f instructions/s (%d instructions in %.2f seconds) %.1f%%\n",
		actual, numInstructions, dur.Seconds(), ipsAccuracy)))
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n",
		fps, numFrames, dur.Seconds(), fpsAccuracy)))

	return nil
}
