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

package hardware

// While the continueCheck() function is not called often in wall-clock
// terms, in an uncapped run it sits on the hottest path in the emulator and
// a full check on every instruction is expensive.
//
// It depends on context whether it is used or not but the PerformanceBrake
// is a standard value that can be used to filter out expensive code paths
// within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the emulation running at the configured instruction rate, with
// the timers ticking at their own fixed rate. The function returns when
// continueCheck returns false; a nil continueCheck means run forever.
//
// Errors from the CPU are returned as they happen, including the
// recoverable kind. It is the caller's decision whether to log the error
// and call Run() again or to halt; the machine is in a consistent state
// either way.
func (ch8 *Chip8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cont := true
	for cont {
		// the two limiters never fire together. instruction work and timer
		// work interleave at whatever ratio the two rates imply
		select {
		case <-ch8.insLimiter.Tick:
			ch8.instructionCount++
			err := ch8.CPU.ExecuteInstruction()
			if err != nil {
				return err
			}

		case <-ch8.tmrLimiter.Tick:
			err := ch8.Timers.Tick()
			if err != nil {
				return err
			}
			err = ch8.Display.NewFrame()
			if err != nil {
				return err
			}
		}

		var err error
		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunUncapped runs the emulation as fast as the host allows, deriving timer
// progress from instruction progress in the same way as Step().
//
// continueCheck is only consulted once every PerformanceBrake instructions,
// so the check can afford to be thorough.
func (ch8 *Chip8) RunUncapped(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	performanceFilter := 0
	cont := true
	var err error

	for cont {
		err = ch8.Step()
		if err != nil {
			return err
		}

		performanceFilter++
		if performanceFilter >= PerformanceBrake {
			performanceFilter = 0
			cont, err = continueCheck()
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// display frames, using the deterministic pacing of Step(). Useful for
// benchmarking and for tests that compare display output.
//
// The callback, if it is not nil, is called after every frame with the new
// frame number.
func (ch8 *Chip8) RunForFrameCount(numFrames int, callback func(frameNum int) error) error {
	if callback == nil {
		callback = func(_ int) error { return nil }
	}

	fn := ch8.Display.FrameNum()
	targetFrame := fn + numFrames

	for fn < targetFrame {
		err := ch8.Step()
		if err != nil {
			return err
		}

		if nfn := ch8.Display.FrameNum(); nfn != fn {
			fn = nfn
			err = callback(fn)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
