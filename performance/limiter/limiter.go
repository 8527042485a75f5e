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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		renderImage()
//	}
//
// The Tick channel is exported so that a caller pacing two activities at
// different rates can select over both limiters at once. The hardware
// package does exactly that with the instruction rate and the timer rate.
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher8/curated"
)

// this is a really rough attempt at rate limiting. probably only any good
// if base performance of the machine is well above the required rate.

// Limiter will trigger at the requested number of events per second.
type Limiter struct {
	// Tick fires once per event. receive from it directly when selecting
	// over more than one limiter, otherwise use Wait()
	Tick chan bool

	// nanoseconds between events. read atomically by the pulse goroutine
	// so that SetRate() can be called while the limiter is live
	rate int64
}

// NewLimiter is the preferred method of initialisation for the Limiter
// type.
func NewLimiter(perSecond float32) (*Limiter, error) {
	lim := &Limiter{}

	if err := lim.SetRate(perSecond); err != nil {
		return nil, err
	}

	lim.Tick = make(chan bool)

	// run ticker concurrently. the sleep period is adjusted every event to
	// account for the drift caused by the receiver doing actual work
	go func() {
		rate := time.Duration(atomic.LoadInt64(&lim.rate))
		adjusted := rate
		t := time.Now()
		for {
			lim.Tick <- true
			time.Sleep(adjusted)
			nt := time.Now()
			rate = time.Duration(atomic.LoadInt64(&lim.rate))
			adjusted -= nt.Sub(t) - rate
			t = nt
		}
	}()

	return lim, nil
}

// SetRate changes the rate at which the Limiter triggers.
func (lim *Limiter) SetRate(perSecond float32) error {
	if perSecond <= 0 {
		return curated.Errorf("limiter: rate must be positive (%.2f)", perSecond)
	}
	atomic.StoreInt64(&lim.rate, int64(float64(time.Second)/float64(perSecond)))
	return nil
}

// Wait will block until the next trigger.
func (lim *Limiter) Wait() {
	<-lim.Tick
}

// HasWaited will return true if the trigger time has already elapsed and
// false if it is still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.Tick:
		return true
	default:
		return false
	}
}
