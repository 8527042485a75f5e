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

package sdl8

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8/gui"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them at all
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the GuiCreator interface in the main package.
//
// MUST ONLY be called from the main thread.
func (scr *Sdl8) Service() {
	// loop until there are no more events to retrieve. servicing one event
	// per call is not enough, queued events would take one frame or longer
	// to resolve
	empty := false
	for !empty {
		// checking for SDL events, timing out straight away if there's
		// nothing. the timeout doubles as the polling rate of the loop in
		// the main package, stopping it from spinning
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.postEvent(gui.Event{ID: gui.EventWindowClose})

		case *sdl.KeyboardEvent:
			mod := gui.KeyModNone

			if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = gui.KeyModAlt
			} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
				sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = gui.KeyModShift
			} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = gui.KeyModCtrl
			}

			if ev.Repeat == 0 {
				scr.postEvent(gui.Event{
					ID: gui.EventKeyboard,
					Data: gui.EventDataKeyboard{
						Key:  sdl.GetKeyName(ev.Keysym.Sym),
						Mod:  mod,
						Down: ev.Type == sdl.KEYDOWN,
					},
				})
			}

		case nil:
			// a nil value means WaitEventTimeout has timed out and we can
			// say that the event queue is empty
			empty = true
		}
	}

	// run any outstanding feature requests
	select {
	case request := <-scr.featureReq:
		scr.serviceFeatureRequest(request)
	default:
	}
}

// post event to the registered event channel, if there is one. the channel
// is buffered but the emulation may be between checks; drop rather than
// stall the main thread.
func (scr *Sdl8) postEvent(ev gui.Event) {
	if scr.events == nil {
		return
	}

	select {
	case scr.events <- ev:
	default:
	}
}
