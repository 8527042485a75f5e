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

// Package playmode sets the machine running - without any debugging
// features. User input arrives over the gui event channel and is forwarded
// to the keypad.
package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/logger"
)

// Play sets the emulation running.
//
// Programs that reach for an instruction this machine does not implement
// are logged and resumed. The program counter has already moved on so the
// next instruction is often fine; a program that is truly confused will
// just generate more log.
func Play(ch8 *hardware.Chip8, scr gui.GUI, cartload cartridgeloader.Loader) error {
	err := ch8.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// connect gui
	guiChannel := make(chan gui.Event, 2)
	err = scr.SetFeature(gui.ReqSetEventChan, guiChannel)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// we need to end cleanly when ctrl-c is pressed. redirect interrupt
	// signal to an os.Signal channel
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// run and handle gui events
	for {
		err = ch8.Run(func() (bool, error) {
			select {
			case <-intChan:
				return false, nil
			case ev := <-guiChannel:
				switch ev.ID {
				case gui.EventWindowClose:
					return false, nil
				case gui.EventKeyboard:
					return KeyboardEventHandler(ev.Data.(gui.EventDataKeyboard), ch8)
				}
			default:
			}
			return true, nil
		})

		if err == nil {
			return nil
		}

		if curated.Has(err, instructions.UnimplementedInstruction) {
			logger.Logf("playmode", "%v", err)
			continue
		}

		return curated.Errorf("playmode: %v", err)
	}
}
