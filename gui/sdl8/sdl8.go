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

// Package sdl8 is an SDL implementation of the display.PixelRenderer
// interface. It also registers the sdlaudio beeper with the machine's
// timers.
//
// Window and event handling must happen on the main thread, which is why
// creation is arranged through the mainSync mechanism in the main package
// and why the Service() function exists. Pixel pushing arrives on the
// emulation goroutine, as it does for every PixelRenderer.
package sdl8

import (
	"io"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/hardware/timer"
)

const pixelDepth = 4

// the default amount of scaling applied to each pixel. the machine's grid
// is tiny by modern standards.
const defScale = 12.0

// pixel intensities. set pixels are a warm white; unset pixels are a dark
// grey rather than pure black so that the extent of the display is visible
// against the window.
const (
	intensityOn  = 0xf0
	intensityOff = 0x10
)

// Sdl8 is a simple SDL implementation of the display.PixelRenderer
// interface.
type Sdl8 struct {
	dsp *display.Display

	// connects the SDL event loop with the parent process. set through the
	// ReqSetEventChan feature request
	events chan gui.Event

	// all audio is handled by the sdlaudio package
	snd *sdlaudio.Audio

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// to the renderer. display.Width * display.Height * pixelDepth in length
	pixels []byte

	// the amount of scaling applied to each pixel
	scale float32

	// feature requests are forwarded to the main thread and serviced by
	// Service()
	featureReq chan featureRequest
	featureErr chan error
}

// NewSdl8 is the preferred method of initialisation for the Sdl8 type.
//
// The returned instance has registered itself as a renderer of the
// supplied display and its beeper as a mixer of the supplied timers.
//
// MUST ONLY be called from the main thread.
func NewSdl8(dsp *display.Display, tmr *timer.Timers, scale float32) (*Sdl8, error) {
	scr := &Sdl8{
		dsp:        dsp,
		featureReq: make(chan featureRequest),
		featureErr: make(chan error),
	}

	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdl8: %v", err)
	}

	// window size is set in setScaling() below. windows are created hidden
	// and shown on a ReqSetVisibility request
	scr.window, err = sdl.CreateWindow("Gopher8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdl8: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdl8: %v", err)
	}

	// texture is applied to the renderer to show the image. we copy the
	// pixels to it on every NewFrame()
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(display.Width), int32(display.Height))
	if err != nil {
		return nil, curated.Errorf("sdl8: %v", err)
	}

	scr.pixels = make([]byte, display.Width*display.Height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	if scale <= 0.0 {
		scale = defScale
	}
	err = scr.setScaling(scale)
	if err != nil {
		return nil, curated.Errorf("sdl8: %v", err)
	}

	// initialise the sound system
	scr.snd, err = sdlaudio.NewAudio()
	if err != nil {
		return nil, curated.Errorf("sdl8: %v", err)
	}

	// register ourselves as a display.PixelRenderer
	dsp.AddPixelRenderer(scr)

	// register the beeper as a timer.AudioMixer
	tmr.AddAudioMixer(scr.snd)

	setupService()

	return scr, nil
}

// use scale of -1 to reapply the existing scale value.
func (scr *Sdl8) setScaling(scale float32) error {
	if scale >= 0 {
		scr.scale = scale
	}

	w := int32(float32(display.Width) * scr.scale)
	h := int32(float32(display.Height) * scr.scale)
	scr.window.SetSize(w, h)

	// make sure everything drawn through the renderer is scaled up too
	err := scr.renderer.SetScale(scr.scale, scr.scale)
	if err != nil {
		return err
	}

	return nil
}

func (scr *Sdl8) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// NewFrame implements the display.PixelRenderer interface.
func (scr *Sdl8) NewFrame(frameNum int) error {
	err := scr.texture.Update(nil, scr.pixels, display.Width*pixelDepth)
	if err != nil {
		return curated.Errorf("sdl8: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdl8: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// SetPixel implements the display.PixelRenderer interface.
func (scr *Sdl8) SetPixel(x, y int, on bool) error {
	i := (y*display.Width + x) * pixelDepth
	if i > len(scr.pixels)-pixelDepth {
		return nil
	}

	v := byte(intensityOff)
	if on {
		v = intensityOn
	}

	scr.pixels[i] = v
	scr.pixels[i+1] = v
	scr.pixels[i+2] = v

	return nil
}

// EndRendering implements the display.PixelRenderer interface.
func (scr *Sdl8) EndRendering() error {
	return nil
}

// Destroy implements the GuiCreator interface in the main package.
//
// MUST ONLY be called from the main thread.
func (scr *Sdl8) Destroy(output io.Writer) {
	err := scr.snd.EndMixing()
	if err != nil {
		io.WriteString(output, err.Error())
	}

	err = scr.texture.Destroy()
	if err != nil {
		io.WriteString(output, err.Error())
	}

	err = scr.renderer.Destroy()
	if err != nil {
		io.WriteString(output, err.Error())
	}

	err = scr.window.Destroy()
	if err != nil {
		io.WriteString(output, err.Error())
	}
}
