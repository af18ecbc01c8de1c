// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay is the SDL implementation of the hardware.Renderer and
// hardware.InputHandler interfaces: a window showing the 224x256 monochrome
// display, and a keyboard mapping onto the cabinet's buttons.
package sdlplay

import (
	"github.com/pixelclad/gopher8080/curated"
	"github.com/pixelclad/gopher8080/hardware/memory"

	"github.com/veandco/go-sdl2/sdl"
)

// QuitEvent is the error pattern returned by Handle() when the user has
// asked for the window to close. It is a request, not a failure.
const QuitEvent = "sdlplay: quit"

// the rotated display of the cabinet.
const (
	horizPixels = 224
	vertPixels  = 256
	pixelDepth  = 4
)

// SdlPlay is a simple SDL window onto the video bitmap.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array copied to the texture on every frame. it is
	// horizPixels * vertPixels * pixelDepth in length
	pixels []byte
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// structure.
func NewSdlPlay(title string, scale int32) (*SdlPlay, error) {
	scr := &SdlPlay{}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		horizPixels*scale, vertPixels*scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// vsync paces the emulation. the machine produces frames at the rate the
	// real hardware does so presenting in step with the monitor is enough,
	// there is no separate frame limiter
	scr.renderer, err = sdl.CreateRenderer(scr.window, -1,
		uint32(sdl.RENDERER_ACCELERATED)|uint32(sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		horizPixels, vertPixels)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, horizPixels*vertPixels*pixelDepth)

	// preset alpha channel, it never changes
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	return scr, nil
}

// Destroy tears the window down.
func (scr *SdlPlay) Destroy() {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
	}
	sdl.Quit()
}

// UpdateFrame implements the hardware.Renderer interface. The bitmap is
// unpacked one bit per pixel into the texture and presented.
func (scr *SdlPlay) UpdateFrame(bitmap []uint8) error {
	i := 0
	for y := 0; y < vertPixels; y++ {
		for x := 0; x < horizPixels; x++ {
			var v byte
			if memory.Pixel(bitmap, x, y) == 1 {
				v = 255
			}
			scr.pixels[i] = v
			scr.pixels[i+1] = v
			scr.pixels[i+2] = v
			i += pixelDepth
		}
	}

	err := scr.texture.Update(nil, scr.pixels, horizPixels*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}
