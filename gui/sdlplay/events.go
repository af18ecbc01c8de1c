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

package sdlplay

import (
	"github.com/pixelclad/gopher8080/curated"
	"github.com/pixelclad/gopher8080/hardware/ports"

	"github.com/veandco/go-sdl2/sdl"
)

// the keyboard mapping onto the cabinet's buttons. player 1 on the arrow
// keys, player 2 on WASD-style keys.
var keyMap = map[sdl.Keycode]ports.Event{
	sdl.K_c:     ports.Coin,
	sdl.K_1:     ports.StartP1,
	sdl.K_2:     ports.StartP2,
	sdl.K_LEFT:  ports.LeftP1,
	sdl.K_RIGHT: ports.RightP1,
	sdl.K_SPACE: ports.ShootP1,
	sdl.K_a:     ports.LeftP2,
	sdl.K_d:     ports.RightP2,
	sdl.K_s:     ports.ShootP2,
}

// Handle implements the hardware.InputHandler interface. The event queue is
// drained once per call; the machine calls once per frame, which is
// responsive enough for cabinet buttons.
func (scr *SdlPlay) Handle(con *ports.Controller) error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return curated.Errorf(QuitEvent)

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			if ev.Keysym.Sym == sdl.K_ESCAPE {
				return curated.Errorf(QuitEvent)
			}

			input, ok := keyMap[ev.Keysym.Sym]
			if !ok {
				continue
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				con.Press(input)
			case sdl.KEYUP:
				con.Release(input)
			}
		}
	}

	return nil
}
