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

package hardware

import (
	"github.com/pixelclad/gopher8080/hardware/cpu"
	"github.com/pixelclad/gopher8080/hardware/memory"
	"github.com/pixelclad/gopher8080/hardware/ports"
)

// Renderer implementations receive the video bitmap once per frame, at the
// point the real hardware enters vblank. The bitmap is the live video
// memory and must not be mutated.
type Renderer interface {
	UpdateFrame(bitmap []uint8) error
}

// InputHandler implementations poll for input events once per frame and
// apply them to the machine's input controller.
type InputHandler interface {
	Handle(con *ports.Controller) error
}

// TraceFunc is called after every executed instruction when tracing is
// attached to the machine.
type TraceFunc func(mc *cpu.CPU)

// Invaders is the root of the emulated machine.
type Invaders struct {
	CPU *cpu.CPU
	Mem *memory.Memory
	Bus *ports.Bus

	renderer Renderer
	input    InputHandler
	trace    TraceFunc
}

// NewInvaders is the preferred method of initialisation for the Invaders
// structure. The program image is copied into the bottom of a fresh memory
// system. A nil mixer mutes the sound latches.
func NewInvaders(program []uint8, mixer ports.AudioMixer) *Invaders {
	inv := &Invaders{
		Mem: memory.NewMemory(program),
		Bus: ports.NewBus(mixer),
	}
	inv.CPU = cpu.NewCPU(inv.Mem, inv.Bus)
	return inv
}

// AttachRenderer connects a renderer to the machine. A nil renderer
// detaches.
func (inv *Invaders) AttachRenderer(rnd Renderer) {
	inv.renderer = rnd
}

// AttachInput connects an input handler to the machine. A nil handler
// detaches.
func (inv *Invaders) AttachInput(inp InputHandler) {
	inv.input = inp
}

// AttachTrace connects a per-instruction trace function to the machine. A
// nil function detaches.
func (inv *Invaders) AttachTrace(trace TraceFunc) {
	inv.trace = trace
}

// Reset returns the machine to its power-on state. The program image is
// untouched.
func (inv *Invaders) Reset() {
	inv.CPU.Reset()
	inv.Bus.Reset()
}
