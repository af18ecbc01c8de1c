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
	"github.com/pixelclad/gopher8080/hardware/ports"
)

// Run drives the machine until an error occurs or the continueCheck
// function returns false. The continueCheck function is consulted once per
// video frame and may be nil.
//
// The loop alternates between two states: normal fetch-execute, and
// interrupt dispatch, entered only at an instruction boundary when the
// interrupt enable flag is set and the display timer has a vector pending.
// A pending vector survives until interrupts are enabled; the timer may
// replace it with a fresher one in the meantime.
//
// The end-of-frame vector is the point the machine pushes the video bitmap
// to the attached renderer and services input, the same moment the game's
// own vblank handler runs.
func (inv *Invaders) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	var bitmap []uint8
	if inv.renderer != nil {
		var err error
		bitmap, err = inv.Mem.VideoBitmap()
		if err != nil {
			return err
		}
	}

	for {
		if err := inv.CPU.ExecuteInstruction(); err != nil {
			return err
		}
		inv.Bus.Timer.Step(inv.CPU.LastResult.Cycles)

		if inv.trace != nil {
			inv.trace(inv.CPU)
		}

		if !inv.CPU.InterruptsEnabled {
			continue
		}

		vector, ok := inv.Bus.Timer.Claim()
		if !ok {
			continue
		}

		if err := inv.CPU.ExecuteVector(vector); err != nil {
			return err
		}
		inv.Bus.Timer.Step(inv.CPU.LastResult.Cycles)

		if inv.trace != nil {
			inv.trace(inv.CPU)
		}

		if vector != ports.VectorVblank {
			continue
		}

		if inv.renderer != nil {
			if err := inv.renderer.UpdateFrame(bitmap); err != nil {
				return err
			}
		}
		if inv.input != nil {
			if err := inv.input.Handle(inv.Bus.Controller); err != nil {
				return err
			}
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
