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

package ports

// the 8080 in the cabinet is clocked at 2MHz and the display refreshes at
// 60Hz. the real hardware interrupts twice per frame but we approximate
// with a full frame's worth of cycles between interrupts, alternating the
// vector that is raised.
const (
	clockRate   = 2000000
	refreshRate = 60

	// cycles between interrupts
	interruptThreshold = clockRate / refreshRate
)

// interrupt vectors raised by the display hardware. RST 1 at the middle of
// the frame and RST 2 at the end, when the beam enters vblank.
const (
	VectorMidFrame = 0xcf
	VectorVblank   = 0xd7
)

// DisplayTimer raises the display interrupts the game uses to pace itself.
// The execution loop feeds it the cycle cost of every instruction; once
// enough cycles for a video frame have accumulated the timer raises a
// pending interrupt vector for the loop to collect.
type DisplayTimer struct {
	elapsed int

	// the vector that will be raised at the next threshold crossing
	next uint8

	// a raised vector waiting to be claimed by the execution loop. zero
	// when no interrupt is pending
	pending uint8
}

// NewDisplayTimer is the preferred method of initialisation for the
// DisplayTimer structure.
func NewDisplayTimer() *DisplayTimer {
	return &DisplayTimer{next: VectorMidFrame}
}

// Reset returns the timer to its initial state.
func (tmr *DisplayTimer) Reset() {
	tmr.elapsed = 0
	tmr.next = VectorMidFrame
	tmr.pending = 0
}

// Step accumulates the cycle cost of an executed instruction. At most one
// interrupt is raised per threshold crossing, however many instructions
// execute between checks; the elapsed count returns to zero on the
// crossing.
func (tmr *DisplayTimer) Step(cycles int) {
	tmr.elapsed += cycles
	if tmr.elapsed >= interruptThreshold {
		tmr.elapsed = 0
		tmr.pending = tmr.next
		if tmr.next == VectorMidFrame {
			tmr.next = VectorVblank
		} else {
			tmr.next = VectorMidFrame
		}
	}
}

// Claim returns the pending interrupt vector and clears it. The second
// return value is false when no interrupt is pending.
func (tmr *DisplayTimer) Claim() (uint8, bool) {
	if tmr.pending == 0 {
		return 0, false
	}
	v := tmr.pending
	tmr.pending = 0
	return v, true
}
