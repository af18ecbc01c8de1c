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

import (
	"github.com/pixelclad/gopher8080/logger"
)

// port assignments on the Space Invaders board.
const (
	portInput0      = 0x00
	portInputP1     = 0x01
	portInputP2     = 0x02
	portShiftRead   = 0x03
	portShiftOffset = 0x02
	portSound1      = 0x03
	portShiftData   = 0x04
	portSound2      = 0x05
	portWatchdog    = 0x06
)

// Bus gathers the devices on the I/O bus and routes IN and OUT instructions
// to them. It implements the cpu.PortBus interface.
type Bus struct {
	Shift      ShiftRegister
	Controller *Controller
	Timer      *DisplayTimer

	sound1 *SoundLatch
	sound2 *SoundLatch
}

// NewBus is the preferred method of initialisation for the Bus structure. A
// nil mixer mutes the sound latches.
func NewBus(mixer AudioMixer) *Bus {
	return &Bus{
		Controller: NewController(),
		Timer:      NewDisplayTimer(),
		sound1:     NewSoundLatch(mixer, SampleUFO, 4),
		sound2:     NewSoundLatch(mixer, SampleFleet1, 5),
	}
}

// Reset returns every device on the bus to its power-on state.
func (b *Bus) Reset() {
	b.Shift.Reset()
	b.Controller.Reset()
	b.Timer.Reset()
	b.sound1.Reset()
	b.sound2.Reset()
}

// PortRead is an implementation of the cpu.PortBus interface. Reads from
// unmapped ports are logged and return zero; the programs we run probe
// ports the emulation doesn't model and the condition isn't fatal.
func (b *Bus) PortRead(port uint8) (uint8, error) {
	switch port {
	case portInput0:
		// the first input port is hardwired and the game never changes
		// behaviour on it. bits 1 to 3 are tied high
		return 0x0e, nil
	case portInputP1:
		return b.Controller.ReadP1(), nil
	case portInputP2:
		return b.Controller.ReadP2(), nil
	case portShiftRead:
		return b.Shift.Read(), nil
	}

	logger.Logf("ports", "read from unmapped port (%#02x)", port)
	return 0, nil
}

// PortWrite is an implementation of the cpu.PortBus interface. Writes to
// unmapped ports are logged and discarded. The watchdog port is recognised
// but has no work to do, we never stall the way the real hardware can.
func (b *Bus) PortWrite(port uint8, data uint8) error {
	switch port {
	case portShiftOffset:
		b.Shift.SetOffset(data)
	case portSound1:
		b.sound1.Write(data)
	case portShiftData:
		b.Shift.Shift(data)
	case portSound2:
		b.sound2.Write(data)
	case portWatchdog:
		// watchdog reset. ignored
	default:
		logger.Logf("ports", "write to unmapped port (%#02x)", port)
	}
	return nil
}
