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

package ports_test

import (
	"testing"

	"github.com/pixelclad/gopher8080/hardware/ports"
	"github.com/pixelclad/gopher8080/test"
)

func TestShiftRegister(t *testing.T) {
	var sft ports.ShiftRegister

	// the offset field is inverted before the low three bits are kept
	sft.SetOffset(0x07)
	sft.Shift(0xff)
	test.Equate(t, sft.Read(), 0x80)

	// shifting again pushes the first byte down
	sft.Shift(0xaa)
	test.Equate(t, sft.Read(), 0x7f)

	// a zero write selects the largest read offset
	sft.SetOffset(0x00)
	test.Equate(t, sft.Read(), 0xaa)
}

func TestController(t *testing.T) {
	con := ports.NewController()

	// idle patterns. bit 3 of player 1 is tied high
	test.Equate(t, con.ReadP1(), 0x08)
	test.Equate(t, con.ReadP2(), 0x00)

	con.Press(ports.Coin)
	con.Press(ports.ShootP1)
	test.Equate(t, con.ReadP1(), 0x19)

	con.Release(ports.Coin)
	test.Equate(t, con.ReadP1(), 0x18)

	// player 2 movement is on the second register
	con.Press(ports.LeftP2)
	test.Equate(t, con.ReadP2(), 0x20)
	test.Equate(t, con.ReadP1(), 0x18)

	// the 2 player start button is wired to the first register
	con.Press(ports.StartP2)
	test.Equate(t, con.ReadP1(), 0x1a)

	con.Reset()
	test.Equate(t, con.ReadP1(), 0x08)
	test.Equate(t, con.ReadP2(), 0x00)
}

func TestDisplayTimer(t *testing.T) {
	tmr := ports.NewDisplayTimer()

	// no interrupt until a frame's worth of cycles has accumulated
	_, ok := tmr.Claim()
	test.Equate(t, ok, false)

	for i := 0; i < 3333; i++ {
		tmr.Step(10)
	}
	_, ok = tmr.Claim()
	test.Equate(t, ok, false)

	// one interrupt per crossing, however many instructions run between
	// checks
	tmr.Step(5000)
	v, ok := tmr.Claim()
	test.Equate(t, ok, true)
	test.Equate(t, v, ports.VectorMidFrame)

	// claiming clears the pending vector
	_, ok = tmr.Claim()
	test.Equate(t, ok, false)

	// vectors alternate between crossings
	for i := 0; i < 4000; i++ {
		tmr.Step(10)
	}
	v, ok = tmr.Claim()
	test.Equate(t, ok, true)
	test.Equate(t, v, ports.VectorVblank)
}

// recordingMixer counts triggers per sample number.
type recordingMixer struct {
	triggers map[int]int
}

func (m *recordingMixer) Trigger(sample int) {
	if m.triggers == nil {
		m.triggers = make(map[int]int)
	}
	m.triggers[sample]++
}

func TestSoundLatch(t *testing.T) {
	mix := &recordingMixer{}
	lat := ports.NewSoundLatch(mix, ports.SampleUFO, 4)

	// effects trigger on the rising edge only
	lat.Write(0x02)
	lat.Write(0x02)
	test.Equate(t, mix.triggers[ports.SampleShot], 1)

	// clearing and setting again retriggers
	lat.Write(0x00)
	lat.Write(0x0a)
	test.Equate(t, mix.triggers[ports.SampleShot], 2)
	test.Equate(t, mix.triggers[ports.SampleInvaderDie], 1)

	// bits outside the wired range are ignored
	lat.Write(0x80)
	test.Equate(t, len(mix.triggers), 2)
}

func TestBusRouting(t *testing.T) {
	bus := ports.NewBus(nil)

	// shift register round trip through the port interface
	test.ExpectedSuccess(t, bus.PortWrite(0x02, 0x07))
	test.ExpectedSuccess(t, bus.PortWrite(0x04, 0xff))
	v, err := bus.PortRead(0x03)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x80)

	// input registers
	bus.Controller.Press(ports.Coin)
	v, err = bus.PortRead(0x01)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x09)

	// unmapped ports are not fatal
	_, err = bus.PortRead(0x7f)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, bus.PortWrite(0x7f, 0x00))
}
