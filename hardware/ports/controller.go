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

// Event names an input the cabinet hardware can report.
type Event int

// List of valid Events. The Start and Coin events only exist on the player 1
// register, as they do on the real cabinet.
const (
	Coin Event = iota
	StartP1
	StartP2
	ShootP1
	LeftP1
	RightP1
	ShootP2
	LeftP2
	RightP2
)

// idle bit patterns for the two input registers. bit 3 of the player 1
// register is tied high on the real board.
const (
	idleP1 = 0x08
	idleP2 = 0x00
)

// Controller implements the two player input registers, read through ports
// 1 and 2. Each input is a single bit, set while the input is held.
type Controller struct {
	p1 uint8
	p2 uint8
}

// NewController is the preferred method of initialisation for the
// Controller structure.
func NewController() *Controller {
	return &Controller{p1: idleP1, p2: idleP2}
}

// Reset restores both registers to their idle bit patterns.
func (con *Controller) Reset() {
	con.p1 = idleP1
	con.p2 = idleP2
}

// event bit assignment, per register.
func (con *Controller) eventBit(ev Event) (*uint8, uint8) {
	switch ev {
	case Coin:
		return &con.p1, 0x01
	case StartP2:
		return &con.p1, 0x02
	case StartP1:
		return &con.p1, 0x04
	case ShootP1:
		return &con.p1, 0x10
	case LeftP1:
		return &con.p1, 0x20
	case RightP1:
		return &con.p1, 0x40
	case ShootP2:
		return &con.p2, 0x10
	case LeftP2:
		return &con.p2, 0x20
	case RightP2:
		return &con.p2, 0x40
	}
	return nil, 0
}

// Press sets the register bit assigned to the event.
func (con *Controller) Press(ev Event) {
	if reg, bit := con.eventBit(ev); reg != nil {
		*reg |= bit
	}
}

// Release clears the register bit assigned to the event.
func (con *Controller) Release(ev Event) {
	if reg, bit := con.eventBit(ev); reg != nil {
		*reg &^= bit
	}
}

// ReadP1 returns the player 1 input register, as read through port 1.
func (con *Controller) ReadP1() uint8 {
	return con.p1
}

// ReadP2 returns the player 2 input register, as read through port 2.
func (con *Controller) ReadP2() uint8 {
	return con.p2
}
