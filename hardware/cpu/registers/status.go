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

package registers

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. The flags are booleans at all times; they are only ever packed
// into an 8 bit value when pushed onto the stack as part of the PSW, and
// unpacked again when popped.
type StatusRegister struct {
	Zero     bool
	Sign     bool
	Parity   bool
	Carry    bool
	AuxCarry bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if sr.Parity {
		s.WriteRune('P')
	} else {
		s.WriteRune('p')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	if sr.AuxCarry {
		s.WriteRune('A')
	} else {
		s.WriteRune('a')
	}

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack as the low byte of the PSW.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Zero {
		v |= 0x01
	}
	if sr.Sign {
		v |= 0x02
	}
	if sr.Parity {
		v |= 0x04
	}
	if sr.Carry {
		v |= 0x08
	}
	if sr.AuxCarry {
		v |= 0x10
	}

	return v
}

// FromValue converts an 8 bit value (taken from the stack, for example) to
// the StatusRegister struct receiver.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Zero = v&0x01 == 0x01
	sr.Sign = v&0x02 == 0x02
	sr.Parity = v&0x04 == 0x04
	sr.Carry = v&0x08 == 0x08
	sr.AuxCarry = v&0x10 == 0x10
}
