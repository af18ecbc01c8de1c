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
	"fmt"
)

// ProgramCounter represents the 16 bit program counter. It is also used for
// the stack pointer, which has the same behaviour on this CPU.
type ProgramCounter struct {
	label string
	value uint16
}

// NewProgramCounter creates a new 16 bit register with the given name, and
// initialises the value.
func NewProgramCounter(val uint16, label string) ProgramCounter {
	return ProgramCounter{
		value: val,
		label: label,
	}
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%s=%#04x", pc.label, pc.value)
}

// Address returns the current value of the register as an address.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Label returns the canonical name of the register.
func (pc ProgramCounter) Label() string {
	return pc.label
}

// Load a value into the register.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Add a value to the register. Overflow wraps around, as required by the 16
// bit address space.
func (pc *ProgramCounter) Add(val uint16) {
	pc.value += val
}
