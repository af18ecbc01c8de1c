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

// Package execution records the result of a single instruction execution.
// Useful for the disassembly/trace collaborators, which should not need to
// reach into the internals of the CPU.
package execution

import (
	"github.com/pixelclad/gopher8080/hardware/cpu/instructions"
)

// Result records the execution details of the most recent instruction.
type Result struct {
	// address the opcode was read from. for an interrupt vector this is the
	// address execution will resume at after the vector's RST returns
	Address uint16

	// instruction definition for the opcode. never nil for a completed
	// execution
	Defn *instructions.Definition

	// immediate operand data, if the instruction has any. one byte operands
	// occupy the low byte
	Operand uint16

	// whether a conditional branch was taken
	BranchSuccess bool

	// number of cycles the instruction consumed
	Cycles int

	// whether the instruction was injected as an interrupt vector rather
	// than fetched from memory
	Vectored bool
}

// Reset clears the result in preparation for a new execution.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.Operand = 0
	r.BranchSuccess = false
	r.Cycles = 0
	r.Vectored = false
}
