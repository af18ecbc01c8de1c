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

// Package disassembly formats 8080 instructions as human readable strings.
// It is driven by the same definitions table as the CPU and never mutates
// machine state.
package disassembly

import (
	"fmt"
	"strings"

	"github.com/pixelclad/gopher8080/curated"
	"github.com/pixelclad/gopher8080/hardware/cpu/execution"
	"github.com/pixelclad/gopher8080/hardware/cpu/instructions"
	"github.com/pixelclad/gopher8080/hardware/memory/cpubus"
)

// UndecodableOpCode is the error pattern returned when the byte at the
// requested address is not a defined opcode.
const UndecodableOpCode = "disassembly: undecodable opcode (%#02x) at (%#04x)"

// entry formats a decoded instruction: the address, the mnemonic and any
// operand data. A mnemonic that already names a register target gets a
// comma before the operand, matching assembler convention.
func entry(address uint16, defn *instructions.Definition, operand uint16) string {
	sep := " "
	if strings.Contains(defn.Mnemonic, " ") {
		sep = ","
	}
	switch defn.Bytes {
	case 2:
		return fmt.Sprintf("%#04x %s%s%#02x", address, defn.Mnemonic, sep, operand&0x00ff)
	case 3:
		return fmt.Sprintf("%#04x %s%s%#04x", address, defn.Mnemonic, sep, operand)
	}
	return fmt.Sprintf("%#04x %s", address, defn.Mnemonic)
}

// Format returns the disassembly of the instruction at the given address.
// Memory is only read, never written.
func Format(mem cpubus.Memory, address uint16) (string, error) {
	opcode, err := mem.Read(address)
	if err != nil {
		return "", err
	}

	defn := instructions.GetDefinitions()[opcode]
	if defn == nil {
		return "", curated.Errorf(UndecodableOpCode, opcode, address)
	}

	var operand uint16
	switch defn.Bytes {
	case 2:
		lo, err := mem.Read(address + 1)
		if err != nil {
			return "", err
		}
		operand = uint16(lo)
	case 3:
		lo, err := mem.Read(address + 1)
		if err != nil {
			return "", err
		}
		hi, err := mem.Read(address + 2)
		if err != nil {
			return "", err
		}
		operand = uint16(hi)<<8 | uint16(lo)
	}

	return entry(address, defn, operand), nil
}

// FormatResult returns the disassembly of a completed execution, as
// recorded by the CPU. Interrupt vectors are marked, their opcode never
// appears in memory.
func FormatResult(res execution.Result) string {
	if res.Defn == nil {
		return fmt.Sprintf("%#04x ???", res.Address)
	}
	s := entry(res.Address, res.Defn, res.Operand)
	if res.Vectored {
		return fmt.Sprintf("%s (interrupt)", s)
	}
	return s
}
