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

package instructions

import "fmt"

// Operator identifies the operation performed by an instruction. Operators
// group instructions by effect; the Dest/Source/Condition fields of the
// Definition select the precise variant.
type Operator int

// List of operators.
const (
	Nop Operator = iota
	Lxi
	Stax
	Ldax
	Shld
	Lhld
	Sta
	Lda
	Inx
	Dcx
	Inr
	Dcr
	Mvi
	Mov
	Hlt
	Rlc
	Rrc
	Ral
	Rar
	Daa
	Cma
	Stc
	Cmc
	Dad
	Add
	Adc
	Sub
	Sbb
	Ana
	Xra
	Ora
	Cmp
	Jmp
	Call
	Ret
	Rst
	Pchl
	Sphl
	Xchg
	Xthl
	Push
	Pop
	In
	Out
	Ei
	Di
)

// Target is the closed set of register and register pair operands an
// instruction can name. TargetM addresses the memory cell pointed to by the
// HL pair. TargetImm marks an operand taken from the byte(s) following the
// opcode.
type Target int

// List of targets.
const (
	TargetNone Target = iota

	// 8 bit targets, in hardware encoding order
	TargetB
	TargetC
	TargetD
	TargetE
	TargetH
	TargetL
	TargetM
	TargetA

	// immediate operand
	TargetImm

	// register pairs
	TargetBC
	TargetDE
	TargetHL
	TargetSP
	TargetPSW
)

func (t Target) String() string {
	switch t {
	case TargetB:
		return "B"
	case TargetC:
		return "C"
	case TargetD:
		return "D"
	case TargetE:
		return "E"
	case TargetH:
		return "H"
	case TargetL:
		return "L"
	case TargetM:
		return "M"
	case TargetA:
		return "A"
	case TargetBC:
		return "B"
	case TargetDE:
		return "D"
	case TargetHL:
		return "H"
	case TargetSP:
		return "SP"
	case TargetPSW:
		return "PSW"
	}
	return ""
}

// Condition names the flag condition attached to the conditional jump, call
// and return instructions.
type Condition int

// List of conditions.
const (
	CondNone Condition = iota
	CondNZ
	CondZ
	CondNC
	CondC
	CondPO
	CondPE
	CondP
	CondM
)

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode   uint8
	Mnemonic string

	// total number of bytes consumed by the instruction, including the
	// opcode itself. always 1+k where k is 0, 1 or 2
	Bytes int

	// fixed cycle cost added to the cycle counter on execution, from the
	// 8080 timing table
	Cycles int

	Operator  Operator
	Dest      Target
	Source    Target
	Condition Condition
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles)", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles)
}

// IsBranch returns true if the instruction can alter the program counter
// directly.
func (defn Definition) IsBranch() bool {
	switch defn.Operator {
	case Jmp, Call, Ret, Rst, Pchl:
		return true
	}
	return false
}
