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

import (
	"fmt"
	"sync"
)

var definitionsOnce sync.Once
var definitions []*Definition

// the 8080 encodes its 8 bit register operands in three bit fields, in this
// order. index 6 is the memory cell addressed by HL.
var target8 = []Target{TargetB, TargetC, TargetD, TargetE, TargetH, TargetL, TargetM, TargetA}

// register pair encoding used by LXI/INX/DCX/DAD. PUSH and POP replace SP
// with the PSW.
var targetPair = []Target{TargetBC, TargetDE, TargetHL, TargetSP}
var targetPushPair = []Target{TargetBC, TargetDE, TargetHL, TargetPSW}

// condition encoding used by the conditional jumps, calls and returns.
var conditions = []Condition{CondNZ, CondZ, CondNC, CondC, CondPO, CondPE, CondP, CondM}
var conditionMnemonics = []string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

// GetDefinitions returns the table of instruction definitions for the 8080,
// keyed by opcode. The table is 256 entries long; undefined opcodes are
// represented by a nil entry. The table is resolved once, on first use.
func GetDefinitions() []*Definition {
	definitionsOnce.Do(func() {
		definitions = make([]*Definition, 256)

		add := func(opcode uint8, mnemonic string, bytes int, cycles int, operator Operator, dest Target, source Target, cond Condition) {
			definitions[opcode] = &Definition{
				OpCode:    opcode,
				Mnemonic:  mnemonic,
				Bytes:     bytes,
				Cycles:    cycles,
				Operator:  operator,
				Dest:      dest,
				Source:    source,
				Condition: cond,
			}
		}

		add(0x00, "NOP", 1, 4, Nop, TargetNone, TargetNone, CondNone)

		// register pair instructions
		for i, p := range targetPair {
			op := uint8(i << 4)
			add(op|0x01, fmt.Sprintf("LXI %s", p), 3, 10, Lxi, p, TargetImm, CondNone)
			add(op|0x03, fmt.Sprintf("INX %s", p), 1, 5, Inx, p, TargetNone, CondNone)
			add(op|0x09, fmt.Sprintf("DAD %s", p), 1, 10, Dad, TargetHL, p, CondNone)
			add(op|0x0b, fmt.Sprintf("DCX %s", p), 1, 5, Dcx, p, TargetNone, CondNone)
		}

		// indirect accumulator load/store is only defined for the BC and DE
		// pairs
		add(0x02, "STAX B", 1, 7, Stax, TargetBC, TargetA, CondNone)
		add(0x12, "STAX D", 1, 7, Stax, TargetDE, TargetA, CondNone)
		add(0x0a, "LDAX B", 1, 7, Ldax, TargetA, TargetBC, CondNone)
		add(0x1a, "LDAX D", 1, 7, Ldax, TargetA, TargetDE, CondNone)

		// single register increment/decrement and immediate load
		for i, r := range target8 {
			op := uint8(i << 3)
			cycles := 5
			mviCycles := 7
			if r == TargetM {
				cycles = 10
				mviCycles = 10
			}
			add(op|0x04, fmt.Sprintf("INR %s", r), 1, cycles, Inr, r, TargetNone, CondNone)
			add(op|0x05, fmt.Sprintf("DCR %s", r), 1, cycles, Dcr, r, TargetNone, CondNone)
			add(op|0x06, fmt.Sprintf("MVI %s", r), 2, mviCycles, Mvi, r, TargetImm, CondNone)
		}

		// rotates
		add(0x07, "RLC", 1, 4, Rlc, TargetA, TargetNone, CondNone)
		add(0x0f, "RRC", 1, 4, Rrc, TargetA, TargetNone, CondNone)
		add(0x17, "RAL", 1, 4, Ral, TargetA, TargetNone, CondNone)
		add(0x1f, "RAR", 1, 4, Rar, TargetA, TargetNone, CondNone)

		// direct addressing
		add(0x22, "SHLD", 3, 16, Shld, TargetImm, TargetHL, CondNone)
		add(0x2a, "LHLD", 3, 16, Lhld, TargetHL, TargetImm, CondNone)
		add(0x32, "STA", 3, 13, Sta, TargetImm, TargetA, CondNone)
		add(0x3a, "LDA", 3, 13, Lda, TargetA, TargetImm, CondNone)

		// accumulator and flag housekeeping
		add(0x27, "DAA", 1, 4, Daa, TargetA, TargetNone, CondNone)
		add(0x2f, "CMA", 1, 4, Cma, TargetA, TargetNone, CondNone)
		add(0x37, "STC", 1, 4, Stc, TargetNone, TargetNone, CondNone)
		add(0x3f, "CMC", 1, 4, Cmc, TargetNone, TargetNone, CondNone)

		// the MOV block. 0x76 would be MOV M,M, which is redefined by the
		// hardware as HLT
		for d, dest := range target8 {
			for s, src := range target8 {
				op := uint8(0x40 | (d << 3) | s)
				if op == 0x76 {
					continue
				}
				cycles := 5
				if dest == TargetM || src == TargetM {
					cycles = 7
				}
				add(op, fmt.Sprintf("MOV %s,%s", dest, src), 1, cycles, Mov, dest, src, CondNone)
			}
		}
		add(0x76, "HLT", 1, 7, Hlt, TargetNone, TargetNone, CondNone)

		// the arithmetic/logic block, and the corresponding immediate forms
		// in the 0xc6..0xfe column
		aluOperators := []Operator{Add, Adc, Sub, Sbb, Ana, Xra, Ora, Cmp}
		aluMnemonics := []string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}
		aluImmMnemonics := []string{"ADI", "ACI", "SUI", "SBI", "ANI", "XRI", "ORI", "CPI"}
		for i, operator := range aluOperators {
			for s, src := range target8 {
				op := uint8(0x80 | (i << 3) | s)
				cycles := 4
				if src == TargetM {
					cycles = 7
				}
				add(op, fmt.Sprintf("%s %s", aluMnemonics[i], src), 1, cycles, operator, TargetA, src, CondNone)
			}

			op := uint8(0xc6 | (i << 3))
			add(op, aluImmMnemonics[i], 2, 7, operator, TargetA, TargetImm, CondNone)
		}

		// conditional return/jump/call, stack, and restart block
		for i, cond := range conditions {
			op := uint8(0xc0 | (i << 3))
			add(op, fmt.Sprintf("R%s", conditionMnemonics[i]), 1, 5, Ret, TargetNone, TargetNone, cond)
			add(op|0x02, fmt.Sprintf("J%s", conditionMnemonics[i]), 3, 10, Jmp, TargetNone, TargetImm, cond)
			add(op|0x04, fmt.Sprintf("C%s", conditionMnemonics[i]), 3, 11, Call, TargetNone, TargetImm, cond)
			add(op|0x07, fmt.Sprintf("RST %d", i), 1, 11, Rst, TargetNone, TargetNone, CondNone)
		}
		for i, p := range targetPushPair {
			op := uint8(0xc0 | (i << 4))
			add(op|0x01, fmt.Sprintf("POP %s", p), 1, 10, Pop, p, TargetNone, CondNone)
			add(op|0x05, fmt.Sprintf("PUSH %s", p), 1, 11, Push, TargetNone, p, CondNone)
		}

		// unconditional control flow
		add(0xc3, "JMP", 3, 10, Jmp, TargetNone, TargetImm, CondNone)
		add(0xc9, "RET", 1, 10, Ret, TargetNone, TargetNone, CondNone)
		add(0xcd, "CALL", 3, 17, Call, TargetNone, TargetImm, CondNone)
		add(0xe9, "PCHL", 1, 5, Pchl, TargetNone, TargetHL, CondNone)

		// stack and register pair exchange
		add(0xe3, "XTHL", 1, 18, Xthl, TargetHL, TargetNone, CondNone)
		add(0xeb, "XCHG", 1, 4, Xchg, TargetHL, TargetDE, CondNone)
		add(0xf9, "SPHL", 1, 5, Sphl, TargetSP, TargetHL, CondNone)

		// the device bus
		add(0xd3, "OUT", 2, 10, Out, TargetImm, TargetA, CondNone)
		add(0xdb, "IN", 2, 10, In, TargetA, TargetImm, CondNone)

		// interrupt control
		add(0xf3, "DI", 1, 4, Di, TargetNone, TargetNone, CondNone)
		add(0xfb, "EI", 1, 4, Ei, TargetNone, TargetNone, CondNone)
	})

	return definitions
}
