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

package cpu

import (
	"fmt"
	"math/bits"

	"github.com/pixelclad/gopher8080/hardware/cpu/execution"
	"github.com/pixelclad/gopher8080/hardware/cpu/instructions"
	"github.com/pixelclad/gopher8080/hardware/cpu/registers"
	"github.com/pixelclad/gopher8080/hardware/memory/cpubus"
)

// PortBus defines the operations required of the device bus addressed by the
// IN and OUT instructions. Port numbers are 8 bit and are a separate address
// space to memory.
type PortBus interface {
	PortRead(port uint8) (uint8, error)
	PortWrite(port uint8, data uint8) error
}

// CPU implements the Intel 8080 found in Space Invaders class arcade
// hardware.
type CPU struct {
	PC registers.ProgramCounter
	SP registers.ProgramCounter

	A registers.Register
	B registers.Register
	C registers.Register
	D registers.Register
	E registers.Register
	H registers.Register
	L registers.Register

	Status registers.StatusRegister

	// interrupt enable flag. set by EI, cleared by DI and on interrupt
	// dispatch
	InterruptsEnabled bool

	// the CPU has executed a HLT and is waiting for an interrupt
	Halted bool

	// monotonically increasing counts since the last call to Reset()
	Cycles       uint64
	Instructions uint64

	// last result. the Defn field is nil when the CPU has just been reset
	LastResult execution.Result

	mem          cpubus.Memory
	ports        PortBus
	instructions []*instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Memory, ports PortBus) *CPU {
	return &CPU{
		mem:          mem,
		ports:        ports,
		PC:           registers.NewProgramCounter(0, "PC"),
		SP:           registers.NewProgramCounter(0, "SP"),
		A:            registers.NewRegister(0, "A"),
		B:            registers.NewRegister(0, "B"),
		C:            registers.NewRegister(0, "C"),
		D:            registers.NewRegister(0, "D"),
		E:            registers.NewRegister(0, "E"),
		H:            registers.NewRegister(0, "H"),
		L:            registers.NewRegister(0, "L"),
		Status:       registers.NewStatusRegister(),
		instructions: instructions.GetDefinitions(),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s %s %s %s %s=%s",
		mc.PC, mc.SP, mc.A, mc.B, mc.C, mc.D, mc.E, mc.H, mc.L,
		mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers, flags and counters.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.SP.Load(0)
	mc.A.Load(0)
	mc.B.Load(0)
	mc.C.Load(0)
	mc.D.Load(0)
	mc.E.Load(0)
	mc.H.Load(0)
	mc.L.Load(0)
	mc.Status.Reset()
	mc.InterruptsEnabled = false
	mc.Halted = false
	mc.Cycles = 0
	mc.Instructions = 0
	mc.LastResult.Reset()
}

// reg8 returns the 8 bit register named by the target. It is a programming
// error to call this with anything other than an 8 bit register target;
// TargetM is resolved by get8/set8 before this point.
func (mc *CPU) reg8(t instructions.Target) *registers.Register {
	switch t {
	case instructions.TargetB:
		return &mc.B
	case instructions.TargetC:
		return &mc.C
	case instructions.TargetD:
		return &mc.D
	case instructions.TargetE:
		return &mc.E
	case instructions.TargetH:
		return &mc.H
	case instructions.TargetL:
		return &mc.L
	case instructions.TargetA:
		return &mc.A
	}
	panic(fmt.Sprintf("cpu: not an 8 bit register target (%d)", t))
}

// get8 returns the value of the 8 bit target. TargetM reads the memory cell
// addressed by the HL pair.
func (mc *CPU) get8(t instructions.Target) (uint8, error) {
	if t == instructions.TargetM {
		return mc.mem.Read(mc.HL())
	}
	return mc.reg8(t).Value(), nil
}

// set8 writes a value to the 8 bit target. TargetM writes the memory cell
// addressed by the HL pair.
func (mc *CPU) set8(t instructions.Target, val uint8) error {
	if t == instructions.TargetM {
		return mc.mem.Write(mc.HL(), val)
	}
	mc.reg8(t).Load(val)
	return nil
}

// BC returns the derived value of the BC register pair.
func (mc *CPU) BC() uint16 {
	return registers.Pair(mc.B.Value(), mc.C.Value())
}

// DE returns the derived value of the DE register pair.
func (mc *CPU) DE() uint16 {
	return registers.Pair(mc.D.Value(), mc.E.Value())
}

// HL returns the derived value of the HL register pair.
func (mc *CPU) HL() uint16 {
	return registers.Pair(mc.H.Value(), mc.L.Value())
}

// PSW returns the derived value of the processor status word: the
// accumulator paired with the packed flags byte.
func (mc *CPU) PSW() uint16 {
	return registers.Pair(mc.A.Value(), mc.Status.Value())
}

// getPair returns the value of the register pair named by the target.
func (mc *CPU) getPair(t instructions.Target) uint16 {
	switch t {
	case instructions.TargetBC:
		return mc.BC()
	case instructions.TargetDE:
		return mc.DE()
	case instructions.TargetHL:
		return mc.HL()
	case instructions.TargetSP:
		return mc.SP.Address()
	case instructions.TargetPSW:
		return mc.PSW()
	}
	panic(fmt.Sprintf("cpu: not a register pair target (%d)", t))
}

// setPair writes a 16 bit value to the register pair named by the target,
// writing both underlying bytes.
func (mc *CPU) setPair(t instructions.Target, val uint16) {
	hi, lo := registers.Split(val)
	switch t {
	case instructions.TargetBC:
		mc.B.Load(hi)
		mc.C.Load(lo)
	case instructions.TargetDE:
		mc.D.Load(hi)
		mc.E.Load(lo)
	case instructions.TargetHL:
		mc.H.Load(hi)
		mc.L.Load(lo)
	case instructions.TargetSP:
		mc.SP.Load(val)
	case instructions.TargetPSW:
		mc.A.Load(hi)
		mc.Status.FromValue(lo)
	default:
		panic(fmt.Sprintf("cpu: not a register pair target (%d)", t))
	}
}

// fetch8 reads the next instruction byte, advancing the program counter.
func (mc *CPU) fetch8() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.Operand = uint16(v)
	return v, nil
}

// fetch16 reads the next two instruction bytes (low byte first), advancing
// the program counter.
func (mc *CPU) fetch16() (uint16, error) {
	lo, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)

	hi, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)

	mc.LastResult.Operand = registers.Pair(hi, lo)
	return mc.LastResult.Operand, nil
}

// push16 writes a 16 bit value to the stack: high byte at SP-1, low byte at
// SP-2. SP is decremented by two.
func (mc *CPU) push16(val uint16) error {
	hi, lo := registers.Split(val)

	if err := mc.mem.Write(mc.SP.Address()-1, hi); err != nil {
		return err
	}
	if err := mc.mem.Write(mc.SP.Address()-2, lo); err != nil {
		return err
	}
	mc.SP.Add(0xfffe)
	return nil
}

// pop16 reads a 16 bit value from the stack: low byte at SP, high byte at
// SP+1. SP is incremented by two.
func (mc *CPU) pop16() (uint16, error) {
	lo, err := mc.mem.Read(mc.SP.Address())
	if err != nil {
		return 0, err
	}
	hi, err := mc.mem.Read(mc.SP.Address() + 1)
	if err != nil {
		return 0, err
	}
	mc.SP.Add(2)
	return registers.Pair(hi, lo), nil
}

// condition tests the named flag condition.
func (mc *CPU) condition(c instructions.Condition) bool {
	switch c {
	case instructions.CondNone:
		return true
	case instructions.CondNZ:
		return !mc.Status.Zero
	case instructions.CondZ:
		return mc.Status.Zero
	case instructions.CondNC:
		return !mc.Status.Carry
	case instructions.CondC:
		return mc.Status.Carry
	case instructions.CondPO:
		return !mc.Status.Parity
	case instructions.CondPE:
		return mc.Status.Parity
	case instructions.CondP:
		return !mc.Status.Sign
	case instructions.CondM:
		return mc.Status.Sign
	}
	panic(fmt.Sprintf("cpu: unknown condition (%d)", c))
}

// setZSP recomputes the Zero, Sign and Parity flags from an 8 bit result.
// Parity is true when the popcount of the result is even.
func (mc *CPU) setZSP(val uint8) {
	mc.Status.Zero = val == 0
	mc.Status.Sign = val&0x80 == 0x80
	mc.Status.Parity = bits.OnesCount8(val)%2 == 0
}

// setZSP16 recomputes the Zero, Sign and Parity flags from a 16 bit result.
// Used by the register pair increment/decrement instructions, which by
// convention do not affect the Carry flag.
func (mc *CPU) setZSP16(val uint16) {
	mc.Status.Zero = val == 0
	mc.Status.Sign = val&0x8000 == 0x8000
	mc.Status.Parity = bits.OnesCount16(val)%2 == 0
}

// add performs 8 bit addition into the accumulator, recomputing all
// arithmetic flags. The Carry flag is set from the untruncated sum.
func (mc *CPU) add(val uint8, carry bool) {
	a := mc.A.Value()

	ans := uint16(a) + uint16(val)
	if carry {
		ans++
	}

	mc.setZSP(uint8(ans))
	mc.Status.Carry = ans > 0xff
	mc.Status.AuxCarry = (a^val^uint8(ans))&0x10 == 0x10
	mc.A.Load(uint8(ans))
}

// sub performs 8 bit subtraction into the accumulator. The Carry flag is set
// on unsigned borrow.
func (mc *CPU) sub(val uint8, borrow bool) {
	a := mc.A.Value()

	ans := uint16(a) - uint16(val)
	if borrow {
		ans--
	}

	mc.setZSP(uint8(ans))
	mc.Status.Carry = ans&0x100 == 0x100
	mc.Status.AuxCarry = (a^val^uint8(ans))&0x10 == 0x10
	mc.A.Load(uint8(ans))
}
