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

package cpu_test

import (
	"testing"

	"github.com/pixelclad/gopher8080/curated"
	"github.com/pixelclad/gopher8080/hardware/cpu"
	"github.com/pixelclad/gopher8080/test"
)

// mockMem is a flat 64k memory with no mirroring or write protection.
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

func (m *mockMem) Read(address uint16) (uint8, error) {
	return m.internal[address], nil
}

func (m *mockMem) Write(address uint16, data uint8) error {
	m.internal[address] = data
	return nil
}

// putInstructions copies bytes into memory starting at origin, returning the
// address of the next free cell.
func (m *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		_ = m.Write(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

// mockPorts records the last OUT and returns a canned value for IN.
type mockPorts struct {
	lastPort uint8
	lastData uint8
	inValue  uint8
}

func (p *mockPorts) PortRead(port uint8) (uint8, error) {
	p.lastPort = port
	return p.inValue, nil
}

func (p *mockPorts) PortWrite(port uint8, data uint8) error {
	p.lastPort = port
	p.lastData = data
	return nil
}

func newTestCPU() (*cpu.CPU, *mockMem, *mockPorts) {
	mem := newMockMem()
	ports := &mockPorts{}
	return cpu.NewCPU(mem, ports), mem, ports
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	if err := mc.ExecuteInstruction(); err != nil {
		t.Fatalf("execution error (%v)", err)
	}
}

func TestAddition(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// MVI A,0x05 / MVI B,0x03 / ADD B
	mem.putInstructions(0x0000, 0x3e, 0x05, 0x06, 0x03, 0x80)
	step(t, mc)
	step(t, mc)
	step(t, mc)

	test.Equate(t, mc.A.Value(), 0x08)
	test.Equate(t, mc.Status.Zero, false)
	test.Equate(t, mc.Status.Sign, false)
	test.Equate(t, mc.Status.Carry, false)

	// 0x08 has a single set bit so parity is odd
	test.Equate(t, mc.Status.Parity, false)

	// carry out of the high bit. 0xff + 0x02 = 0x101
	mc.Reset()
	mem.putInstructions(0x0000, 0x3e, 0xff, 0xc6, 0x02)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x01)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.AuxCarry, true)
}

func TestPairAddition(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// LXI H,0xffff / LXI B,0x0001 / DAD B. carry out of the 16 bit sum
	mem.putInstructions(0x0000, 0x21, 0xff, 0xff, 0x01, 0x01, 0x00, 0x09)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.HL(), 0x0000)
	test.Equate(t, mc.Status.Carry, true)

	// DAD only affects the carry flag. the result was zero but Zero is
	// untouched
	test.Equate(t, mc.Status.Zero, false)

	// LXI SP,0x1000 / LXI H,0x2000 / DAD SP. no carry
	mc.Reset()
	mem.putInstructions(0x0000, 0x31, 0x00, 0x10, 0x21, 0x00, 0x20, 0x39)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.HL(), 0x3000)
	test.Equate(t, mc.Status.Carry, false)
}

func TestCompare(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// CPI against an equal value sets Zero and leaves the accumulator alone
	mem.putInstructions(0x0000, 0x3e, 0x10, 0xfe, 0x10, 0xfe, 0x20)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x10)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Carry, false)

	// comparing against a larger value borrows
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x10)
	test.Equate(t, mc.Status.Zero, false)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.Sign, true)
}

func TestRotate(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// RRC is periodic with period 8
	origin := mem.putInstructions(0x0000, 0x3e, 0xb5)
	for i := 0; i < 8; i++ {
		origin = mem.putInstructions(origin, 0x0f)
	}
	step(t, mc)
	for i := 0; i < 8; i++ {
		step(t, mc)
	}
	test.Equate(t, mc.A.Value(), 0xb5)

	// RLC moves the high bit into both the carry flag and bit 0
	mc.Reset()
	mem.putInstructions(0x0000, 0x3e, 0x80, 0x07)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x01)
	test.Equate(t, mc.Status.Carry, true)

	// RAR shifts the old carry into the high bit
	mc.Reset()
	mem.putInstructions(0x0000, 0x37, 0x3e, 0x02, 0x1f)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x81)
	test.Equate(t, mc.Status.Carry, false)
}

func TestStack(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// LXI SP,0x2400 / LXI B,0x1234 / PUSH B / POP D
	mem.putInstructions(0x0000, 0x31, 0x00, 0x24, 0x01, 0x34, 0x12, 0xc5, 0xd1)
	step(t, mc)
	step(t, mc)
	step(t, mc)

	// high byte below the stack pointer, low byte below that
	test.Equate(t, mc.SP.Address(), 0x23fe)
	test.Equate(t, mem.internal[0x23ff], 0x12)
	test.Equate(t, mem.internal[0x23fe], 0x34)

	step(t, mc)
	test.Equate(t, mc.SP.Address(), 0x2400)
	test.Equate(t, mc.DE(), 0x1234)
}

func TestStackPSW(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// LXI SP,0x2400 / MVI A,0xaa / STC / PUSH PSW / XRA A / POP PSW
	mem.putInstructions(0x0000, 0x31, 0x00, 0x24, 0x3e, 0xaa, 0x37, 0xf5, 0xaf, 0xf1)
	for i := 0; i < 5; i++ {
		step(t, mc)
	}

	// XRA A clears the accumulator and the carry flag
	test.Equate(t, mc.A.Value(), 0x00)
	test.Equate(t, mc.Status.Carry, false)

	// POP PSW restores both
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xaa)
	test.Equate(t, mc.Status.Carry, true)
}

func TestCallRet(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// LXI SP,0x2400 / CALL 0x0010 ... INR A / RET at the subroutine
	mem.putInstructions(0x0000, 0x31, 0x00, 0x24, 0xcd, 0x10, 0x00)
	mem.putInstructions(0x0010, 0x3c, 0xc9)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0010)
	test.Equate(t, mc.LastResult.BranchSuccess, true)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x01)

	// RET returns to the instruction after the CALL
	test.Equate(t, mc.PC.Address(), 0x0006)
	test.Equate(t, mc.SP.Address(), 0x2400)
}

func TestConditionalBranch(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// XRA A sets the zero flag so JNZ falls through and JZ is taken
	mem.putInstructions(0x0000, 0xaf, 0xc2, 0x20, 0x00, 0xca, 0x30, 0x00)
	step(t, mc)

	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0004)
	test.Equate(t, mc.LastResult.BranchSuccess, false)

	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0030)
	test.Equate(t, mc.LastResult.BranchSuccess, true)
}

func TestDecrementTruncation(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// decrement of zero truncates modulo 255, not 256
	mem.putInstructions(0x0000, 0x05)
	step(t, mc)
	test.Equate(t, mc.B.Value(), 0xfe)
	test.Equate(t, mc.Status.Sign, true)

	// whereas increment wraps as expected
	mc.Reset()
	mem.putInstructions(0x0000, 0x06, 0xff, 0x04)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.B.Value(), 0x00)
	test.Equate(t, mc.Status.Zero, true)
}

func TestPairIncrement(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// INX affects Zero/Sign/Parity from the 16 bit result
	mem.putInstructions(0x0000, 0x21, 0xff, 0xff, 0x23)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.HL(), 0x0000)
	test.Equate(t, mc.Status.Zero, true)

	mc.Reset()
	mem.putInstructions(0x0000, 0x11, 0x00, 0x80, 0x1b)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.DE(), 0x7fff)
	test.Equate(t, mc.Status.Sign, false)
}

func TestMemoryOperand(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// LXI H,0x2400 / MVI M,0x42 / MOV A,M
	mem.putInstructions(0x0000, 0x21, 0x00, 0x24, 0x36, 0x42, 0x7e)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mem.internal[0x2400], 0x42)

	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x42)
}

func TestPortBus(t *testing.T) {
	mc, mem, ports := newTestCPU()
	ports.inValue = 0x5a

	// IN 0x01 / OUT 0x04
	mem.putInstructions(0x0000, 0xdb, 0x01, 0xd3, 0x04)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x5a)
	test.Equate(t, ports.lastPort, 0x01)

	step(t, mc)
	test.Equate(t, ports.lastPort, 0x04)
	test.Equate(t, ports.lastData, 0x5a)
}

func TestHalt(t *testing.T) {
	mc, mem, _ := newTestCPU()

	mem.putInstructions(0x0000, 0x76)
	step(t, mc)
	test.Equate(t, mc.Halted, true)

	// a halted CPU idles but the cycle counter keeps moving
	cycles := mc.Cycles
	pc := mc.PC.Address()
	step(t, mc)
	test.Equate(t, mc.PC.Address(), pc)
	test.Equate(t, mc.Cycles > cycles, true)
}

func TestInterruptVector(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// LXI SP,0x2400 / EI / NOP
	mem.putInstructions(0x0000, 0x31, 0x00, 0x24, 0xfb, 0x00)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.InterruptsEnabled, true)
	test.Equate(t, int(mc.Instructions), 3)

	// RST 2 pushes the resume address and jumps to 0x0010
	if err := mc.ExecuteVector(0xd7); err != nil {
		t.Fatalf("execution error (%v)", err)
	}
	test.Equate(t, mc.PC.Address(), 0x0010)

	// a vectored execution counts as an instruction, it appears in the
	// trace like any other
	test.Equate(t, int(mc.Instructions), 4)
	test.Equate(t, mc.InterruptsEnabled, false)
	test.Equate(t, mc.LastResult.Vectored, true)
	test.Equate(t, mem.internal[0x23ff], 0x00)
	test.Equate(t, mem.internal[0x23fe], 0x05)

	// the RET at the vector handler resumes where we left off
	mem.putInstructions(0x0010, 0xc9)
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0005)
}

func TestInterruptEndsHalt(t *testing.T) {
	mc, mem, _ := newTestCPU()

	mem.putInstructions(0x0000, 0x31, 0x00, 0x24, 0xfb, 0x76)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.Halted, true)

	if err := mc.ExecuteVector(0xcf); err != nil {
		t.Fatalf("execution error (%v)", err)
	}
	test.Equate(t, mc.Halted, false)
	test.Equate(t, mc.PC.Address(), 0x0008)
}

func TestUnsupportedOpCode(t *testing.T) {
	mc, mem, _ := newTestCPU()

	mem.putInstructions(0x0000, 0x08)
	err := mc.ExecuteInstruction()
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, cpu.UnsupportedOpCode), true)
	}
}

func TestExchange(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// LXI H,0x1234 / LXI D,0x5678 / XCHG
	mem.putInstructions(0x0000, 0x21, 0x34, 0x12, 0x11, 0x78, 0x56, 0xeb)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.HL(), 0x5678)
	test.Equate(t, mc.DE(), 0x1234)
}

func TestLogicClearCarry(t *testing.T) {
	mc, mem, _ := newTestCPU()

	// STC / MVI A,0x0f / ANI 0x03
	mem.putInstructions(0x0000, 0x37, 0x3e, 0x0f, 0xe6, 0x03)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x03)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.AuxCarry, false)

	// parity of 0x03 is even
	test.Equate(t, mc.Status.Parity, true)
}
