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

package registers_test

import (
	"testing"

	"github.com/pixelclad/gopher8080/hardware/cpu/registers"
	"github.com/pixelclad/gopher8080/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "A")
	test.Equate(t, r.IsZero(), true)
	test.Equate(t, r.IsNegative(), false)

	r.Load(0x80)
	test.Equate(t, r.Value(), 0x80)
	test.Equate(t, r.IsZero(), false)
	test.Equate(t, r.IsNegative(), true)
	test.Equate(t, r.String(), "A=0x80")
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0, "PC")
	pc.Load(0xfffe)
	pc.Add(1)
	test.Equate(t, pc.Address(), 0xffff)

	// wraps around the 16 bit address space
	pc.Add(1)
	test.Equate(t, pc.Address(), 0x0000)
}

func TestPairDerivation(t *testing.T) {
	test.Equate(t, registers.Pair(0x12, 0x34), 0x1234)

	hi, lo := registers.Split(0x1234)
	test.Equate(t, hi, 0x12)
	test.Equate(t, lo, 0x34)

	// round trip over a representative spread of values
	for _, v := range []uint16{0x0000, 0x0001, 0x00ff, 0x0100, 0x8000, 0xabcd, 0xffff} {
		hi, lo := registers.Split(v)
		test.Equate(t, registers.Pair(hi, lo), v)
	}
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.Equate(t, sr.Value(), 0x00)

	sr.Zero = true
	sr.Parity = true
	test.Equate(t, sr.Value(), 0x05)
	test.Equate(t, sr.String(), "ZsPca")

	// Zero flag occupies bit 0 of the packed byte, Sign bit 1, Parity bit 2,
	// Carry bit 3, AuxCarry bit 4
	sr.Reset()
	sr.Sign = true
	sr.Carry = true
	sr.AuxCarry = true
	test.Equate(t, sr.Value(), 0x1a)

	var sr2 registers.StatusRegister
	sr2.FromValue(sr.Value())
	test.Equate(t, sr2.Sign, true)
	test.Equate(t, sr2.Carry, true)
	test.Equate(t, sr2.AuxCarry, true)
	test.Equate(t, sr2.Zero, false)
	test.Equate(t, sr2.Parity, false)
}
