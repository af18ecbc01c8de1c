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

// ShiftRegister implements the dedicated 16 bit shift hardware the 8080
// lacks an instruction for. The game writes bytes to be shifted in through
// one port, the read offset through another, and reads the result back
// through a third.
type ShiftRegister struct {
	register uint16
	offset   uint8
}

// Shift drops the low byte of the register and inserts a new byte at the
// top.
func (sft *ShiftRegister) Shift(data uint8) {
	sft.register = (sft.register >> 8) | (uint16(data) << 7)
}

// SetOffset stores the read offset. The offset field is inverted before the
// low three bits are kept, a quirk of the original hardware wiring.
func (sft *ShiftRegister) SetOffset(data uint8) {
	sft.offset = (data ^ 0xff) & 0x07
}

// Read returns the register byte at the current offset.
func (sft *ShiftRegister) Read() uint8 {
	return uint8(sft.register >> sft.offset)
}

// Reset clears the register and offset.
func (sft *ShiftRegister) Reset() {
	sft.register = 0
	sft.offset = 0
}
