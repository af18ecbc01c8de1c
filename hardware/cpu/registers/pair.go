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

// Pair derives the 16 bit value of a register pair from its two 8 bit
// halves. The first register of the pair is the high byte.
func Pair(hi, lo uint8) uint16 {
	return (uint16(hi) << 8) | uint16(lo)
}

// Split is the inverse of Pair, returning the two 8 bit halves of a 16 bit
// pair value. The high byte is returned first.
func Split(val uint16) (uint8, uint8) {
	return uint8(val >> 8), uint8(val)
}
