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

// Package registers implements the registers of the 8080: the seven 8 bit
// general purpose registers, the 16 bit program counter and stack pointer,
// and the status (flags) register.
//
// Register pairs (BC, DE, HL and the PSW) are not distinct registers. They
// are a view of two 8 bit values as one 16 bit value and are derived with the
// Pair() and Split() functions.
package registers
