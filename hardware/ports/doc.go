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

// Package ports implements the device bus addressed by the IN and OUT
// instructions: the 16 bit shift register, the two player input registers,
// the sound latches and the display interrupt timer. The Bus type gathers
// the devices together and implements the cpu.PortBus interface.
//
// Devices are owned by the bus and are accessed synchronously, there is no
// concurrent access to any of the device state.
package ports
