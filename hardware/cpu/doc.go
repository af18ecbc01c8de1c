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

// Package cpu emulates the Intel 8080. Register logic is implemented by the
// types in the registers sub-package and the instruction set is defined in
// the instructions sub-package.
//
// The CPU requires a memory system (an implementation of cpubus.Memory) and
// a device bus (an implementation of PortBus, for the IN and OUT
// instructions). Execution is driven one instruction at a time with
// ExecuteInstruction(). Interrupts are injected between instructions with
// ExecuteVector().
package cpu
