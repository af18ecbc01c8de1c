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

// Package curated is a lightweight implementation of the error interface
// built around format patterns. Patterns serve double duty: they format the
// error message and they identify the error for comparison purposes.
//
// Packages that raise errors declare their patterns as exported constants.
// For example, the cpu package declares UnsupportedOpCode. A caller that
// wants to respond to that error specifically can use the Is() function:
//
//	err := inv.Run(check)
//	if curated.Is(err, cpu.UnsupportedOpCode) {
//		...
//	}
//
// The Has() function is like Is() but matches the pattern anywhere in a
// chain of curated errors.
package curated
