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

// Package version records the name and version of the application, used in
// window titles and error reports.
package version

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8080"

// number is set through the linker by the release build. an empty value
// means the project was built directly with the go tool.
var number string

// Version returns the version string and whether this is a numbered release
// build.
func Version() (string, bool) {
	if number == "" {
		return "unreleased", false
	}
	return number, true
}
