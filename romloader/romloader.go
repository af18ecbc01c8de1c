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

// Package romloader loads program images from the filesystem. The image is
// handed to the hardware package verbatim, the loader makes no attempt to
// interpret it.
package romloader

import (
	"os"
	"path/filepath"

	"github.com/pixelclad/gopher8080/curated"
)

// error patterns returned by the romloader package.
const (
	LoadError  = "romloader: %v"
	EmptyError = "romloader: %s: file is empty"
)

// Loader names a program image on disk.
type Loader struct {
	Filename string
}

// NewLoader is the preferred method of initialisation for the Loader
// structure.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the loader's filename, suitable
// for window titles and log entries.
func (ld Loader) ShortName() string {
	sn := filepath.Base(ld.Filename)
	return sn[:len(sn)-len(filepath.Ext(ld.Filename))]
}

// Load reads the program image from disk.
func (ld Loader) Load() ([]uint8, error) {
	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	if len(data) == 0 {
		return nil, curated.Errorf(EmptyError, ld.Filename)
	}
	return data, nil
}
