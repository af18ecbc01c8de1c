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

package romloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixelclad/gopher8080/curated"
	"github.com/pixelclad/gopher8080/romloader"
	"github.com/pixelclad/gopher8080/test"
)

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "invaders.rom")
	if err := os.WriteFile(fn, []uint8{0xc3, 0x00, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}

	ld := romloader.NewLoader(fn)
	test.Equate(t, ld.ShortName(), "invaders")

	data, err := ld.Load()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(data), 3)
	test.Equate(t, data[0], 0xc3)
}

func TestLoadMissing(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "no-such-file"))
	_, err := ld.Load()
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, romloader.LoadError), true)
	}
}

func TestLoadEmpty(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty.rom")
	if err := os.WriteFile(fn, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := romloader.NewLoader(fn).Load()
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, romloader.EmptyError), true)
	}
}
