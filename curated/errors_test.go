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

package curated_test

import (
	"testing"

	"github.com/pixelclad/gopher8080/curated"
	"github.com/pixelclad/gopher8080/test"
)

const testPattern = "test: %v"
const otherPattern = "other: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.Equate(t, e.Error(), "test: 10")
	test.Equate(t, curated.IsAny(e), true)
	test.Equate(t, curated.Is(e, testPattern), true)
	test.Equate(t, curated.Is(e, otherPattern), false)
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(testPattern, 10)
	outer := curated.Errorf(otherPattern, inner)

	test.Equate(t, curated.Is(outer, testPattern), false)
	test.Equate(t, curated.Has(outer, testPattern), true)
	test.Equate(t, curated.Has(outer, otherPattern), true)
}

func TestDeduplication(t *testing.T) {
	// adjacent duplicate message parts are removed
	inner := curated.Errorf("error: %v", "inner")
	outer := curated.Errorf("error: %v", inner)
	test.Equate(t, outer.Error(), "error: inner")
}
