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

package logger

import (
	"strings"
	"testing"

	"github.com/pixelclad/gopher8080/test"
)

func TestRepeatedEntries(t *testing.T) {
	l := newLogger(16)

	l.log("test", "hello")
	l.log("test", "hello")
	l.log("test", "hello")
	test.Equate(t, len(l.entries), 1)

	s := strings.Builder{}
	l.write(&s)
	test.Equate(t, s.String(), "test: hello (repeat x3)\n")

	l.log("test", "goodbye")
	test.Equate(t, len(l.entries), 2)
}

func TestCentral(t *testing.T) {
	Clear()
	Log("test", "hello")
	Logf("test", "%d", 10)

	s := strings.Builder{}
	Write(&s)
	test.Equate(t, s.String(), "test: hello\ntest: 10\n")

	s.Reset()
	Tail(&s, 1)
	test.Equate(t, s.String(), "test: 10\n")

	Clear()
	s.Reset()
	Write(&s)
	test.Equate(t, s.String(), "")
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("test", "a")
	l.log("test", "b")
	l.log("test", "c")
	test.Equate(t, len(l.entries), 2)

	s := strings.Builder{}
	l.tail(&s, 1)
	test.Equate(t, s.String(), "test: c\n")
}
