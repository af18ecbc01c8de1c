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

package sdlaudio

import (
	"testing"

	"github.com/pixelclad/gopher8080/test"

	"github.com/go-audio/audio"
)

func TestConvertSample(t *testing.T) {
	// stereo 16 bit input is averaged to mono
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: 11025},
		Data:   []int{100, 300, -100, -300},
	}
	out := convertSample(buf, 16)
	test.Equate(t, len(out), 4)

	// first frame averages to 200, little endian
	test.Equate(t, out[0], 0xc8)
	test.Equate(t, out[1], 0x00)

	// second frame averages to -200
	test.Equate(t, out[2], 0x38)
	test.Equate(t, out[3], 0xff)
}

func TestConvertSampleBitDepth(t *testing.T) {
	// 8 bit samples are unsigned and centred on 128
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 11025},
		Data:   []int{128, 129},
	}
	out := convertSample(buf, 8)
	test.Equate(t, out[0], 0x00)
	test.Equate(t, out[1], 0x00)

	// one step above the midpoint scales to 256
	test.Equate(t, out[2], 0x00)
	test.Equate(t, out[3], 0x01)

	// 24 bit samples are shifted down
	buf = &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 11025},
		Data:   []int{1 << 23},
	}
	out = convertSample(buf, 24)
	test.Equate(t, out[0], 0x00)
	test.Equate(t, out[1], 0x80)
}