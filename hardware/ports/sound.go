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

package ports

// AudioMixer implementations play the discrete sound effect identified by
// the sample number. Triggering is fire-and-forget, the mixer decides how
// overlapping effects are handled.
type AudioMixer interface {
	Trigger(sample int)
}

// sample numbers passed to the AudioMixer. the first latch carries samples
// 0 to 3, the second samples 4 to 8.
const (
	SampleUFO = iota
	SampleShot
	SamplePlayerDie
	SampleInvaderDie
	SampleFleet1
	SampleFleet2
	SampleFleet3
	SampleFleet4
	SampleUFOHit
)

// SoundLatch implements one of the two sound effect latches. The analogue
// sound board triggers an effect on the rising edge of its latch bit; a bit
// that stays set does not retrigger.
type SoundLatch struct {
	mixer AudioMixer

	// sample number of this latch's bit 0
	base int

	// number of effect bits wired to this latch
	bits int

	last uint8
}

// NewSoundLatch is the preferred method of initialisation for the
// SoundLatch structure. A nil mixer is allowed and mutes the latch.
func NewSoundLatch(mixer AudioMixer, base int, bits int) *SoundLatch {
	return &SoundLatch{mixer: mixer, base: base, bits: bits}
}

// Reset clears the latch.
func (lat *SoundLatch) Reset() {
	lat.last = 0
}

// Write latches a new value, triggering the mixer for every bit that has
// transitioned from clear to set.
func (lat *SoundLatch) Write(data uint8) {
	rising := data &^ lat.last
	lat.last = data

	if lat.mixer == nil {
		return
	}

	for i := 0; i < lat.bits; i++ {
		if rising&(1<<i) != 0 {
			lat.mixer.Trigger(lat.base + i)
		}
	}
}
