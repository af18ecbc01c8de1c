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

// Package sdlaudio plays the cabinet's discrete sound effects. The effects
// are WAV samples loaded from a directory, one file per sample number
// ("0.wav" to "8.wav"), decoded once at startup and queued on an SDL audio
// device when the sound latch triggers.
//
// The original analogue sound board can't be emulated from the ROM alone so
// samples are optional: a missing or undecodable file mutes that one effect
// and is logged, never fatal.
package sdlaudio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pixelclad/gopher8080/curated"
	"github.com/pixelclad/gopher8080/logger"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/veandco/go-sdl2/sdl"
)

// number of discrete sound effects on the cabinet.
const numSamples = 9

// playback format of the SDL audio device. samples are converted on load.
const deviceFreq = 11025

// Audio implements the ports.AudioMixer interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// decoded sample data, in the device format. nil for samples with no
	// file on disk
	samples [numSamples][]byte
}

// NewAudio is the preferred method of initialisation for the Audio
// structure. The sample directory may be empty or missing, in which case
// the mixer is silent.
func NewAudio(sampleDir string) (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     deviceFreq,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  512,
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	loaded := 0
	for i := 0; i < numSamples; i++ {
		fn := filepath.Join(sampleDir, fmt.Sprintf("%d.wav", i))
		data, err := loadSample(fn)
		if err != nil {
			logger.Logf("sdlaudio", "%v", err)
			continue
		}
		aud.samples[i] = data
		loaded++
	}

	if loaded == 0 {
		logger.Log("sdlaudio", "no sound samples found, playback is muted")
	}

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Destroy closes the audio device.
func (aud *Audio) Destroy() {
	sdl.CloseAudioDevice(aud.id)
}

// Trigger implements the ports.AudioMixer interface. Queueing is
// fire-and-forget; overlapping effects are appended to the device queue
// rather than mixed, which is close enough for these short samples.
func (aud *Audio) Trigger(sample int) {
	if sample < 0 || sample >= numSamples || aud.samples[sample] == nil {
		return
	}
	if err := sdl.QueueAudio(aud.id, aud.samples[sample]); err != nil {
		logger.Logf("sdlaudio", "queue: %v", err)
	}
}

// loadSample decodes one WAV file into the device format.
func loadSample(fn string) ([]byte, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, curated.Errorf("sdlaudio: %s: not a valid WAV file", fn)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %s: %v", fn, err)
	}

	return convertSample(buf, int(dec.BitDepth)), nil
}

// convertSample flattens a PCM buffer to mono 16 bit little endian, the
// device format. Sample rates are left alone; the cabinet's samples are
// recorded at the device rate and anything else plays at the wrong pitch
// rather than failing.
func convertSample(buf *audio.IntBuffer, bitDepth int) []byte {
	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}

	frames := len(buf.Data) / channels
	out := make([]byte, frames*2)

	for i := 0; i < frames; i++ {
		// average the channels to mono
		sum := 0
		for c := 0; c < channels; c++ {
			sum += buf.Data[i*channels+c]
		}
		v := sum / channels

		// scale to 16 bit
		switch {
		case bitDepth == 8:
			v = (v - 128) << 8
		case bitDepth > 16:
			v >>= uint(bitDepth - 16)
		}

		out[i*2] = byte(v)
		out[i*2+1] = byte(v >> 8)
	}

	return out
}
