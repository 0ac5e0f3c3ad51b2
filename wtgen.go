// SPDX-License-Identifier: EPL-2.0

package wtgen

import (
	"path/filepath"
	"strings"

	"github.com/ik5/wtgen/audio"
	"github.com/ik5/wtgen/formats/aiff"
	"github.com/ik5/wtgen/formats/mp3"
	"github.com/ik5/wtgen/formats/vorbis"
	"github.com/ik5/wtgen/formats/wav"
	"github.com/ik5/wtgen/waveform"
	"github.com/ik5/wtgen/wavetable"
)

// FMSineName is the name of the table built by FMSine.
const FMSineName = "fm_sin"

// Formats returns a registry holding a decoder for every supported
// extension: wav, aif, aiff, mp3 and ogg.
func Formats() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

// Open decodes the audio file at path, picking the decoder by extension.
func Open(path string) (audio.Source, error) {
	return Formats().Open(path)
}

// ReadCycle opens path and returns the cycle of length frames starting at
// offset. See waveform.Read.
func ReadCycle(path string, offset, length int) (*waveform.Waveform, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return waveform.Read(src, offset, length)
}

// LoadTable reads a wavetable file back. The table is named after the file
// without its extension.
func LoadTable(path string) (*wavetable.Wavetable, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return wavetable.Load(src, name)
}

// Morph builds a table that blends linearly from start in the first slot to
// end in the last.
func Morph(start, end *waveform.Waveform, name string) *wavetable.Wavetable {
	t := wavetable.Empty()
	t.Slots[0] = *start
	t.Slots[wavetable.Size-1] = *end
	t.MorphLinear()
	t.SetName(name)

	return t
}

// FMSine morphs from a sine to the same sine frequency modulated by its
// third harmonic at half depth.
func FMSine() *wavetable.Wavetable {
	return FMSineWith(0.5, 3)
}

// FMSineWith is FMSine with a custom modulation depth and harmonic.
func FMSineWith(amp float32, harmonic int) *wavetable.Wavetable {
	sine := waveform.Sine()
	return Morph(sine, waveform.FM(sine, amp, harmonic, sine), FMSineName)
}
