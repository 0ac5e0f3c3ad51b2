// SPDX-License-Identifier: EPL-2.0

package preview

import (
	"github.com/ik5/wtgen/utils"
	"github.com/ik5/wtgen/waveform"
)

const (
	// VoiceSampleRate is the fixed output rate of a Voice.
	VoiceSampleRate = 48000

	// DefaultFrequency is A4.
	DefaultFrequency = 440
)

// Voice plays one slot of a snapshot as an endless mono tone.
// It implements audio.Source and never reaches EOF.
//
// Samples are picked without interpolation: output sample n, counting from
// one, reads index freq*n/VoiceSampleRate*waveform.Size of the cycle.
type Voice struct {
	cycle waveform.Waveform
	freq  float32
	n     int64
}

// NewVoice copies slot index out of s.
func NewVoice(s *Snapshot, index uint8, freq float32) *Voice {
	return &Voice{
		cycle: s.Slots[index],
		freq:  freq,
	}
}

func (v *Voice) SampleRate() int { return VoiceSampleRate }
func (v *Voice) Channels() int   { return 1 }
func (v *Voice) Close() error    { return nil }

// Frequency returns the pitch in Hz.
func (v *Voice) Frequency() float32 { return v.freq }

// ReadSamples fills dst completely.
func (v *Voice) ReadSamples(dst []float32) (int, error) {
	for i := range dst {
		v.n++
		pos := int64(v.freq * float32(v.n) / VoiceSampleRate * waveform.Size)
		dst[i] = v.cycle.Samples[utils.WrapIndex(int(pos), waveform.Size)]
	}

	return len(dst), nil
}
