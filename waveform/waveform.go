// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/wtgen/utils"
)

// Size is the number of samples in one single-cycle waveform.
const Size = 2048

// Generator maps a phase in [0, 1) to a sample value.
type Generator func(phase float32) float32

// Waveform is one cycle of a periodic signal sampled at Size points.
// Values are nominally in [-1, 1] but nothing enforces it.
type Waveform struct {
	Samples [Size]float32
}

// Empty returns a silent waveform.
func Empty() *Waveform {
	return &Waveform{}
}

// New wraps a copy of samples.
func New(samples [Size]float32) *Waveform {
	return &Waveform{Samples: samples}
}

// FromGenerator samples g at phase s/Size for every index s.
func FromGenerator(g Generator) *Waveform {
	w := &Waveform{}
	for s := range Size {
		w.Samples[s] = g(float32(s) / Size)
	}

	return w
}

// SineGenerator is sin(2*pi*phase) evaluated on a float32 argument.
func SineGenerator(phase float32) float32 {
	return float32(math.Sin(float64(phase * 2 * math.Pi)))
}

// Sine returns one period of a sine wave.
func Sine() *Waveform {
	return FromGenerator(SineGenerator)
}

// Saw returns sin(s/1024*pi) for every index s.
//
// Despite the name this is a sine, not a sawtooth. Existing wavetables
// depend on it, so the shape is kept as is.
func Saw() *Waveform {
	w := &Waveform{}
	for s := range Size {
		w.Samples[s] = float32(math.Sin(float64(float32(s) / 1024 * math.Pi)))
	}

	return w
}

// Clone returns an independent copy of w.
func (w *Waveform) Clone() *Waveform {
	c := *w
	return &c
}

// At returns the sample at x, wrapping any integer into [0, Size) with the
// Euclidean remainder so that At(-1) is the last sample.
func (w *Waveform) At(x int) float32 {
	return w.Samples[utils.WrapIndex(x, Size)]
}
