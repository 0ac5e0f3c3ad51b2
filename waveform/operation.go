// SPDX-License-Identifier: EPL-2.0

package waveform

import "math"

func combine(l, r *Waveform, op func(a, b float32) float32) *Waveform {
	out := &Waveform{}
	for i := range Size {
		out.Samples[i] = op(l.Samples[i], r.Samples[i])
	}

	return out
}

// Add returns the element-wise sum of l and r.
func Add(l, r *Waveform) *Waveform {
	return combine(l, r, func(a, b float32) float32 { return a + b })
}

// Sub returns the element-wise difference l - r.
func Sub(l, r *Waveform) *Waveform {
	return combine(l, r, func(a, b float32) float32 { return a - b })
}

// Mul returns the element-wise product of l and r.
func Mul(l, r *Waveform) *Waveform {
	return combine(l, r, func(a, b float32) float32 { return a * b })
}

// Div returns the element-wise quotient l / r. Division by zero follows
// IEEE 754 and yields Inf or NaN.
func Div(l, r *Waveform) *Waveform {
	return combine(l, r, func(a, b float32) float32 { return a / b })
}

// FM phase-modulates carrier by modulator.
//
// Sample i reads the carrier at i + round(amp*modulator.At(i*harmonic)*Size),
// rounding halves away from zero. The product is computed in float32.
// Offsets saturate to the int32 range and a NaN offset is 0, so modulators
// holding Inf or NaN give the same result on every platform.
func FM(carrier *Waveform, amp float32, harmonic int, modulator *Waveform) *Waveform {
	out := &Waveform{}
	for i := range Size {
		offset := roundOffset(amp * modulator.At(i*harmonic) * Size)
		out.Samples[i] = carrier.At(i + offset)
	}

	return out
}

func roundOffset(x float32) int {
	r := math.Round(float64(x))

	switch {
	case r != r:
		return 0
	case r >= math.MaxInt32:
		return math.MaxInt32
	case r <= math.MinInt32:
		return math.MinInt32
	}

	return int(r)
}
