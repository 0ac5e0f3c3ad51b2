// SPDX-License-Identifier: EPL-2.0

package waveform

// Max returns the largest sample, skipping NaN values.
// It returns NaN only when every sample is NaN.
func (w *Waveform) Max() float32 {
	peak := float32(0)
	seen := false

	for _, v := range w.Samples {
		if v != v {
			continue
		}
		if !seen || v > peak {
			peak = v
			seen = true
		}
	}

	if !seen {
		return nan32()
	}

	return peak
}

// Normalize divides every sample by Max.
//
// The divisor is the signed maximum and not the peak magnitude, so a
// waveform whose samples are all negative changes sign. A zero maximum
// leaves w untouched.
func (w *Waveform) Normalize() *Waveform {
	peak := w.Max()
	if peak == 0 {
		return w
	}

	for i := range w.Samples {
		w.Samples[i] /= peak
	}

	return w
}

// Scale multiplies every sample by factor.
func (w *Waveform) Scale(factor float32) *Waveform {
	for i := range w.Samples {
		w.Samples[i] *= factor
	}

	return w
}

// Invert reverses the sample order in place.
func (w *Waveform) Invert() *Waveform {
	for i, j := 0, Size-1; i < j; i, j = i+1, j-1 {
		w.Samples[i], w.Samples[j] = w.Samples[j], w.Samples[i]
	}

	return w
}

func nan32() float32 {
	zero := float32(0)
	return zero / zero
}
