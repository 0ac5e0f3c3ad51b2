// SPDX-License-Identifier: EPL-2.0

package waveform

import "github.com/ik5/wtgen/utils"

// Render converts the cycle to 16-bit PCM, clamping values outside [-1, 1].
//
// Wavetable export does not clamp; see the wavetable package.
func (w *Waveform) Render() []int16 {
	out := make([]int16, Size)
	for i, v := range w.Samples {
		out[i] = utils.Float32ToInt16(v)
	}

	return out
}
