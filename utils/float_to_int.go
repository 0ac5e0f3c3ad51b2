// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 quantizes x for rendering a single cycle.
// Values at or beyond full scale saturate to the int16 limits, everything
// else is scaled by 32767 and truncated toward zero.
func Float32ToInt16(x float32) int16 {
	if x >= 1 {
		return math.MaxInt16
	}
	if x <= -1 {
		return math.MinInt16
	}

	return int16(x * 32767.0)
}

// Float32ToInt16Wrap quantizes x for wavetable export: truncate(x * 32767)
// with no clamping. Results outside the int16 range wrap around in 16 bits.
// NaN and infinities give an unspecified value.
func Float32ToInt16Wrap(x float32) int16 {
	return int16(int32(x * 32767.0))
}
