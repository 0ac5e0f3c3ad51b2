// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wtgen/audio"
	"github.com/ik5/wtgen/utils"
)

// FromCycle stretches one period of arbitrary length onto Size samples with
// periodic Catmull-Rom interpolation. A cycle of exactly Size samples is
// copied verbatim.
func FromCycle(cycle []float32) (*Waveform, error) {
	n := len(cycle)
	if n == 0 {
		return nil, ErrEmptyCycle
	}

	w := &Waveform{}
	if n == Size {
		copy(w.Samples[:], cycle)
		return w, nil
	}

	step := float64(n) / Size
	for s := range Size {
		pos := float64(s) * step
		i := int(pos)
		frac := float32(pos - float64(i))

		w.Samples[s] = utils.CubicInterpolate(
			cycle[utils.WrapIndex(i-1, n)],
			cycle[i],
			cycle[utils.WrapIndex(i+1, n)],
			cycle[utils.WrapIndex(i+2, n)],
			frac,
		)
	}

	return w, nil
}

// Read takes one cycle of length frames from src, starting offset frames in,
// and resamples it with FromCycle. Multichannel sources are averaged to mono.
// A length of zero or less means Size frames.
//
// Read does not close src.
func Read(src audio.Source, offset, length int) (*Waveform, error) {
	if length <= 0 {
		length = Size
	}
	offset = max(offset, 0)

	mono := audio.NewMonoMixer(src)
	cycle := make([]float32, 0, length)
	buf := make([]float32, Size)
	skipped := 0

	for len(cycle) < length {
		n, err := mono.ReadSamples(buf)
		chunk := buf[:n]

		if skip := min(offset-skipped, len(chunk)); skip > 0 {
			chunk = chunk[skip:]
			skipped += skip
		}
		cycle = append(cycle, chunk[:min(len(chunk), length-len(cycle))]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading cycle: %w", err)
		}
	}

	if len(cycle) < length {
		return nil, fmt.Errorf("%w: got %d of %d frames", ErrShortRead, len(cycle), length)
	}

	return FromCycle(cycle)
}
