// SPDX-License-Identifier: EPL-2.0

package waveform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ik5/wtgen/waveform"
)

func TestEmpty(t *testing.T) {
	t.Parallel()

	w := waveform.Empty()
	for i, v := range w.Samples {
		require.Zero(t, v, "sample %d", i)
	}
}

func TestFromGeneratorPhase(t *testing.T) {
	t.Parallel()

	w := waveform.FromGenerator(func(phase float32) float32 { return phase })

	require.Equal(t, float32(0), w.Samples[0])
	require.Equal(t, float32(0.5), w.Samples[1024])
	require.Equal(t, float32(2047)/2048, w.Samples[2047])
}

func TestSine(t *testing.T) {
	t.Parallel()

	w := waveform.Sine()

	tests := []struct {
		index int
		want  float32
	}{
		{0, 0},
		{256, 0.70710677},
		{512, 1},
		{1024, 0},
		{1536, -1},
	}

	for _, tt := range tests {
		require.InDelta(t, tt.want, w.Samples[tt.index], 1e-6, "index %d", tt.index)
	}
}

// Saw has always produced a sine cycle. Callers rely on that shape.
func TestSawIsSine(t *testing.T) {
	t.Parallel()

	saw := waveform.Saw()
	sine := waveform.Sine()

	for i := range waveform.Size {
		require.InDelta(t, sine.Samples[i], saw.Samples[i], 1e-6, "index %d", i)
	}

	require.Greater(t, saw.Samples[512], saw.Samples[1000], "not a rising ramp")
}

func TestNewCopies(t *testing.T) {
	t.Parallel()

	var samples [waveform.Size]float32
	samples[3] = 0.5

	w := waveform.New(samples)
	samples[3] = 0

	require.Equal(t, float32(0.5), w.Samples[3])
}

func TestClone(t *testing.T) {
	t.Parallel()

	w := waveform.Sine()
	c := w.Clone()
	c.Samples[512] = 0

	require.InDelta(t, 1, w.Samples[512], 1e-6)
	require.Zero(t, c.Samples[512])
}

func TestAtIsPeriodic(t *testing.T) {
	t.Parallel()

	w := waveform.FromGenerator(func(phase float32) float32 { return phase })

	for x := -3 * waveform.Size; x < 3*waveform.Size; x += 7 {
		require.Equal(t, w.At(x), w.At(x+waveform.Size), "x=%d", x)
	}

	require.Equal(t, w.Samples[2047], w.At(-1))
	require.Equal(t, w.Samples[0], w.At(waveform.Size))
	require.Equal(t, w.Samples[1], w.At(-2047))
}

func BenchmarkSine(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		_ = waveform.Sine()
	}
}
