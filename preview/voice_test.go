// SPDX-License-Identifier: EPL-2.0

package preview_test

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ik5/wtgen/audio"
	"github.com/ik5/wtgen/preview"
	"github.com/ik5/wtgen/waveform"
)

var _ audio.Source = (*preview.Voice)(nil)

func TestVoiceFormat(t *testing.T) {
	t.Parallel()

	snap := sineSnapshot(t)
	v := preview.NewVoice(&snap, 0, preview.DefaultFrequency)

	require.Equal(t, 48000, v.SampleRate())
	require.Equal(t, 1, v.Channels())
	require.Equal(t, float32(440), v.Frequency())
	require.NoError(t, v.Close())
}

func TestVoiceIndexing(t *testing.T) {
	t.Parallel()

	snap := sineSnapshot(t)
	ramp := waveform.FromGenerator(func(phase float32) float32 { return phase })
	snap.Slots[7] = *ramp

	// 750 Hz advances 32 cycle samples per output sample.
	v := preview.NewVoice(&snap, 7, 750)

	buf := make([]float32, 100)
	n, err := v.ReadSamples(buf)
	require.NoError(t, err)
	require.Equal(t, 100, n)

	for i, got := range buf {
		pos := int64(float32(750) * float32(i+1) / 48000 * 2048)
		require.Equal(t, ramp.Samples[pos%2048], got, "sample %d", i+1)
	}

	require.Equal(t, ramp.Samples[32], buf[0])
	require.Equal(t, ramp.Samples[0], buf[63])
}

func TestVoiceIsPeriodicAndEndless(t *testing.T) {
	t.Parallel()

	snap := sineSnapshot(t)

	// 375 Hz repeats every 128 output samples.
	v := preview.NewVoice(&snap, 0, 375)

	first := make([]float32, 128)
	_, err := v.ReadSamples(first)
	require.NoError(t, err)

	for range 50 {
		next := make([]float32, 128)
		n, err := v.ReadSamples(next)
		require.NoError(t, err)
		require.Equal(t, 128, n)
		require.Equal(t, first, next)
	}
}

func TestVoiceCopiesSlot(t *testing.T) {
	t.Parallel()

	snap := sineSnapshot(t)
	v := preview.NewVoice(&snap, 0, 375)
	snap.Slots[0] = waveform.Waveform{}

	buf := make([]float32, 4)
	_, err := v.ReadSamples(buf)
	require.NoError(t, err)
	require.NotZero(t, buf[0])
}

func TestFloat32Reader(t *testing.T) {
	t.Parallel()

	snap := sineSnapshot(t)
	want := make([]float32, 10)
	_, err := preview.NewVoice(&snap, 0, 440).ReadSamples(want)
	require.NoError(t, err)

	r := preview.NewFloat32Reader(preview.NewVoice(&snap, 0, 440))
	p := make([]byte, 43)
	n, err := r.Read(p)
	require.NoError(t, err)
	require.Equal(t, 40, n)

	for i := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
		require.Equal(t, want[i], got)
	}

	n, err = r.Read(make([]byte, 3))
	require.NoError(t, err)
	require.Zero(t, n)
}

type endingSource struct{ left int }

func (s *endingSource) SampleRate() int { return 48000 }
func (s *endingSource) Channels() int   { return 1 }
func (s *endingSource) Close() error    { return nil }

func (s *endingSource) ReadSamples(dst []float32) (int, error) {
	n := min(len(dst), s.left)
	for i := range n {
		dst[i] = 0.5
	}
	s.left -= n
	if s.left == 0 {
		return n, io.EOF
	}
	return n, nil
}

func TestFloat32ReaderPassesEOF(t *testing.T) {
	t.Parallel()

	r := preview.NewFloat32Reader(&endingSource{left: 3})
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Len(t, data, 12)
}
