// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds in-memory audio.Source implementations for tests.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrBroken is returned by sources built with NewFailingSource.
var ErrBroken = errors.New("audiotest: broken source")

// MockSource generates a finite interleaved stream from a function.
// It satisfies audio.Source without importing it.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	failAfter   int // frames; -1 never fails
	closed      bool
	sampleAt    func(frame int, channel int) float32
}

// NewMockSource creates a source of totalFrames frames where sampleAt
// gives the value of every (frame, channel) pair.
func NewMockSource(sampleRate, channels, totalFrames int, sampleAt func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		failAfter:   -1,
		sampleAt:    sampleAt,
	}
}

// NewSilentSource creates a source of zeros.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return 0.0
	})
}

// NewSineSource creates a source playing a sine at frequency Hz on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewCycleSource repeats cycle on every channel until totalFrames frames were produced.
func NewCycleSource(sampleRate, channels, totalFrames int, cycle []float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, _ int) float32 {
		return cycle[frame%len(cycle)]
	})
}

// NewRampSource produces frame index / scale, which makes sample order easy to assert.
func NewRampSource(sampleRate, totalFrames int, scale float32) *MockSource {
	return NewMockSource(sampleRate, 1, totalFrames, func(frame int, _ int) float32 {
		return float32(frame) / scale
	})
}

// NewFailingSource returns ErrBroken once failAfter frames were produced.
func NewFailingSource(sampleRate, channels, failAfter int) *MockSource {
	m := NewSilentSource(sampleRate, channels, math.MaxInt32)
	m.failAfter = failAfter
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrBroken
	}
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	if m.failAfter >= 0 {
		frames = min(frames, m.failAfter-m.generated)
	}

	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.sampleAt(m.generated+f, ch)
		}
	}

	m.generated += frames

	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}
