// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// PCM16Writer streams mono 16-bit PCM into a WAV container.
// The RIFF and data chunk sizes are patched in Close, so the destination
// must be seekable.
type PCM16Writer struct {
	enc    *gowav.Encoder
	buf    *goaudio.IntBuffer
	frames int
	closed bool
}

// NewPCM16Writer prepares a mono 16-bit writer at sampleRate.
// Nothing is written until the first Write or Close.
func NewPCM16Writer(ws io.WriteSeeker, sampleRate int) *PCM16Writer {
	return &PCM16Writer{
		enc: gowav.NewEncoder(ws, sampleRate, 16, 1, 1),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}
}

// Write appends samples to the data chunk.
func (w *PCM16Writer) Write(samples []int16) error {
	if w.closed {
		return ErrWriterClosed
	}

	if cap(w.buf.Data) < len(samples) {
		w.buf.Data = make([]int, len(samples))
	}
	w.buf.Data = w.buf.Data[:len(samples)]

	for i, s := range samples {
		w.buf.Data[i] = int(s)
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing PCM data: %w", err)
	}

	w.frames += len(samples)

	return nil
}

// Frames is the number of samples written so far.
func (w *PCM16Writer) Frames() int { return w.frames }

// Close patches the header sizes. It does not close the destination.
func (w *PCM16Writer) Close() error {
	if w.closed {
		return nil
	}

	if w.frames == 0 {
		// the encoder emits its header on the first write only
		if err := w.Write(nil); err != nil {
			return err
		}
	}

	w.closed = true

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV header: %w", err)
	}

	return nil
}

// WriteWAV16 writes a complete mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(ws io.WriteSeeker, sampleRate int, samples []int16) error {
	w := NewPCM16Writer(ws, sampleRate)

	if err := w.Write(samples); err != nil {
		return err
	}

	return w.Close()
}
