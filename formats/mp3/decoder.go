// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/wtgen/audio"
)

// go-mp3 always emits interleaved stereo, 16-bit little endian.
const (
	channels       = 2
	bytesPerSample = 2
)

// byteReader is the part of gomp3.Decoder the source uses, to allow testing.
type byteReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec     byteReader
	pending []byte // bytes of a sample split across reads
	buf     []byte
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

// ReadSamples returns whole stereo frames only. Bytes of a frame split
// across decoder reads wait in pending for the next call.
func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%channels
	if whole == 0 {
		return 0, nil
	}

	want := whole*bytesPerSample - len(s.pending)
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}

	n, err := s.dec.Read(s.buf[:want])
	data := append(s.pending, s.buf[:n]...)

	samples := len(data) / (bytesPerSample * channels) * channels
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(data[i*bytesPerSample:]))
		dst[i] = float32(v) / 32768.0
	}

	s.pending = append(s.pending[:0], data[samples*bytesPerSample:]...)

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("decoding mp3 frame: %w", err)
	}
	if err == io.EOF && samples == 0 {
		return 0, io.EOF
	}

	return samples, err
}

// Decoder reads MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{dec: dec, buf: make([]byte, 8192)}, nil
}
