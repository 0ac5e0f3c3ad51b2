// SPDX-License-Identifier: EPL-2.0

package preview

import (
	"encoding/binary"
	"math"

	"github.com/ik5/wtgen/audio"
)

// Float32Reader exposes an audio.Source as an io.Reader of interleaved
// little-endian float32 samples, the layout audio output backends consume.
type Float32Reader struct {
	src audio.Source
	buf []float32
}

func NewFloat32Reader(src audio.Source) *Float32Reader {
	return &Float32Reader{src: src}
}

// Read fills p with whole samples. Trailing bytes that cannot hold a full
// sample are left untouched.
func (r *Float32Reader) Read(p []byte) (int, error) {
	samples := len(p) / 4
	if samples == 0 {
		return 0, nil
	}

	if cap(r.buf) < samples {
		r.buf = make([]float32, samples)
	}
	r.buf = r.buf[:samples]

	n, err := r.src.ReadSamples(r.buf)
	for i, s := range r.buf[:n] {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}

	return n * 4, err
}
