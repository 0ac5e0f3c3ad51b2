// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"
	"io"
)

// ErrDiskFull is returned by FailingWriter once its budget is spent.
var ErrDiskFull = errors.New("audiotest: no space left")

// Buffer is an in-memory io.WriteSeeker, enough for encoders that patch
// their header after the payload.
type Buffer struct {
	data []byte
	pos  int
}

func (b *Buffer) Write(p []byte) (int, error) {
	if end := b.pos + len(p); end > len(b.data) {
		b.data = append(b.data, make([]byte, end-len(b.data))...)
	}
	n := copy(b.data[b.pos:], p)
	b.pos += n
	return n, nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = int64(b.pos) + offset
	case io.SeekEnd:
		next = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if next < 0 {
		return 0, errors.New("negative position")
	}

	b.pos = int(next)
	return next, nil
}

// Bytes returns the written content.
func (b *Buffer) Bytes() []byte { return b.data }

// FailingWriter accepts Budget bytes and then fails every write with ErrDiskFull.
type FailingWriter struct {
	Buffer
	Budget int
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	if len(w.data)+len(p) > w.Budget {
		return 0, ErrDiskFull
	}
	return w.Buffer.Write(p)
}
