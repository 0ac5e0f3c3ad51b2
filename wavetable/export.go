// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/wtgen/formats/wav"
	"github.com/ik5/wtgen/utils"
	"github.com/ik5/wtgen/waveform"
)

const (
	// OutputDir is where Export writes. It must exist already.
	OutputDir = "wavetable/"
	Ext       = ".wav"

	SampleRate = 44100
)

// Encode writes the table as one mono 16-bit WAV stream at SampleRate,
// slot after slot.
//
// Samples are quantized as truncate(x * 32767) without clamping, so values
// beyond full scale wrap around in 16 bits. This differs from
// waveform.Render, which saturates.
func (t *Wavetable) Encode(ws io.WriteSeeker) error {
	w := wav.NewPCM16Writer(ws, SampleRate)
	pcm := make([]int16, waveform.Size)

	for i := range t.Slots {
		for s, v := range t.Slots[i].Samples {
			pcm[s] = utils.Float32ToInt16Wrap(v)
		}

		if err := w.Write(pcm); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
	}

	return w.Close()
}

// Export writes the table to OutputDir + name + Ext and returns that path.
func (t *Wavetable) Export() (string, error) {
	path := OutputDir + t.name + Ext
	return path, t.writeFile(path)
}

// ExportTo writes the table as name + Ext inside dir.
func (t *Wavetable) ExportTo(dir string) (string, error) {
	path := filepath.Join(dir, t.name+Ext)
	return path, t.writeFile(path)
}

func (t *Wavetable) writeFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating wavetable file: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := t.Encode(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
