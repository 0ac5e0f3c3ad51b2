// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wtgen/audio"
	"github.com/ik5/wtgen/waveform"
)

// Load reads Size consecutive cycles of waveform.Size frames from src, the
// layout Encode produces. Multichannel input is averaged to mono and
// anything after the last slot is ignored. Load does not close src.
func Load(src audio.Source, name string) (*Wavetable, error) {
	t := &Wavetable{name: name}
	mono := audio.NewMonoMixer(src)

	slot, pos := 0, 0
	buf := make([]float32, waveform.Size)

	for slot < Size {
		n, err := mono.ReadSamples(buf[:waveform.Size-pos])
		copy(t.Slots[slot].Samples[pos:], buf[:n])

		pos += n
		if pos == waveform.Size {
			slot, pos = slot+1, 0
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading slot %d: %w", slot, err)
		}
	}

	if slot < Size {
		return nil, fmt.Errorf("%w: %d of %d slots", ErrShortTable, slot, Size)
	}

	return t, nil
}
