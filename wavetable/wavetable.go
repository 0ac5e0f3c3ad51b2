// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"fmt"

	"github.com/ik5/wtgen/waveform"
)

const (
	// Size is the number of slots in a wavetable.
	Size = 256

	// DefaultName is the name of a table nobody named yet.
	DefaultName = "untitled"
)

// Generator returns the waveform generator for a table position in [0, 1).
type Generator func(position float32) waveform.Generator

// Wavetable is a fixed bank of Size waveforms plus the name used as the
// output file stem. The zero value of every slot is silence.
type Wavetable struct {
	Slots [Size]waveform.Waveform
	name  string
}

// Empty returns a silent table named DefaultName.
func Empty() *Wavetable {
	return &Wavetable{name: DefaultName}
}

// New builds a table from a copy of slots.
func New(slots [Size]waveform.Waveform, name string) *Wavetable {
	return &Wavetable{Slots: slots, name: name}
}

// FromGenerator fills slot p with waveform.FromGenerator(g(p/Size)).
func FromGenerator(g Generator, name string) *Wavetable {
	t := &Wavetable{name: name}
	for p := range Size {
		t.Slots[p] = *waveform.FromGenerator(g(float32(p) / Size))
	}

	return t
}

func (t *Wavetable) Name() string        { return t.name }
func (t *Wavetable) SetName(name string) { t.name = name }

// Slot returns the waveform stored at index i. Changes through the pointer
// modify the table. It panics when i is out of range, like a slice index.
func (t *Wavetable) Slot(i int) *waveform.Waveform {
	return &t.Slots[i]
}

// SetSlot copies w into slot i.
func (t *Wavetable) SetSlot(i int, w *waveform.Waveform) error {
	if i < 0 || i >= Size {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
	}

	t.Slots[i] = *w

	return nil
}

// NormalizeAll normalizes every slot on its own.
func (t *Wavetable) NormalizeAll() {
	for i := range t.Slots {
		t.Slots[i].Normalize()
	}
}

// MorphLinear replaces every slot between the first and the last with a
// linear blend of the two:
//
//	slot[p][s] = ((Size-1-p)*slot[0][s] + p*slot[Size-1][s]) / (Size-1)
//
// The end slots keep their content.
func (t *Wavetable) MorphLinear() {
	first := &t.Slots[0]
	last := &t.Slots[Size-1]

	for p := 1; p < Size-1; p++ {
		a := float32(Size - 1 - p)
		b := float32(p)
		slot := &t.Slots[p]

		for s := range waveform.Size {
			slot.Samples[s] = (float32(a*first.Samples[s]) + float32(b*last.Samples[s])) / (Size - 1)
		}
	}
}

// Snapshot is a detached copy of a table for readers that must not see
// later edits.
type Snapshot struct {
	Name  string
	Slots [Size]waveform.Waveform
}

// Snapshot copies the current content of t.
func (t *Wavetable) Snapshot() Snapshot {
	return Snapshot{Name: t.name, Slots: t.Slots}
}
