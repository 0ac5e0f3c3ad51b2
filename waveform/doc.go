// SPDX-License-Identifier: EPL-2.0

// Package waveform implements single-cycle waveforms of Size samples.
//
// A Waveform holds exactly one period. Indexing through At is circular, so
// At(-1) is the last sample and At(Size) is the first.
//
// # Construction
//
//	sine := waveform.Sine()
//	custom := waveform.FromGenerator(func(phase float32) float32 {
//	    return 2*phase - 1
//	})
//
// Cycles of any length, for example one period cut out of a recording, are
// stretched to Size samples with FromCycle or read straight from a decoded
// stream with Read.
//
// # Transforms
//
// Normalize, Scale and Invert modify the receiver and return it, which allows
// chaining:
//
//	w := waveform.Sine().Scale(0.5).Normalize()
//
// # Operators
//
// Add, Sub, Mul and Div combine two waveforms sample by sample. FM reads
// the carrier at an offset driven by the modulator:
//
//	fm := waveform.FM(waveform.Sine(), 0.5, 3, waveform.Sine())
//
// Offsets are rounded to whole samples, so modulation with a fractional
// harmonic ratio aliases. That is a property of the algorithm.
//
// # Numeric Edge Cases
//
// Nothing here returns an error for numeric reasons. Div by zero yields
// Inf or NaN, and Normalize of a silent waveform leaves it silent.
package waveform
