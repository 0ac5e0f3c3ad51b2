// SPDX-License-Identifier: EPL-2.0

// Package wavetable groups Size single-cycle waveforms into a table that
// synthesizers scan through.
//
// The usual workflow sets the two end slots, morphs the rest and exports:
//
//	t := wavetable.Empty()
//	t.SetSlot(0, waveform.Sine())
//	t.SetSlot(wavetable.Size-1, waveform.FM(waveform.Sine(), 0.5, 3, waveform.Sine()))
//	t.MorphLinear()
//	t.SetName("fm_sin")
//	path, err := t.Export() // wavetable/fm_sin.wav
//
// # File Format
//
// Export writes mono 16-bit PCM at 44100 Hz, Size*waveform.Size samples in
// slot order. Quantization truncates x*32767 toward zero and does not clamp,
// so a sample of 1.5 is stored as -16386. Normalize the table first when the
// slots may exceed full scale.
//
// Export expects OutputDir to exist and never creates directories.
// ExportTo writes into any directory.
//
// Load reverses the process from any decoded audio.Source.
package wavetable
