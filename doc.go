// SPDX-License-Identifier: EPL-2.0

// Package wtgen builds single-cycle wavetables for synthesizers.
//
// A wavetable is 256 waveforms of 2048 samples each, exported as one mono
// 16-bit WAV file at 44100 Hz. The waveform package synthesizes and
// combines cycles, the wavetable package organizes and exports them, and
// this package ties both to the audio decoders.
//
// # Quick Start
//
// The canonical table morphs from a sine to an FM sine:
//
//	table := wtgen.FMSine()
//	path, err := table.Export() // wavetable/fm_sin.wav
//
// Any two cycles can be morphed:
//
//	start, err := wtgen.ReadCycle("pluck.wav", 1200, 0)
//	end := waveform.FM(waveform.Sine(), 0.3, 5, waveform.Saw())
//	table := wtgen.Morph(start, end, "pluck_fm")
//
// # Supported Input Formats
//
// Formats returns the registry used by Open, ReadCycle and LoadTable:
//   - WAV (PCM 16-bit) via formats/wav
//   - AIFF (16-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// # Output Quantization
//
// Export truncates sample*32767 toward zero without clamping, so samples
// beyond full scale wrap around. waveform.Render saturates instead. Call
// NormalizeAll before exporting tables that may exceed full scale.
//
// # Subpackages
//
//   - waveform: the 2048-sample cycle, generators, transforms and FM
//   - wavetable: the 256-slot table, morphing, export and load
//   - script: Lua-scripted generators
//   - preview: snapshots, plots and a playable voice
//   - audio: the Source interface, mono mixing and the decoder registry
//   - formats/*: decoders and the PCM16 WAV writer
package wtgen
