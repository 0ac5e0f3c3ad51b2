// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes natively to float32, so samples pass through unscaled:
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	cycle, err := waveform.Read(src, 0, 2048)
//
// ReadSamples only ever returns whole frames; a destination shorter than
// one frame reads nothing.
package vorbis
