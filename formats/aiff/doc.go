// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files through github.com/go-audio/aiff.
//
// It is registered under the "aif" and "aiff" extensions so single cycles
// can be imported from AIFF exports of other synthesizers:
//
//	src, err := aiff.Decoder{}.Decode(file)
//	cycle, err := waveform.Read(src, 0, 0)
//
// Samples come out big-endian decoded and scaled by 1/32768. Other bit
// depths return ErrOnlyPCM16bitSupported; input that is not a FORM/AIFF
// file returns ErrNotAiffFile.
package aiff
