// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo 16-bit PCM, so the returned
// audio.Source reports two channels regardless of the file; waveform.Read
// downmixes it before capturing a cycle.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	cycle, err := waveform.Read(src, 4410, 100)
//
// MP3 frames carry encoder delay, so importing a cycle from a recording
// usually needs a non-zero offset.
package mp3
