// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes mono 16-bit PCM WAV files on top of
// github.com/go-audio/wav.
//
// # Decoding
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 2048)
//	n, err := src.ReadSamples(buf)
//
// Samples are scaled by 1/32768 into [-1, 1). Only 16-bit integer PCM is
// accepted; anything else yields ErrOnlyPCM16bitSupported, and input that is
// not a RIFF/WAVE file yields ErrNotWavFile.
//
// # Encoding
//
// PCM16Writer streams already quantized samples:
//
//	w := wav.NewPCM16Writer(file, 44100)
//	for _, block := range blocks {
//	    if err := w.Write(block); err != nil {
//	        return err
//	    }
//	}
//	err := w.Close()
//
// The writer does no quantization of its own; callers decide whether
// out-of-range values clamp or wrap before handing int16 samples over.
// Close patches the RIFF and data sizes, so the destination must be an
// io.WriteSeeker such as *os.File. WriteWAV16 is the one-shot form.
package wav
