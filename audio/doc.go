// SPDX-License-Identifier: EPL-2.0

// Package audio provides the stream primitives shared by the format
// decoders and the wavetable tools.
//
// # Source Interface
//
// A Source yields interleaved float32 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Decoders in formats/* return a Source, the single-slot preview voice is a
// Source, and waveform.Read and wavetable.Load consume one.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 2048)
//	n, err := mono.ReadSamples(buf)
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	src, err := registry.Open("cycle.wav")
//
// Open returns ErrUnknownFormat when no decoder matches the extension.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
