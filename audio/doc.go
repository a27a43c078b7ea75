// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core building blocks of the toolkit:
//   - Source interface for audio input
//   - Resampler for sample rate conversion
//   - MonoMixer for channel downmixing
//   - Drain for collecting a stream into memory
//   - Registry mapping file extensions to decoders
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All decoders and processors implement this interface, allowing them to
// be chained together in processing pipelines.
//
// # Resampling
//
// The Resampler changes the sample rate using cubic interpolation:
//
//	resampler := audio.NewResampler(source, 11000)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// Formant analysis downsamples recordings to twice the formant ceiling
// before LPC; the Resampler handles both that and general conversions.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// All analysis in this toolkit runs on mono signals.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register(".wav", wav.Decoder{})
//	decoder, ok := registry.Get(".wav")
//
// Keys are normalized, so ".WAV" and "wav" address the same entry.
//
// # Sample Format
//
// Audio samples stream as float32 in the range [-1.0, 1.0]; analysis code
// widens them to float64 via Drain. The normalized format keeps bit depth
// concerns inside the decoders.
//
// # Error Handling
//
// Processing functions return io.EOF when no more data is available.
// Other errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // process n samples from buf
//	}
package audio
