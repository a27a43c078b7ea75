// SPDX-License-Identifier: EPL-2.0

// Package formantkit measures formant frequencies in speech recordings.
//
// The module decodes common audio formats into a mono stream, runs Burg
// linear-prediction analysis over short Gaussian-windowed frames, and
// reports the resulting formant tracks as values, CSV tables or PNG
// plots. The root package holds the file-level conveniences that tie
// the decoding pipeline together.
//
// # Reading Audio
//
// Open decodes a file by its extension using the built-in codec
// registry:
//
//	src, closer, err := formantkit.Open("take01.wav")
//	if err != nil {
//		return err
//	}
//	defer closer.Close()
//
// ReadMono and ReadMonoAt collect a whole file as mono float64 samples.
// ReadMonoAt caps the sample rate, which is how analysis code brings a
// 44.1 kHz recording down to a rate suited to a 5.5 kHz formant
// ceiling:
//
//	samples, rate, err := formantkit.ReadMonoAt("take01.wav", 11000, formantkit.DefaultBufSize)
//
// Sources already at or below the target rate keep their native rate.
//
// # Supported Formats
//
// The default registry maps extensions to the codec subpackages:
//   - .wav via formats/wav (which also writes PCM WAV files)
//   - .mp3 via formats/mp3
//   - .ogg, .oga via formats/vorbis
//   - .aiff, .aif, .aifc via formats/aiff
//
// Additional decoders can be attached to DefaultRegistry, and custom
// pipelines can be built directly from the audio subpackage's Source,
// Resampler and MonoMixer types.
//
// # Formant Analysis
//
// The formant subpackage turns mono samples into a formant track:
//
//	track, err := formant.Analyze(samples, rate, formant.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	f1 := track.ValueAt(1, 0.5) // F1 in Hz at t=0.5s, NaN when absent
//
// The analysis subpackage batches that over a directory of recordings
// and exports CSV tables, and the figure subpackage renders formant
// grids and waveform plots as PNG files. The formantkit command wires
// all of it into a CLI.
package formantkit
