// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV audio files.
//
// Decoding is built on github.com/go-audio/wav and accepts integer PCM
// at 8, 16, 24 or 32 bits per sample, mono or multi-channel, at any
// sample rate. Compressed and floating-point WAVs are rejected with
// ErrOnlyPCMSupported.
//
// # Decoding
//
// Decoder implements audio.Decoder:
//
//	f, _ := os.Open("vowel.wav")
//	defer f.Close()
//
//	source, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples arrive as float32 in [-1, 1] regardless of the stored bit
// depth. 8-bit files, which store unsigned bytes, are re-centered
// around zero.
//
// The decoder seeks between RIFF chunks, so it works best with an
// io.ReadSeeker such as *os.File. Plain readers are buffered into
// memory first.
//
// # Encoding
//
// WriteMono16 writes a mono 16-bit PCM file, the format produced when
// converting recordings for acoustic analysis:
//
//	f, _ := os.Create("mono.wav")
//	defer f.Close()
//
//	err := wav.WriteMono16(f, 11025, samples)
//
// The destination must support seeking: chunk sizes are patched into
// the header when the encoder is closed.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a readable WAV file
//   - ErrOnlyPCMSupported: compressed or floating-point data
//   - ErrUnsupportedBitDepth: a PCM depth other than 8, 16, 24 or 32
//   - ErrInvalidSampleRate: WriteMono16 called with a rate below 1
package wav
