// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio files.
//
// Decoding is built on github.com/hajimehoshi/go-mp3, which always
// produces 16-bit stereo PCM regardless of how the file was encoded, so
// sources from this package report two channels. Encoding is not
// supported.
//
// # Decoding
//
//	f, _ := os.Open("interview.mp3")
//	defer f.Close()
//
//	source, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples arrive as float32 in [-1, 1]. For formant analysis the stereo
// output is usually folded to mono and downsampled first:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(source, 11025))
package mp3
