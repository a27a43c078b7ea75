// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files.
//
// Decoding is built on github.com/go-audio/aiff and accepts PCM at 8,
// 16, 24 or 32 bits per sample, mono or multi-channel, at any sample
// rate. AIFF stores signed samples at every depth, so conversion to
// float32 is a single scale. Encoding is not supported.
//
// # Decoding
//
//	f, _ := os.Open("vowel.aiff")
//	defer f.Close()
//
//	source, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples arrive as float32 in [-1, 1]. The decoder seeks between IFF
// chunks, so it works best with an io.ReadSeeker such as *os.File;
// plain readers are buffered into memory first.
//
// # Errors
//
//   - ErrNotAiffFile: the input is not a readable AIFF file
//   - ErrUnsupportedBitDepth: a depth other than 8, 16, 24 or 32
//   - ErrUnsupportedAiffLayout: the format block could not be read
package aiff
