// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio files.
//
// Decoding is built on github.com/jfreymuth/oggvorbis. Vorbis decodes
// natively to float32 in [-1, 1], so samples pass through without any
// integer conversion. Mono and multi-channel files at any sample rate
// are supported; encoding is not.
//
// # Decoding
//
//	f, _ := os.Open("recording.ogg")
//	defer f.Close()
//
//	source, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Multi-channel samples are interleaved frame by frame:
//
//	[L0, R0, L1, R1, ...]
//
// Reads are trimmed to whole frames; a destination smaller than one
// frame fails with audio.ErrInvalidDstSize.
package vorbis
