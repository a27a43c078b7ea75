// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeChunk is the number of samples converted per encoder write.
const writeChunk = 8192

// WriteMono16 writes samples as a mono 16-bit PCM WAV at sampleRate. The
// writer must support seeking: the encoder patches the chunk sizes into
// the header on Close.
func WriteMono16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, min(len(samples), writeChunk)),
		SourceBitDepth: 16,
	}

	// The first write also emits the header, so run once even with no
	// samples to keep empty output well-formed.
	for start := 0; ; start += writeChunk {
		end := min(start+writeChunk, len(samples))
		chunk := samples[start:end]

		buf.Data = buf.Data[:len(chunk)]
		for i, s := range chunk {
			buf.Data[i] = int(s)
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}

		if end == len(samples) {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}

	return nil
}
