// SPDX-License-Identifier: EPL-2.0

package formantkit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/phonlab/formantkit/audio"
	"github.com/phonlab/formantkit/formats/aiff"
	"github.com/phonlab/formantkit/formats/mp3"
	"github.com/phonlab/formantkit/formats/vorbis"
	"github.com/phonlab/formantkit/formats/wav"
)

// DefaultBufSize is the read buffer size the package-level helpers fall
// back to when the caller passes a non-positive one.
const DefaultBufSize = 4096

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register(".wav", wav.Decoder{})
	r.Register(".mp3", mp3.Decoder{})
	r.Register(".ogg", vorbis.Decoder{})
	r.Register(".oga", vorbis.Decoder{})
	r.Register(".aiff", aiff.Decoder{})
	r.Register(".aif", aiff.Decoder{})
	r.Register(".aifc", aiff.Decoder{})

	return r
}

// DefaultRegistry returns the registry backing Open, ReadMono and
// ReadMonoAt, pre-loaded with the built-in codecs. Registering on it
// changes which files those helpers can open.
func DefaultRegistry() *audio.Registry {
	return defaultRegistry
}

// DecoderFor picks a decoder for path by its extension.
func DecoderFor(path string) (audio.Decoder, error) {
	ext := filepath.Ext(path)

	d, ok := defaultRegistry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return d, nil
}

// Open opens the file at path and decodes it with the decoder
// registered for its extension. The caller owns the returned closer
// and must close it once done with the source.
func Open(path string) (audio.Source, io.Closer, error) {
	d, err := DecoderFor(path)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}

	src, err := d.Decode(f)
	if err != nil {
		f.Close()

		return nil, nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return src, f, nil
}

// ReadMono decodes the file at path, mixes it down to a single channel
// and collects every sample. It returns the samples together with the
// file's native sample rate.
func ReadMono(path string, bufSize int) ([]float64, int, error) {
	return readMono(path, 0, bufSize)
}

// ReadMonoAt is ReadMono with a rate cap: sources faster than
// targetRate are resampled down to it before mixing, slower ones keep
// their native rate. The returned rate is the one the samples are at.
func ReadMonoAt(path string, targetRate, bufSize int) ([]float64, int, error) {
	return readMono(path, targetRate, bufSize)
}

func readMono(path string, targetRate, bufSize int) ([]float64, int, error) {
	src, closer, err := Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer closer.Close()

	stream := audio.Source(src)
	if targetRate > 0 && src.SampleRate() > targetRate {
		stream = audio.NewResampler(stream, targetRate)
	}

	mono := audio.NewMonoMixer(stream)

	samples, err := audio.Drain(mono, bufSize)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}

	return samples, mono.SampleRate(), nil
}
