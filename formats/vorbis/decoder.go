package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/phonlab/formantkit/audio"
)

// oggReader is the slice of oggvorbis.Reader the source needs, split out
// so tests can substitute their own.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// source adapts an oggvorbis.Reader to audio.Source. The reader already
// hands out interleaved float32 in [-1, 1], so no conversion happens;
// Read counts individual values, not frames.
type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Request whole frames so channel alignment survives partial reads.
	n := (len(dst) / s.channels) * s.channels
	if n == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	read, err := s.dec.Read(dst[:n])
	if read == 0 && err == nil {
		err = io.EOF
	}

	return read, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("creating vorbis reader: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
