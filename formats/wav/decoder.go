package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/phonlab/formantkit/audio"
)

// wavReader is the slice of wav.Decoder the source needs, split out so
// tests can substitute their own.
type wavReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source adapts a go-audio wav.Decoder to audio.Source.
type source struct {
	dec        wavReader
	sampleRate int
	channels   int

	// Samples come back as raw ints at the file's bit depth; offset is
	// nonzero for 8-bit files, which store unsigned bytes.
	scale  float32
	offset float32

	intBuf *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	// PCMBuffer swallows io.EOF; a short count is the only end signal.
	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}

		return 0, io.EOF
	}

	for i := 0; i < n; i++ {
		dst[i] = (float32(s.intBuf.Data[i]) - s.offset) * s.scale
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs to seek between chunks, so buffer
		// non-seekable input.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}

		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != 1 {
		return nil, ErrOnlyPCMSupported
	}

	var scale, offset float32

	switch dec.BitDepth {
	case 8:
		scale, offset = 1.0/128, 128
	case 16:
		scale = 1.0 / 32768
	case 24:
		scale = 1.0 / 8388608
	case 32:
		scale = 1.0 / 2147483648
	default:
		return nil, ErrUnsupportedBitDepth
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		scale:      scale,
		offset:     offset,
	}, nil
}
