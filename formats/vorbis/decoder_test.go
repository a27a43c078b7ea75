// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/phonlab/formantkit/audio"
)

// fakeStream feeds canned float32 values through the oggReader
// interface, mimicking oggvorbis.Reader's value-counting Read.
type fakeStream struct {
	sampleRate int
	channels   int
	values     []float32
	offset     int
	failWith   error
}

func (f *fakeStream) SampleRate() int { return f.sampleRate }
func (f *fakeStream) Channels() int   { return f.channels }

func (f *fakeStream) Read(p []float32) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}

	if f.offset >= len(f.values) {
		return 0, io.EOF
	}

	n := copy(p, f.values[f.offset:])
	f.offset += n

	return n, nil
}

func newFakeSource(rate, channels int, values []float32) *source {
	return &source{
		dec:        &fakeStream{sampleRate: rate, channels: channels, values: values},
		sampleRate: rate,
		channels:   channels,
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("this is not an ogg stream")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newFakeSource(48000, 2, make([]float32, 16))

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestSource_ReadSamples_Passthrough(t *testing.T) {
	t.Parallel()

	// Vorbis already decodes to float32, so values arrive untouched.
	values := []float32{0, 0.25, -0.25, 0.5, -0.5, 1, -1, 0.125}
	src := newFakeSource(44100, 2, values)

	dst := make([]float32, len(values))
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != len(values) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(values))
	}

	for i, want := range values {
		if dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestSource_ReadSamples_ClampsToFrames(t *testing.T) {
	t.Parallel()

	// A dst that cannot hold whole stereo frames is trimmed to the
	// frame boundary, never split mid-frame.
	src := newFakeSource(44100, 2, []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6})

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4", n)
	}
}

func TestSource_ReadSamples_DstTooSmall(t *testing.T) {
	t.Parallel()

	src := newFakeSource(44100, 2, []float32{0.1, 0.2})

	dst := make([]float32, 1)
	_, err := src.ReadSamples(dst)

	if !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestSource_ReadSamples_EmptyDst(t *testing.T) {
	t.Parallel()

	src := newFakeSource(44100, 2, []float32{0.1, 0.2})

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Drain(t *testing.T) {
	t.Parallel()

	values := make([]float32, 10000)
	for i := range values {
		values[i] = float32(i%200)/100 - 1
	}

	src := newFakeSource(48000, 2, values)
	dst := make([]float32, 256)
	total := 0

	for {
		n, err := src.ReadSamples(dst)
		total += n

		if err == io.EOF {
			break
		}

		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != len(values) {
		t.Errorf("read %d values, want %d", total, len(values))
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newFakeSource(44100, 1, []float32{0.5})

	dst := make([]float32, 4)
	if n, _ := src.ReadSamples(dst); n != 1 {
		t.Fatalf("ReadSamples() n = %d, want 1", n)
	}

	n, err := src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReadSamples_PropagatesError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("ogg page checksum mismatch")
	src := &source{
		dec:        &fakeStream{sampleRate: 44100, channels: 2, failWith: readErr},
		sampleRate: 44100,
		channels:   2,
	}

	dst := make([]float32, 16)
	if _, err := src.ReadSamples(dst); !errors.Is(err, readErr) {
		t.Errorf("ReadSamples() error = %v, want %v", err, readErr)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	src := newFakeSource(44100, 2, []float32{0.1, 0.2})
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	values := make([]float32, 48000)
	for i := range values {
		values[i] = float32(i%200)/100 - 1
	}

	dst := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src := newFakeSource(48000, 2, values)

		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
