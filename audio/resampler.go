// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/phonlab/formantkit/utils"
)

// Resampler converts src to a new sample rate by Catmull-Rom cubic
// interpolation over a sliding four frame window. The channel count is
// preserved. When downsampling, a one-pole low-pass smooths the input
// first to tame aliasing.
//
// Output frame k is interpolated at source position k*srcRate/dstRate;
// the stream ends once that position passes the last source frame, so a
// one second input yields (almost exactly) one second of output.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// window[1] and window[2] straddle the read position; window[0] and
	// window[3] supply the outer interpolation points. Missing neighbors
	// at the stream edges hold copies of the nearest real frame.
	window [4][]float32
	valid  [4]bool
	pos    float64 // fractional position between window[1] and window[2]
	primed bool

	frameBuf []float32
	eof      bool
	err      error

	lowpass  bool
	alpha    float32
	lpState  []float32
	lpSeeded bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	ch := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: ch,
		frameBuf: make([]float32, ch),
		lowpass:  step > 1,
		alpha:    0.5,
		lpState:  make([]float32, ch),
	}

	for i := range r.window {
		r.window[i] = make([]float32, ch)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// fetch reads one source frame into dst and runs it through the low-pass
// when enabled. Returns false when the source has no more frames.
func (r *Resampler) fetch(dst []float32) bool {
	if r.eof {
		return false
	}

	n, err := r.src.ReadSamples(r.frameBuf)
	if n > 0 {
		copy(dst, r.frameBuf[:n])
		for i := n; i < r.channels; i++ {
			dst[i] = 0
		}

		if r.lowpass {
			if !r.lpSeeded {
				// Seed with the first frame so it passes unchanged.
				copy(r.lpState, dst)
				r.lpSeeded = true
			}

			for c := range dst {
				dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.lpState[c]
				r.lpState[c] = dst[c]
			}
		}
	}

	if err != nil {
		r.eof = true
		if err != io.EOF {
			r.err = err
		}
	}

	return n > 0
}

// prime fills the interpolation window with the first source frames,
// duplicating edge frames into the slots the stream cannot fill yet.
func (r *Resampler) prime() error {
	if r.primed {
		return nil
	}
	r.primed = true

	if !r.fetch(r.window[1]) {
		if r.err != nil {
			return fmt.Errorf("%w", r.err)
		}

		return io.EOF
	}
	r.valid[1] = true

	// No frame before the first one: duplicate it.
	copy(r.window[0], r.window[1])
	r.valid[0] = true

	r.valid[2] = r.fetch(r.window[2])
	if !r.valid[2] {
		copy(r.window[2], r.window[1])
	}

	r.valid[3] = r.valid[2] && r.fetch(r.window[3])
	if !r.valid[3] {
		copy(r.window[3], r.window[2])
	}

	if r.err != nil {
		return fmt.Errorf("%w", r.err)
	}

	return nil
}

// advance slides the window one source frame forward. Returns false once
// the read position has passed the final source frame.
func (r *Resampler) advance() bool {
	r.window[0], r.window[1], r.window[2], r.window[3] =
		r.window[1], r.window[2], r.window[3], r.window[0]
	r.valid[0], r.valid[1], r.valid[2] = r.valid[1], r.valid[2], r.valid[3]

	r.valid[3] = r.fetch(r.window[3])
	if !r.valid[3] {
		copy(r.window[3], r.window[2])
	}

	return r.valid[1]
}

// ReadSamples produces samples at the target rate. The dst length must be
// a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.dstRate <= 0 || r.src.SampleRate() <= 0 {
		return 0, ErrInvalidSampleRate
	}

	if r.channels < 1 {
		return 0, ErrNoChannels
	}

	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if err := r.prime(); err != nil {
		return 0, err
	}

	if !r.valid[1] {
		// A previous read already drained the source.
		return 0, io.EOF
	}

	ch := r.channels
	frames := len(dst) / ch
	written := 0

	for written < frames {
		for r.pos >= 1 {
			r.pos--

			if !r.advance() {
				if r.err != nil {
					return written * ch, fmt.Errorf("%w", r.err)
				}

				return written * ch, io.EOF
			}
		}

		base := written * ch
		t := float32(r.pos)

		for c := 0; c < ch; c++ {
			dst[base+c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], t)
		}

		written++
		r.pos += r.step
	}

	return written * ch, nil
}
