// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math"

	formantkit "github.com/phonlab/formantkit"
)

// Waveform is a mono amplitude trace cut from a recording. Offset is
// the index of Samples[0] in the full file, so a windowed trace keeps
// its original timing.
type Waveform struct {
	Samples []float64
	Rate    int
	Offset  int
}

// Times returns the center time of every sample. Sample k of the file
// sits at (k+0.5)/Rate, matching the analysis frame timing.
func (w *Waveform) Times() []float64 {
	ts := make([]float64, len(w.Samples))
	dx := 1 / float64(w.Rate)

	for i := range ts {
		ts[i] = (float64(w.Offset+i) + 0.5) * dx
	}

	return ts
}

// LoadWaveform reads path as mono at its native rate, optionally cut
// to the [start, end] window in seconds. A negative bound means the
// corresponding signal edge, so LoadWaveform(path, -1, -1) loads the
// whole file. The window keeps samples whose centers fall inside it
// and errors with ErrEmptyWindow when none do.
func (a *Analyzer) LoadWaveform(path string, start, end float64) (*Waveform, error) {
	samples, rate, err := formantkit.ReadMono(path, a.cfg.BufSize)
	if err != nil {
		return nil, err
	}

	fs := float64(rate)

	if start < 0 {
		start = 0
	}

	if end < 0 {
		end = float64(len(samples)) / fs
	}

	ix1 := int(math.Ceil(start*fs - 0.5))
	ix2 := int(math.Floor(end*fs - 0.5))

	if ix1 < 0 {
		ix1 = 0
	}

	if ix2 > len(samples)-1 {
		ix2 = len(samples) - 1
	}

	if ix1 > ix2 {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrEmptyWindow, start, end)
	}

	return &Waveform{Samples: samples[ix1 : ix2+1], Rate: rate, Offset: ix1}, nil
}
