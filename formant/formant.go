// SPDX-License-Identifier: EPL-2.0

package formant

import (
	"fmt"
	"math"
)

// Config holds the analysis parameters. A zero or negative field
// selects its default, so Config{} runs a standard five-formant
// analysis.
type Config struct {
	// TimeStep is the interval between frame centers in seconds.
	// Defaults to WindowLength/4.
	TimeStep float64

	// MaxFormants is the number of formants the model fits; the linear
	// prediction order is twice this. Defaults to 5.
	MaxFormants int

	// Ceiling is the highest formant frequency of interest in Hz.
	// Analyze maps pole angles onto the signal's own nyquist, so
	// callers bring recordings down to a 2×Ceiling sample rate first
	// (ReadMonoAt does this; the analysis package wires it up).
	// Defaults to 5500, suited to a female vocal tract.
	Ceiling float64

	// WindowLength is the effective analysis window duration in
	// seconds. The physical window spans twice this. Defaults to 0.025.
	WindowLength float64

	// PreemphasisFrom is the frequency in Hz above which the signal is
	// boosted by 6 dB/octave before analysis. Values at or above the
	// nyquist disable pre-emphasis. Defaults to 50.
	PreemphasisFrom float64
}

// DefaultConfig returns the standard analysis parameters.
func DefaultConfig() Config {
	return Config{
		MaxFormants:     5,
		Ceiling:         5500,
		WindowLength:    0.025,
		PreemphasisFrom: 50,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()

	if c.MaxFormants <= 0 {
		c.MaxFormants = d.MaxFormants
	}

	if c.Ceiling <= 0 {
		c.Ceiling = d.Ceiling
	}

	if c.WindowLength <= 0 {
		c.WindowLength = d.WindowLength
	}

	if c.PreemphasisFrom <= 0 {
		c.PreemphasisFrom = d.PreemphasisFrom
	}

	if c.TimeStep <= 0 {
		c.TimeStep = c.WindowLength / 4
	}

	return c
}

// Analyze runs a Burg linear-prediction formant analysis over a mono
// signal and returns the resulting track. The signal is cut into
// Gaussian-windowed frames spanning 2×cfg.WindowLength, stepped
// cfg.TimeStep apart and centered as a block in the middle of the
// signal, so the last frame sits as close to the end as the first does
// to the start. A signal shorter than the physical window is analyzed
// as a single frame covering all of it.
//
// samples holds amplitudes in [-1, 1] at sampleRate Hz; the slice is
// not modified.
func Analyze(samples []float64, sampleRate int, cfg Config) (*Track, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	cfg = cfg.withDefaults()

	dx := 1.0 / float64(sampleRate)
	duration := float64(len(samples)) * dx
	nyquist := 0.5 * float64(sampleRate)
	order := 2 * cfg.MaxFormants

	windowDuration := 2 * cfg.WindowLength
	windowSamples := int(math.Floor(windowDuration / dx))
	halfWindow := windowSamples / 2

	if windowSamples < order+1 {
		return nil, fmt.Errorf("%w: %d samples for prediction order %d",
			ErrWindowTooShort, windowSamples, order)
	}

	dt := cfg.TimeStep

	frames := 1 + int(math.Floor((duration-windowDuration)/dt))
	t1 := 0.5 * (duration - float64(frames-1)*dt)

	if frames < 1 {
		frames = 1
		t1 = 0.5 * duration
		windowSamples = len(samples)
	}

	window := gaussianWindow(windowSamples)

	// Pre-emphasis mutates, so work on a copy.
	x := make([]float64, len(samples))
	copy(x, samples)
	preEmphasize(x, cfg.PreemphasisFrom, dx)

	out := make([]Frame, frames)
	buf := make([]float64, windowSamples)

	for i := 0; i < frames; i++ {
		t := t1 + float64(i)*dt

		// Window around t, clipped to the signal. Sample k sits at
		// time (k+0.5)·dx.
		left := int(math.Floor(t/dx - 0.5))
		start := left + 1 - halfWindow
		end := left + halfWindow

		if start < 0 {
			start = 0
		}

		if end > len(x)-1 {
			end = len(x) - 1
		}

		var peak float64
		for _, v := range x[start : end+1] {
			if v*v > peak {
				peak = v * v
			}
		}

		out[i] = Frame{Time: t, Intensity: peak}
		if peak == 0 {
			continue // Burg has no answer for silence
		}

		n := end - start + 1
		for j := 0; j < n; j++ {
			buf[j] = x[start+j] * window[j]
		}

		out[i].Formants = frameFormants(buf[:n], order, nyquist)
	}

	return &Track{
		XMin:      0,
		XMax:      duration,
		TimeStep:  dt,
		FirstTime: t1,
		Frames:    out,
	}, nil
}

// gaussianWindow returns the Gaussian-like analysis window: a genuine
// Gaussian rescaled so it would reach zero one sample beyond each end.
func gaussianWindow(n int) []float64 {
	w := make([]float64, n)

	imid := 0.5 * float64(n-1)
	edge := math.Exp(-12)
	span := float64(n+1) * float64(n+1)

	for i := range w {
		d := float64(i) - imid
		w[i] = (math.Exp(-48*d*d/span) - edge) / (1 - edge)
	}

	return w
}

// preEmphasize applies the first-order filter x[i] -= k·x[i-1] in
// place, from the end backwards, boosting the spectrum above the given
// frequency by 6 dB/octave. Frequencies at or above the nyquist leave
// the signal untouched.
func preEmphasize(x []float64, from, dx float64) {
	if from >= 0.5/dx {
		return
	}

	k := math.Exp(-2 * math.Pi * from * dx)
	for i := len(x) - 1; i >= 1; i-- {
		x[i] -= k * x[i-1]
	}
}
