// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Resonance describes a single vocal-tract resonance for Vowel.
type Resonance struct {
	Frequency float64 // Hz
	Bandwidth float64 // Hz
}

// Vowel synthesizes n samples of a vowel-like signal: an impulse train at
// the fundamental f0 driven through a cascade of two-pole resonators, one
// per requested resonance. The output is an all-pole process, so LPC-based
// analysis should recover the resonance frequencies closely. Peak
// amplitude is normalized to 0.9.
func Vowel(sampleRate, n int, f0 float64, resonances []Resonance) []float64 {
	x := make([]float64, n)

	period := int(float64(sampleRate) / f0)
	if period < 1 {
		period = 1
	}
	for i := 0; i < n; i += period {
		x[i] = 1
	}

	fs := float64(sampleRate)
	for _, res := range resonances {
		// Standard digital resonator: poles at r·e^{±iθ}.
		r := math.Exp(-math.Pi * res.Bandwidth / fs)
		theta := 2 * math.Pi * res.Frequency / fs
		b1 := 2 * r * math.Cos(theta)
		b2 := -r * r

		var y1, y2 float64
		for i := range x {
			y := x[i] + b1*y1 + b2*y2
			y2, y1 = y1, y
			x[i] = y
		}
	}

	var peak float64
	for _, v := range x {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak > 0 {
		scale := 0.9 / peak
		for i := range x {
			x[i] *= scale
		}
	}

	return x
}

// Sine returns n samples of a sine wave at the given frequency.
func Sine(sampleRate, n int, frequency float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		t := float64(i) / float64(sampleRate)
		x[i] = math.Sin(2 * math.Pi * frequency * t)
	}

	return x
}

// Chirp returns n samples sweeping linearly from f0 to f1, a deterministic
// wide-band fixture.
func Chirp(sampleRate, n int, f0, f1 float64) []float64 {
	x := make([]float64, n)
	dur := float64(n) / float64(sampleRate)
	rate := (f1 - f0) / dur

	for i := range x {
		t := float64(i) / float64(sampleRate)
		phase := 2 * math.Pi * (f0*t + 0.5*rate*t*t)
		x[i] = math.Sin(phase)
	}

	return x
}

// ToFloat32 narrows analysis samples back to the streaming format.
func ToFloat32(x []float64) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(v)
	}

	return out
}
