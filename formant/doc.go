// SPDX-License-Identifier: EPL-2.0

// Package formant measures vowel formant frequencies with Burg
// linear-prediction analysis, following Praat's "To Formant (burg)"
// semantics.
//
// # Method
//
// The signal is pre-emphasized (+6 dB/octave above 50 Hz by default)
// and cut into Gaussian-windowed frames spanning twice the nominal
// window length. Each frame is fitted with an all-pole model of order
// 2×MaxFormants using Burg's method; the poles of the fitted filter
// map to formants:
//
//	frequency = |arg z| · nyquist/π
//	bandwidth = −ln|z|² · nyquist/π
//
// Poles within 50 Hz of 0 Hz or of the nyquist are discarded, frames
// of silence carry no formants at all.
//
// # Sample Rate
//
// Formants are only found below the signal's nyquist, so recordings
// are analyzed at a sample rate of twice the formant ceiling: for the
// default 5500 Hz ceiling, bring the signal to 11000 Hz first.
// formantkit.ReadMonoAt does exactly that, leaving slower recordings
// at their native rate.
//
// # Usage
//
//	samples, rate, err := formantkit.ReadMonoAt(path, 11000, formantkit.DefaultBufSize)
//	if err != nil {
//		return err
//	}
//
//	track, err := formant.Analyze(samples, rate, formant.DefaultConfig())
//	if err != nil {
//		return err
//	}
//
//	f1 := track.ValueAt(1, 0.5) // F1 in Hz at t = 0.5 s
//
// ValueAt interpolates linearly between neighboring frames and returns
// NaN wherever a formant was not measured. NaN is the absent-value
// marker throughout the package.
package formant
