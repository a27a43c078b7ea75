package formant

import "errors"

var (
	// ErrInvalidSampleRate is returned when the sample rate is not positive.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrNoSamples is returned when there is no signal to analyze.
	ErrNoSamples = errors.New("no samples")

	// ErrWindowTooShort is returned when the analysis window holds fewer
	// samples than the LPC model needs.
	ErrWindowTooShort = errors.New("window too short")
)
