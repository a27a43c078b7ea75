package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a readable WAV file.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrOnlyPCMSupported indicates a compressed or floating-point WAV.
	ErrOnlyPCMSupported = errors.New("only PCM WAV is supported")

	// ErrUnsupportedBitDepth indicates a bit depth other than 8, 16, 24
	// or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
