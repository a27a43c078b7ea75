package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a readable AIFF file.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth indicates a bit depth other than 8, 16, 24
	// or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported AIFF bit depth")

	// ErrUnsupportedAiffLayout indicates a file whose format block could
	// not be read.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
