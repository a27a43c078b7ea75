package analysis

import "errors"

// ErrEmptyWindow reports a time window that selects no samples.
var ErrEmptyWindow = errors.New("empty time window")
