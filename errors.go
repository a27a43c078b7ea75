package formantkit

import "errors"

// ErrUnknownFormat reports that no decoder is registered for a file's
// extension.
var ErrUnknownFormat = errors.New("unknown audio format")
