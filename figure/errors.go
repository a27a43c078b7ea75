package figure

import "errors"

// ErrNoData reports a render call with nothing to draw.
var ErrNoData = errors.New("no data to plot")
