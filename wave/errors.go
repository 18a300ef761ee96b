package wave

import "errors"

// ErrEmptyTemplate is returned by New when the template SuperState passed
// for grid construction has no possible prototypes.
var ErrEmptyTemplate = errors.New("wave: template superstate has no possible prototypes")
