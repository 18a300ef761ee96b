package grid

import "errors"

// ErrOutOfBounds indicates a coordinate lies outside [0,Width) x [0,Height).
var ErrOutOfBounds = errors.New("grid: coordinates out of range")
