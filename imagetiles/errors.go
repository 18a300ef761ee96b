package imagetiles

import "errors"

// ErrInvalidGridSize indicates gridWidth or gridHeight was less than 1.
var ErrInvalidGridSize = errors.New("imagetiles: grid width and height must be at least 1")

// ErrImageTooSmall indicates the image has fewer pixels than the
// requested grid has cells, so at least one tile would be empty.
var ErrImageTooSmall = errors.New("imagetiles: image too small for requested grid size")
