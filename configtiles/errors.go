package configtiles

import "errors"

// ErrSlotCount indicates an entry's Slots array does not have exactly
// direction.Count elements.
var ErrSlotCount = errors.New("configtiles: slots must have exactly 4 entries: up, right, down, left")
