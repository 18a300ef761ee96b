package catalogue

import "errors"

// Sentinel errors for catalogue construction.
var (
	// ErrEmptyCatalogue indicates NewCatalogue was called with no prototypes.
	ErrEmptyCatalogue = errors.New("catalogue: at least one prototype is required")

	// ErrDuplicateID indicates two prototypes share an Identifier.
	ErrDuplicateID = errors.New("catalogue: duplicate prototype identifier")

	// ErrBadWeight indicates a prototype's weight is less than 1.
	ErrBadWeight = errors.New("catalogue: prototype weight must be >= 1")
)
