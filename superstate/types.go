package superstate

import "github.com/Mechazawa/wave-function-collapse/catalogue"

// SuperState is a cell's current possibility set: the prototypes still
// allowed there, plus cached base and current entropy.
//
// Invariants: 0 <= entropy <= baseEntropy; entropy == 1 means collapsed;
// entropy == 0 means contradiction.
type SuperState[T any] struct {
	possible    []*catalogue.Prototype[T]
	baseEntropy int
	entropy     int
}
