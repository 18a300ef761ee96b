package catalogue

import (
	"fmt"

	"github.com/Mechazawa/wave-function-collapse/direction"
)

// NewCatalogue builds a Catalogue from prototypes, validating that every
// weight is >= 1 and every id is unique.
//
// Complexity: O(n) where n = len(prototypes).
func NewCatalogue[T any](prototypes []*Prototype[T]) (*Catalogue[T], error) {
	if len(prototypes) == 0 {
		return nil, ErrEmptyCatalogue
	}

	byID := make(map[Identifier]*Prototype[T], len(prototypes))
	for _, p := range prototypes {
		if p.Weight < 1 {
			return nil, fmt.Errorf("%w: prototype %d has weight %d", ErrBadWeight, p.ID, p.Weight)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalogue[T]{prototypes: prototypes, byID: byID}, nil
}

// Prototypes returns every prototype in the catalogue, in the order they
// were supplied to NewCatalogue.
func (c *Catalogue[T]) Prototypes() []*Prototype[T] {
	return c.prototypes
}

// Lookup returns the prototype with the given id, or nil if absent.
func (c *Catalogue[T]) Lookup(id Identifier) *Prototype[T] {
	return c.byID[id]
}

// Len returns the number of prototypes in the catalogue.
func (c *Catalogue[T]) Len() int {
	return len(c.prototypes)
}

// SymmetryViolation describes one failure of the adjacency symmetry
// invariant: b is permitted on side d of a, but a is not permitted on
// side d.Invert() of b.
type SymmetryViolation struct {
	A, B      Identifier
	Direction direction.Direction
}

// CheckSymmetry reports every adjacency symmetry violation in the
// catalogue: for every prototype a, direction d, and b in
// a.Neighbours[d], a must be in b.Neighbours[d.Invert()].
//
// Complexity: O(n * d * k) where k is the average neighbour-set size.
func (c *Catalogue[T]) CheckSymmetry() []SymmetryViolation {
	var violations []SymmetryViolation

	for _, a := range c.prototypes {
		for _, d := range direction.All {
			for bID := range a.Neighbours.Get(d) {
				b := c.byID[bID]
				if b == nil {
					violations = append(violations, SymmetryViolation{A: a.ID, B: bID, Direction: d})
					continue
				}
				if !b.Neighbours.Get(d.Invert()).Contains(a.ID) {
					violations = append(violations, SymmetryViolation{A: a.ID, B: bID, Direction: d})
				}
			}
		}
	}

	return violations
}

// Repair enforces adjacency symmetry by adding every missing reciprocal
// entry: for each violation a -> b on direction d, it adds a to
// b.Neighbours[d.Invert()] (when b exists in the catalogue). Prototypes
// referencing an id absent from the catalogue are left as-is; the solver
// tolerates a neighbour id that never appears in the live grid (it simply
// never matches), but CheckSymmetry still flags it for visibility.
//
// Complexity: O(n * d * k), the same walk as CheckSymmetry.
func (c *Catalogue[T]) Repair() {
	for _, a := range c.prototypes {
		for _, d := range direction.All {
			for bID := range a.Neighbours.Get(d) {
				b := c.byID[bID]
				if b == nil {
					continue
				}
				inv := d.Invert()
				set := b.Neighbours.Get(inv)
				if set == nil {
					set = IDSet{}
				}
				set[a.ID] = struct{}{}
				b.Neighbours.Set(inv, set)
			}
		}
	}
}
