package catalogue

import "github.com/Mechazawa/wave-function-collapse/direction"

// Identifier distinguishes one prototype from another within a catalogue.
// It is opaque to the solver: comparison and hashing are all it requires.
type Identifier uint64

// IDSet is a set of Identifier values.
type IDSet map[Identifier]struct{}

// NewIDSet builds an IDSet from the given ids.
func NewIDSet(ids ...Identifier) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is a member of the set.
func (s IDSet) Contains(id Identifier) bool {
	_, ok := s[id]
	return ok
}

// Intersects reports whether s and other share at least one element.
// The smaller set is iterated to keep this close to O(min(|s|,|other|)).
func (s IDSet) Intersects(other IDSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for id := range small {
		if large.Contains(id) {
			return true
		}
	}
	return false
}

// Slice returns the set's members as a slice, in no particular order.
func (s IDSet) Slice() []Identifier {
	out := make([]Identifier, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

// Prototype is one immutable tile definition. Payload is opaque user data
// the solver only ever stores and copies a reference to.
type Prototype[T any] struct {
	ID      Identifier
	Payload T
	Weight  uint32
	// Neighbours[d] is the set of prototype ids permitted immediately in
	// direction d.
	Neighbours direction.Neighbors[IDSet]
}

// Catalogue is the full set of tile prototypes available to the solver.
type Catalogue[T any] struct {
	prototypes []*Prototype[T]
	byID       map[Identifier]*Prototype[T]
}
