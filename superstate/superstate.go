package superstate

import (
	"github.com/Mechazawa/wave-function-collapse/catalogue"
	"github.com/Mechazawa/wave-function-collapse/direction"
)

// New builds a SuperState from the given set of still-possible prototypes.
// Duplicates are the caller's responsibility to avoid; the solver never
// introduces them itself since possible only ever shrinks via Tick.
func New[T any](possible []*catalogue.Prototype[T]) *SuperState[T] {
	n := len(possible)
	cp := make([]*catalogue.Prototype[T], n)
	copy(cp, possible)

	return &SuperState[T]{possible: cp, baseEntropy: n, entropy: n}
}

// Entropy returns the cached count of still-possible prototypes.
func (s *SuperState[T]) Entropy() int { return s.entropy }

// BaseEntropy returns the possibility count at construction; it never
// changes after New.
func (s *SuperState[T]) BaseEntropy() int { return s.baseEntropy }

// Collapsing reports whether this cell's entropy has been reduced below
// its base entropy. This stays true once the cell has collapsed (entropy
// 1) or contradicted (entropy 0), provided its base entropy was higher.
func (s *SuperState[T]) Collapsing() bool { return s.entropy < s.baseEntropy }

// Collapsed returns the single remaining prototype if entropy == 1, or
// nil otherwise.
func (s *SuperState[T]) Collapsed() *catalogue.Prototype[T] {
	if s.entropy != 1 {
		return nil
	}
	return s.possible[0]
}

// Possible returns the prototypes still possible at this cell. The
// returned slice aliases internal storage and must not be mutated.
func (s *SuperState[T]) Possible() []*catalogue.Prototype[T] {
	return s.possible
}

// IDs returns the set of identifiers still possible at this cell.
func (s *SuperState[T]) IDs() catalogue.IDSet {
	ids := make(catalogue.IDSet, len(s.possible))
	for _, p := range s.possible {
		ids[p.ID] = struct{}{}
	}
	return ids
}

// Clone returns a deep copy: a new SuperState with its own possible slice,
// independent of the original's backing array.
func (s *SuperState[T]) Clone() *SuperState[T] {
	cp := make([]*catalogue.Prototype[T], len(s.possible))
	copy(cp, s.possible)
	return &SuperState[T]{possible: cp, baseEntropy: s.baseEntropy, entropy: s.entropy}
}

func (s *SuperState[T]) updateEntropy() {
	s.entropy = len(s.possible)
}

// Tick retains only prototypes compatible with neighbours: a prototype p
// survives iff for every direction d where neighbours[d] is non-empty,
// p.Neighbours[d] intersects neighbours[d]. Directions with an empty
// neighbour set (grid edge, or a side not yet constrained) impose no
// restriction. No-op once entropy <= 1.
//
// Complexity: O(len(possible)*4) sequentially; dispatched to a worker pool
// (see parallel.go) once len(possible) exceeds ParallelThreshold.
func (s *SuperState[T]) Tick(neighbours direction.Neighbors[catalogue.IDSet]) {
	if s.entropy <= 1 {
		return
	}

	s.possible = filterCompatible(s.possible, neighbours)
	s.updateEntropy()
}

// compatible reports whether p may remain possible given neighbours.
func compatible[T any](p *catalogue.Prototype[T], neighbours direction.Neighbors[catalogue.IDSet]) bool {
	for _, d := range direction.All {
		allowed := neighbours.Get(d)
		if len(allowed) == 0 {
			continue
		}
		if !p.Neighbours.Get(d).Intersects(allowed) {
			return false
		}
	}
	return true
}
