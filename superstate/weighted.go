package superstate

import (
	"math/rand"
	"sort"

	"github.com/Mechazawa/wave-function-collapse/catalogue"
)

// Collapse reduces this cell to a single prototype, chosen by weighted
// random sampling over Possible(). No-op if already collapsed or already
// contradicted (entropy <= 1). Returns the chosen prototype, or nil if
// Collapse was a no-op.
//
// Determinism: the same rng stream over the same possible set always picks
// the same prototype, regardless of the order Tick happened to leave
// possible in. Prototypes are sorted by Identifier before sampling so that
// goroutine scheduling in a prior parallel Tick (see parallel.go) can never
// perturb which prototype wins a given draw.
func (s *SuperState[T]) Collapse(rng *rand.Rand) *catalogue.Prototype[T] {
	if s.entropy <= 1 {
		return nil
	}

	ordered := make([]*catalogue.Prototype[T], len(s.possible))
	copy(ordered, s.possible)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	chosen := weightedChoice(ordered, rng)
	s.possible = []*catalogue.Prototype[T]{chosen}
	s.updateEntropy()
	return chosen
}

// weightedChoice picks one prototype from ordered with probability
// proportional to its Weight. ordered must be non-empty and every Weight
// must be >= 1 (guaranteed by catalogue.NewCatalogue).
func weightedChoice[T any](ordered []*catalogue.Prototype[T], rng *rand.Rand) *catalogue.Prototype[T] {
	var total uint64
	for _, p := range ordered {
		total += uint64(p.Weight)
	}

	target := uint64(rng.Int63n(int64(total)))
	var acc uint64
	for _, p := range ordered {
		acc += uint64(p.Weight)
		if target < acc {
			return p
		}
	}
	// Unreachable given total accounting above; return the last as a safe
	// fallback rather than nil.
	return ordered[len(ordered)-1]
}
