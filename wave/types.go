package wave

import (
	"math/rand"

	"github.com/Mechazawa/wave-function-collapse/catalogue"
	"github.com/Mechazawa/wave-function-collapse/direction"
	"github.com/Mechazawa/wave-function-collapse/grid"
	"github.com/Mechazawa/wave-function-collapse/superstate"
)

// Reason tags a collapse-history entry as having been produced by an
// explicit observation (Collapse) or implicitly as a side effect of
// propagation reducing a cell to entropy 1.
type Reason int

const (
	Implicit Reason = iota
	Explicit
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	if r == Explicit {
		return "Explicit"
	}
	return "Implicit"
}

// collapseEntry is one entry of the collapse-history stack: the position
// that settled, and why.
type collapseEntry struct {
	pos    grid.Position
	reason Reason
}

// cell is the grid's element type: a pointer so that in-place mutation via
// SuperState's methods is visible through every alias of a given position.
type cell[T any] = *superstate.SuperState[T]

// pendingEntry is the four-way union-of-neighbour-ids accumulated for a
// cell awaiting its next tick_cell; nil means "not currently pending".
type pendingEntry = *direction.Neighbors[catalogue.IDSet]

// Wave is the propagation engine: a grid of superstates, a frozen
// snapshot of their initial state, a propagation queue with at-most-one-
// outstanding-entry-per-cell semantics, a collapse history stack, and the
// seeded RNG driving every observation.
type Wave[T any] struct {
	grid     *grid.Grid[cell[T]]
	gridBase *grid.Grid[cell[T]]

	pending *grid.Grid[pendingEntry]
	queue   []grid.Position

	collapsed []collapseEntry

	rng *rand.Rand

	lastRollback    int
	rollbackPenalty int
}
