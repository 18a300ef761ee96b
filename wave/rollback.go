package wave

import (
	"github.com/Mechazawa/wave-function-collapse/direction"
	"github.com/Mechazawa/wave-function-collapse/grid"
)

// onContradiction handles a cell having just reduced to zero possibilities.
// It tracks progress since the last contradiction to grow rollbackPenalty
// when the solver is looping back into the same region, falls back to a
// full reset when the collapse history cannot absorb the requested
// rollback, and otherwise rolls back and rebuilds the propagation queue
// from scratch over every cell.
func (w *Wave[T]) onContradiction() {
	progress := w.grid.Size() - w.Remaining()

	if progress <= w.lastRollback {
		w.rollbackPenalty++
	} else {
		w.lastRollback = progress
		w.rollbackPenalty = 1
	}

	explicitCount := 0
	for _, e := range w.collapsed {
		if e.reason == Explicit {
			explicitCount++
		}
	}

	if explicitCount < w.rollbackPenalty {
		w.fullReset()
		return
	}

	w.rollback(w.rollbackPenalty)
	w.rebuildQueue()
}

// fullReset restores every cell to its grid_base value and clears all
// solver-internal bookkeeping.
func (w *Wave[T]) fullReset() {
	w.grid.Iterate(func(x, y int, c *cell[T]) {
		*c = (*w.gridBase.Get(x, y)).Clone()
	})

	w.pending = grid.New(w.grid.Width(), w.grid.Height(), func(x, y int) pendingEntry { return nil })
	w.queue = nil
	w.collapsed = nil
	w.rollbackPenalty = 1
	w.lastRollback = 0
}

// rebuildQueue clears pending and the queue, then enqueues every grid
// position in row-major order so the next ticks reinitialize pending from
// live state.
func (w *Wave[T]) rebuildQueue() {
	w.pending = grid.New(w.grid.Width(), w.grid.Height(), func(x, y int) pendingEntry { return nil })
	w.queue = w.queue[:0]
	w.grid.Iterate(func(x, y int, _ *cell[T]) {
		w.queue = append(w.queue, grid.Position{X: x, Y: y})
	})
}

// rollback undoes the most recent k Explicit collapse entries (discarding
// any Implicit entries encountered along the way), reverting each visited
// cell to its grid_base value and propagating that reversion to dependent
// neighbours.
func (w *Wave[T]) rollback(k int) {
	if k <= 0 {
		return
	}

	for len(w.collapsed) > 0 {
		n := len(w.collapsed)
		entry := w.collapsed[n-1]
		w.collapsed = w.collapsed[:n-1]

		w.rollbackPropagate(entry.pos.X, entry.pos.Y, nil)
		w.queue = append([]grid.Position{entry.pos}, w.queue...)

		if entry.reason == Explicit {
			k--
			if k == 0 {
				break
			}
		}
	}
}

// rollbackPropagate reverts (x,y) to its base state and recursively
// reverts any collapsing but not yet collapsed neighbour whose simulated re-tick against the
// current grid would produce a different entropy than its live state,
// skipping the direction back toward from (the cell this call recursed
// from) to avoid re-descending into the caller.
func (w *Wave[T]) rollbackPropagate(x, y int, from *direction.Direction) {
	base := (*w.gridBase.Get(x, y)).Clone()
	_ = w.grid.Set(x, y, base)
	w.queue = append(w.queue, grid.Position{X: x, Y: y})

	for _, d := range direction.All {
		if from != nil && d == from.Invert() {
			continue
		}

		npos, ok := w.grid.GetNeighborPosition(x, y, d)
		if !ok {
			continue
		}

		neighbour := *w.grid.Get(npos.X, npos.Y)
		liveEntropy := neighbour.Entropy()
		if liveEntropy == 1 || !neighbour.Collapsing() {
			continue
		}

		simulated := (*w.gridBase.Get(npos.X, npos.Y)).Clone()
		simulated.Tick(w.liveNeighbourIDs(npos.X, npos.Y))

		if simulated.Entropy() != liveEntropy {
			dCopy := d
			w.rollbackPropagate(npos.X, npos.Y, &dCopy)
		}
	}
}
