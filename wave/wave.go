package wave

import (
	"math/rand"

	"github.com/Mechazawa/wave-function-collapse/catalogue"
	"github.com/Mechazawa/wave-function-collapse/direction"
	"github.com/Mechazawa/wave-function-collapse/grid"
)

// New constructs a Wave from a grid of identical template superstates and a
// seed. grid_base is a deep clone of initial; pending starts all-none and
// the queue starts empty. The collapse history starts with an Implicit
// entry for every cell that is already at entropy 1, so a grid built from a
// single-prototype template is Done at once.
func New[T any](initial *grid.Grid[cell[T]], seed int64) (*Wave[T], error) {
	if initial.Size() == 0 {
		return nil, ErrEmptyTemplate
	}

	first := *initial.Get(0, 0)
	if first == nil || first.Entropy() == 0 {
		return nil, ErrEmptyTemplate
	}

	base := initial.Clone(func(c cell[T]) cell[T] { return c.Clone() })
	pending := grid.New(initial.Width(), initial.Height(), func(x, y int) pendingEntry { return nil })

	w := &Wave[T]{
		grid:            initial,
		gridBase:        base,
		pending:         pending,
		rng:             rand.New(rand.NewSource(seed)),
		rollbackPenalty: 1,
	}
	initial.Iterate(func(x, y int, c *cell[T]) {
		if (*c).Entropy() == 1 {
			w.collapsed = append(w.collapsed, collapseEntry{pos: grid.Position{X: x, Y: y}, reason: Implicit})
		}
	})
	return w, nil
}

// Grid returns the live grid for read-only iteration between ticks.
func (w *Wave[T]) Grid() *grid.Grid[cell[T]] { return w.grid }

// Width returns the grid's width. Satisfies observer.GridView.
func (w *Wave[T]) Width() int { return w.grid.Width() }

// Height returns the grid's height. Satisfies observer.GridView.
func (w *Wave[T]) Height() int { return w.grid.Height() }

// At returns the prototype collapsed at (x, y), or nil if that cell has
// not yet collapsed. Satisfies observer.GridView.
func (w *Wave[T]) At(x, y int) *catalogue.Prototype[T] {
	return (*w.grid.Get(x, y)).Collapsed()
}

// Remaining returns the count of cells not yet pushed onto the collapse
// history (i.e. not yet Explicit or Implicit collapsed).
func (w *Wave[T]) Remaining() int {
	return w.grid.Size() - len(w.collapsed)
}

// Done reports whether every cell has settled.
func (w *Wave[T]) Done() bool { return w.Remaining() == 0 }

// Tick drains one queued cell if any are pending, else performs one
// observation via maybeCollapse. Returns whether any work was done.
func (w *Wave[T]) Tick() bool {
	if len(w.queue) == 0 {
		return w.maybeCollapse() != nil
	}

	pos := w.dequeue()
	w.tickCell(pos)
	return true
}

// TickOnce processes one queued cell if any, else performs one observation.
// Returns the position touched, or nil if there was nothing to do.
func (w *Wave[T]) TickOnce() *grid.Position {
	if len(w.queue) > 0 {
		pos := w.dequeue()
		w.tickCell(pos)
		return &pos
	}
	return w.maybeCollapse()
}

func (w *Wave[T]) dequeue() grid.Position {
	pos := w.queue[0]
	w.queue = w.queue[1:]
	return pos
}

// tickCell is the single-cell propagation step.
func (w *Wave[T]) tickCell(pos grid.Position) {
	x, y := pos.X, pos.Y

	c := *w.grid.Get(x, y)
	if c.Entropy() == 1 {
		return
	}

	slot := w.pending.Get(x, y)
	if *slot == nil {
		n := w.liveNeighbourIDs(x, y)
		*slot = &n
	}
	neighbours := *(*slot)
	*slot = nil

	old := c.Entropy()
	c.Tick(neighbours)
	now := c.Entropy()

	if now <= 1 {
		w.collapsed = append(w.collapsed, collapseEntry{pos: pos, reason: Implicit})
	}

	if now == 0 {
		w.onContradiction()
		return
	}

	if now == old {
		return
	}

	if now > 1 && c.Collapsing() && w.allNeighboursUnperturbed(x, y) {
		w.collapseAt(pos)
	} else {
		w.mark(x, y)
	}
}

// collapseAt is the Wave-level observation: collapse the cell, record it as
// Explicit, then mark its neighbours so the choice propagates.
func (w *Wave[T]) collapseAt(pos grid.Position) {
	c := *w.grid.Get(pos.X, pos.Y)
	c.Collapse(w.rng)
	w.collapsed = append(w.collapsed, collapseEntry{pos: pos, reason: Explicit})
	w.mark(pos.X, pos.Y)
}

// mark enqueues every in-grid neighbour of (cx,cy) with the ids currently
// possible there, merging into an existing pending entry rather than
// re-enqueuing a cell that already has one outstanding.
func (w *Wave[T]) mark(cx, cy int) {
	states := (*w.grid.Get(cx, cy)).IDs()

	for _, d := range direction.All {
		npos, ok := w.grid.GetNeighborPosition(cx, cy, d)
		if !ok {
			continue
		}

		inv := d.Invert()
		slot := w.pending.Get(npos.X, npos.Y)
		if *slot == nil {
			var n direction.Neighbors[catalogue.IDSet]
			n.Set(inv, states)
			*slot = &n
			w.queue = append(w.queue, npos)
		} else {
			(*slot).Set(inv, states)
		}
	}
}

// liveNeighbourIDs computes, for each direction, the set of ids currently
// possible at the neighbour in that direction, or the empty set at a grid
// edge.
func (w *Wave[T]) liveNeighbourIDs(x, y int) direction.Neighbors[catalogue.IDSet] {
	var out direction.Neighbors[catalogue.IDSet]
	for _, d := range direction.All {
		npos, ok := w.grid.GetNeighborPosition(x, y, d)
		if !ok {
			out.Set(d, catalogue.IDSet{})
			continue
		}
		out.Set(d, (*w.grid.Get(npos.X, npos.Y)).IDs())
	}
	return out
}

// allNeighboursUnperturbed reports whether every in-grid neighbour of
// (x,y) has Collapsing() == false.
func (w *Wave[T]) allNeighboursUnperturbed(x, y int) bool {
	for _, d := range direction.All {
		npos, ok := w.grid.GetNeighborPosition(x, y, d)
		if !ok {
			continue
		}
		if (*w.grid.Get(npos.X, npos.Y)).Collapsing() {
			return false
		}
	}
	return true
}
