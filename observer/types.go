package observer

import (
	"github.com/Mechazawa/wave-function-collapse/catalogue"
	"github.com/Mechazawa/wave-function-collapse/grid"
)

// EventKind distinguishes the three notifications a driver emits over
// the lifetime of a solve.
type EventKind int

const (
	// Started fires once, before the first tick.
	Started EventKind = iota
	// Progress fires after a tick that did work.
	Progress
	// Completed fires once, after done() becomes true.
	Completed
)

// String renders the event kind's name, for logging.
func (k EventKind) String() string {
	switch k {
	case Started:
		return "started"
	case Progress:
		return "progress"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// GridView is a read-only window onto a running solve's grid. It is
// implemented by *wave.Wave[T]; observer never imports wave to avoid a
// circular dependency, so the interface is satisfied structurally.
type GridView[T any] interface {
	Width() int
	Height() int
	Remaining() int

	// At returns the prototype collapsed at (x, y), or nil if that cell
	// has not yet collapsed.
	At(x, y int) *catalogue.Prototype[T]
}

// Event is one notification delivered to an Observer.
type Event[T any] struct {
	Kind EventKind

	// Position is the cell touched by the tick that produced this event.
	// Nil for Started and Completed, and for a Progress event produced by
	// a tick that found nothing to do.
	Position *grid.Position

	View GridView[T]
}

// Observer receives solve-lifecycle notifications. Implementations must
// not mutate the grid reachable through View and must return promptly;
// a driver calls Notify synchronously between ticks.
type Observer[T any] interface {
	Notify(Event[T])
}
