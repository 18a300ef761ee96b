package liveobserver

import (
	"github.com/Mechazawa/wave-function-collapse/catalogue"
	"github.com/Mechazawa/wave-function-collapse/observer"
)

// CellSnapshot is one cell's state at the instant a Snapshot was taken.
type CellSnapshot struct {
	X int `json:"x"`
	Y int `json:"y"`
	// ID is the collapsed prototype's identifier, or nil if the cell has
	// not yet collapsed.
	ID *catalogue.Identifier `json:"id,omitempty"`
}

// Snapshot is a JSON-serializable view of the grid, sent verbatim to
// browser clients over the websocket.
type Snapshot struct {
	Kind      string         `json:"kind"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Remaining int            `json:"remaining"`
	Cells     []CellSnapshot `json:"cells"`
}

// BuildSnapshot renders view into a Snapshot.
func BuildSnapshot[T any](kind string, view observer.GridView[T]) Snapshot {
	w, h := view.Width(), view.Height()
	cells := make([]CellSnapshot, 0, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := view.At(x, y)
			if p == nil {
				continue
			}
			id := p.ID
			cells = append(cells, CellSnapshot{X: x, Y: y, ID: &id})
		}
	}

	return Snapshot{Kind: kind, Width: w, Height: h, Remaining: view.Remaining(), Cells: cells}
}
