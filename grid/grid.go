package grid

import "github.com/Mechazawa/wave-function-collapse/direction"

// New constructs a width x height Grid, filling each cell by calling init
// with that cell's coordinates, in row-major order. Both dimensions must
// be at least 1.
//
// Complexity: O(width*height).
func New[T any](width, height int, init func(x, y int) T) *Grid[T] {
	if width < 1 || height < 1 {
		panic("grid: width and height must be at least 1")
	}

	data := make([]T, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			data[y*width+x] = init(x, y)
		}
	}

	return &Grid[T]{width: width, height: height, data: data}
}

// Width returns the grid's width.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the grid's height.
func (g *Grid[T]) Height() int { return g.height }

// Size returns width*height, the total cell count.
func (g *Grid[T]) Size() int { return g.width * g.height }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid[T]) index(x, y int) int {
	return y*g.width + x
}

// Get returns a pointer to the cell at (x,y), or nil if out of range.
// The pointer aliases the grid's backing storage; mutate through it to
// update the cell in place.
//
// Complexity: O(1).
func (g *Grid[T]) Get(x, y int) *T {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.data[g.index(x, y)]
}

// Replace overwrites the cell at (x,y) with value, returning the previous
// value and true, or the zero value and false if out of range.
//
// Complexity: O(1).
func (g *Grid[T]) Replace(x, y int, value T) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	idx := g.index(x, y)
	old := g.data[idx]
	g.data[idx] = value
	return old, true
}

// Set overwrites the cell at (x,y) with value. Returns ErrOutOfBounds if
// the coordinates are invalid.
//
// Complexity: O(1).
func (g *Grid[T]) Set(x, y int, value T) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	g.data[g.index(x, y)] = value
	return nil
}

// GetNeighborPosition returns the position adjacent to (x,y) in direction
// d, or false if that direction leaves the grid. There is no wrapping.
func (g *Grid[T]) GetNeighborPosition(x, y int, d direction.Direction) (Position, bool) {
	dx, dy := d.Offset()
	nx, ny := x+dx, y+dy
	if !g.InBounds(nx, ny) {
		return Position{}, false
	}
	return Position{X: nx, Y: ny}, true
}

// GetNeighbor returns a pointer to the cell adjacent to (x,y) in direction
// d, or nil if that direction leaves the grid.
func (g *Grid[T]) GetNeighbor(x, y int, d direction.Direction) *T {
	pos, ok := g.GetNeighborPosition(x, y, d)
	if !ok {
		return nil
	}
	return g.Get(pos.X, pos.Y)
}

// GetNeighbors returns pointers to all four neighbors of (x,y), with nil
// in directions that leave the grid.
func (g *Grid[T]) GetNeighbors(x, y int) direction.Neighbors[*T] {
	var out direction.Neighbors[*T]
	for _, d := range direction.All {
		out.Set(d, g.GetNeighbor(x, y, d))
	}
	return out
}

// GetNeighborPositions returns the neighboring positions of (x,y), with ok
// false in directions that leave the grid.
func (g *Grid[T]) GetNeighborPositions(x, y int) direction.Neighbors[PositionOpt] {
	var out direction.Neighbors[PositionOpt]
	for _, d := range direction.All {
		pos, ok := g.GetNeighborPosition(x, y, d)
		out.Set(d, PositionOpt{Position: pos, OK: ok})
	}
	return out
}

// PositionOpt is a Position paired with a validity flag, standing in for
// an optional position since Go has no native Option type.
type PositionOpt struct {
	Position Position
	OK       bool
}

// Iterate calls fn for every cell in row-major order: (0,0), (1,0), ...,
// (width-1,0), (0,1), ...
func (g *Grid[T]) Iterate(fn func(x, y int, cell *T)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, &g.data[g.index(x, y)])
		}
	}
}

// ResetToDefault overwrites every cell with the zero value of T, without
// reallocating the backing storage.
func (g *Grid[T]) ResetToDefault() {
	var zero T
	for i := range g.data {
		g.data[i] = zero
	}
}

// Clone returns a deep copy, using cloneCell to copy each element. Pass a
// function that performs whatever depth of copy T requires (for a value
// type, simple assignment suffices).
func (g *Grid[T]) Clone(cloneCell func(T) T) *Grid[T] {
	data := make([]T, len(g.data))
	for i, v := range g.data {
		data[i] = cloneCell(v)
	}
	return &Grid[T]{width: g.width, height: g.height, data: data}
}
