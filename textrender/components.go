package textrender

import (
	"github.com/Mechazawa/wave-function-collapse/direction"
	"github.com/Mechazawa/wave-function-collapse/grid"
	"github.com/Mechazawa/wave-function-collapse/observer"
)

// SettledRegions partitions every collapsed cell in view into 4-connected
// components. A driver can use the component count and sizes as a stuck
// diagnostic: many small settled islands separated by still-undecided
// cells suggest the solve is thrashing in a constrained region.
//
// Complexity: O(width * height).
func SettledRegions[T any](view observer.GridView[T]) [][]grid.Position {
	w, h := view.Width(), view.Height()
	visited := make([]bool, w*h)
	idx := func(x, y int) int { return y*w + x }

	var components [][]grid.Position
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited[idx(x, y)] || view.At(x, y) == nil {
				continue
			}

			queue := []grid.Position{{X: x, Y: y}}
			visited[idx(x, y)] = true
			var comp []grid.Position

			for qi := 0; qi < len(queue); qi++ {
				pos := queue[qi]
				comp = append(comp, pos)

				for _, d := range direction.All {
					dx, dy := d.Offset()
					nx, ny := pos.X+dx, pos.Y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					if visited[idx(nx, ny)] || view.At(nx, ny) == nil {
						continue
					}
					visited[idx(nx, ny)] = true
					queue = append(queue, grid.Position{X: nx, Y: ny})
				}
			}

			components = append(components, comp)
		}
	}

	return components
}
