package wave

import (
	"sort"

	"github.com/Mechazawa/wave-function-collapse/direction"
	"github.com/Mechazawa/wave-function-collapse/grid"
)

// maybeCollapse selects and observes one cell: among the connected
// components of uncollapsed cells (4-connectivity, no wrap), it restricts
// attention to the smallest component, then picks uniformly at random
// among the cells achieving the minimum entropy greater than 1 within it.
// Returns the observed position, or nil if every cell is already at
// entropy <= 1.
func (w *Wave[T]) maybeCollapse() *grid.Position {
	components := w.uncollapsedComponents()
	if len(components) == 0 {
		return nil
	}

	sort.Slice(components, func(i, j int) bool { return len(components[i]) < len(components[j]) })
	smallest := components[0]

	minEntropy := -1
	var candidates []grid.Position
	for _, pos := range smallest {
		e := (*w.grid.Get(pos.X, pos.Y)).Entropy()
		if e <= 1 {
			continue
		}
		if minEntropy == -1 || e < minEntropy {
			minEntropy = e
			candidates = candidates[:0]
			candidates = append(candidates, pos)
		} else if e == minEntropy {
			candidates = append(candidates, pos)
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	chosen := candidates[w.rng.Intn(len(candidates))]
	w.collapseAt(chosen)
	return &chosen
}

// uncollapsedComponents partitions cells with entropy > 1 into connected
// components under 4-connectivity, via flood fill over a visited mask.
//
// Complexity: O(width*height*4).
func (w *Wave[T]) uncollapsedComponents() [][]grid.Position {
	width, height := w.grid.Width(), w.grid.Height()
	visited := make([]bool, width*height)
	index := func(x, y int) int { return y*width + x }

	var components [][]grid.Position

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if visited[index(x, y)] {
				continue
			}
			if (*w.grid.Get(x, y)).Entropy() <= 1 {
				visited[index(x, y)] = true
				continue
			}

			queue := []grid.Position{{X: x, Y: y}}
			visited[index(x, y)] = true
			var comp []grid.Position

			for qi := 0; qi < len(queue); qi++ {
				p := queue[qi]
				comp = append(comp, p)

				for _, d := range direction.All {
					npos, ok := w.grid.GetNeighborPosition(p.X, p.Y, d)
					if !ok {
						continue
					}
					ni := index(npos.X, npos.Y)
					if visited[ni] {
						continue
					}
					visited[ni] = true
					if (*w.grid.Get(npos.X, npos.Y)).Entropy() <= 1 {
						continue
					}
					queue = append(queue, npos)
				}
			}

			components = append(components, comp)
		}
	}

	return components
}
