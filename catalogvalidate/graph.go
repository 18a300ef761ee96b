package catalogvalidate

import (
	"strconv"

	"github.com/Mechazawa/wave-function-collapse/catalogue"
	"github.com/Mechazawa/wave-function-collapse/core"
	"github.com/Mechazawa/wave-function-collapse/direction"
)

// CompatibilityGraph builds an undirected core.Graph with one vertex per
// prototype id in cat and one edge between every pair of distinct
// prototypes permitted adjacent to each other in any direction.
//
// Complexity: O(n * d * k) where n is the prototype count, d = direction.Count
// and k is the average neighbour-set size.
func CompatibilityGraph[T any](cat *catalogue.Catalogue[T]) *core.Graph {
	g := core.NewGraph()

	for _, p := range cat.Prototypes() {
		_ = g.AddVertex(idKey(p.ID))
	}

	seen := make(map[[2]catalogue.Identifier]bool)
	for _, p := range cat.Prototypes() {
		for _, d := range direction.All {
			for other := range p.Neighbours.Get(d) {
				if other == p.ID || cat.Lookup(other) == nil {
					continue
				}
				key := orderedPair(p.ID, other)
				if seen[key] {
					continue
				}
				seen[key] = true
				_, _ = g.AddEdge(idKey(p.ID), idKey(other), 0)
			}
		}
	}

	return g
}

func idKey(id catalogue.Identifier) string {
	return strconv.FormatUint(uint64(id), 10)
}

func parseIDKey(key string) catalogue.Identifier {
	v, _ := strconv.ParseUint(key, 10, 64)
	return catalogue.Identifier(v)
}

func orderedPair(a, b catalogue.Identifier) [2]catalogue.Identifier {
	if a <= b {
		return [2]catalogue.Identifier{a, b}
	}
	return [2]catalogue.Identifier{b, a}
}
