package catalogvalidate

import (
	"sort"

	"github.com/Mechazawa/wave-function-collapse/bfs"
	"github.com/Mechazawa/wave-function-collapse/catalogue"
)

// ConnectedComponents partitions cat's prototypes into classes that are
// mutually reachable through the compatibility graph (see
// CompatibilityGraph). Components are returned in a stable order: sorted
// by their smallest member id, with each component's ids sorted ascending.
func ConnectedComponents[T any](cat *catalogue.Catalogue[T]) [][]catalogue.Identifier {
	g := CompatibilityGraph(cat)

	visited := make(map[string]bool, cat.Len())
	var components [][]catalogue.Identifier

	for _, p := range cat.Prototypes() {
		key := idKey(p.ID)
		if visited[key] {
			continue
		}

		res, err := bfs.BFS(g, key)
		if err != nil {
			panic("catalogvalidate: vertex added by CompatibilityGraph missing from graph: " + err.Error())
		}

		comp := make([]catalogue.Identifier, 0, len(res.Order))
		for _, v := range res.Order {
			visited[v] = true
			comp = append(comp, parseIDKey(v))
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		components = append(components, comp)
	}

	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })
	return components
}

// Fragmented reports whether cat's compatibility graph has more than one
// connected component, meaning at least two prototypes can never appear
// as orthogonal neighbours of each other directly or transitively.
func Fragmented[T any](cat *catalogue.Catalogue[T]) bool {
	return len(ConnectedComponents(cat)) > 1
}
