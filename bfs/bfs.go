// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// Determinism: core.Graph.NeighborIDs returns neighbors sorted
// lexicographically ascending, and BFS enqueues them in that order, so the
// visit sequence is fully reproducible for a given graph and start vertex.
package bfs

import (
	"errors"

	"github.com/Mechazawa/wave-function-collapse/core"
)

// ErrGraphNil is returned when BFS is called with a nil graph.
var ErrGraphNil = errors.New("bfs: graph is nil")

// ErrStartVertexNotFound is returned when the start vertex does not exist
// in the graph.
var ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

// ErrWeightedGraph is returned when BFS is run on a weighted graph.
var ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

// BFSResult holds the outcome of a single breadth-first traversal.
type BFSResult struct {
	// Order is the sequence in which vertices were visited.
	Order []string

	// Depth maps each visited vertex to its distance, in edges, from the
	// start vertex.
	Depth map[string]int

	// Parent maps each visited vertex (other than the start vertex) to its
	// predecessor in the BFS tree.
	Parent map[string]string
}

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for the start vertex
}

// BFS runs breadth-first search on g starting from startID, visiting
// neighbors in the order core.Graph.NeighborIDs returns them.
//
// Returns ErrGraphNil if g is nil, ErrStartVertexNotFound if startID is not
// a vertex of g, or ErrWeightedGraph if g was constructed with
// core.WithWeighted.
func BFS(g *core.Graph, startID string) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := len(g.Vertices())
	res := &BFSResult{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	visited := make(map[string]bool, n)
	queue := make([]queueItem, 0, n)

	enqueue := func(id string, depth int, parent string) {
		visited[id] = true
		res.Depth[id] = depth
		if parent != "" {
			res.Parent[id] = parent
		}
		queue = append(queue, queueItem{id: id, depth: depth, parent: parent})
	}

	enqueue(startID, 0, "")
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.id)

		neighbors, err := g.NeighborIDs(item.id)
		if err != nil {
			return nil, err
		}
		for _, nbr := range neighbors {
			if !visited[nbr] {
				enqueue(nbr, item.depth+1, item.id)
			}
		}
	}

	return res, nil
}
