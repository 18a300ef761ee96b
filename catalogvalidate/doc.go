// Package catalogvalidate builds a compatibility graph over a catalogue's
// prototypes and uses it to flag catalogues that are structurally
// fragmented before a solver run ever begins.
//
// What:
//
//   - CompatibilityGraph: an undirected core.Graph with one vertex per
//     prototype id and one edge per pair of prototypes permitted adjacent
//     in any direction.
//   - ConnectedComponents / Fragmented: bfs.BFS-based reachability over
//     that graph, partitioning prototypes into mutually-reachable classes.
//
// Why:
//
//   - The solver core never detects unsolvable-by-exhaustion catalogues
//     itself: a catalogue whose compatibility graph has more than one
//     connected component can never tile a grid wider or taller than 1
//     using prototypes drawn from more than one class, since two
//     prototypes in different classes can never be orthogonal neighbours.
//     Surfacing that before the first tick lets a driver warn or abort
//     instead of burning a step budget on rollbacks.
//
// Built on a small undirected core.Graph and an unweighted bfs.BFS
// reachability pass, scoped to exactly the vertex/edge/traversal surface
// this diagnostic needs.
package catalogvalidate
