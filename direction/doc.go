// Package direction defines the four orthogonal cardinal directions used
// throughout the wave function collapse solver, plus Neighbors[T], a
// fixed-size four-way map keyed by Direction.
//
// What:
//
//   - Direction: Up, Right, Down, Left, with an involutive Invert.
//   - Neighbors[T]: a [4]T array addressed by Direction, avoiding the
//     hashing cost of a map for a lookup that only ever has four keys.
//
// Why:
//
//   - Every per-direction set in the catalogue, superstate, and wave
//     packages is indexed the same way; centralizing it here keeps the
//     indexing scheme (and the invert table) in one place.
//
// Complexity:
//
//   - All operations are O(1).
package direction
