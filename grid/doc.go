// Package grid provides Grid[T], a rectangular, row-major container with
// directional neighbor lookup. It performs no wrapping and no unchecked
// access; every coordinate-taking operation reports out-of-range access
// instead of panicking.
//
// What:
//
//   - Grid[T]: fixed-size W×H storage, row-major, cloneable when T is.
//   - Neighbor lookup by direction.Direction, with grid edges reported as
//     "no neighbor" rather than wrapping toroidally.
//
// Why:
//
//   - Both the catalogue-independent solver state (superstate.SuperState)
//     and the wave's propagation bookkeeping are grids of the same shape;
//     a single generic container keeps their indexing identical.
//
// Complexity:
//
//   - Get/Set/Replace/GetNeighbor: O(1).
//   - New/Clone/ResetToDefault/iteration: O(W×H).
package grid
