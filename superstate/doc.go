// Package superstate implements SuperState[T], the possibility set owned
// by a single grid cell.
//
// What:
//
//   - SuperState[T]: the sequence of prototypes still possible at a cell,
//     with cached base and current entropy.
//   - Tick: retains only prototypes compatible with a neighbourhood's
//     permitted-id sets, using a worker pool above a size threshold.
//   - Collapse: weighted random reduction to a single prototype, with a
//     deterministic sort-by-id pre-step so RNG state alone determines the
//     outcome.
//
// Why:
//
//   - Entropy is queried on every hot path (minimum selection, component
//     flood fill); caching it at the end of Tick/Collapse keeps those
//     paths O(1) instead of O(len(possible)).
//
// Complexity:
//
//   - Entropy/Collapsed/Collapsing: O(1).
//   - Tick: O(len(possible) * 4) sequentially, or parallelized across a
//     worker pool when len(possible) exceeds ParallelThreshold.
//   - Collapse: O(n log n) for the deterministic sort, O(n) for sampling.
package superstate
