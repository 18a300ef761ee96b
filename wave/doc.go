// Package wave implements the propagation engine: a single-threaded,
// synchronous solver that drives a grid of superstate.SuperState cells to
// full collapse through alternating propagation and observation.
//
// What:
//
//   - Wave[T]: owns grid, a frozen grid_base snapshot, a propagation
//     queue/pending pair, the collapse history stack, and the RNG.
//   - Tick / TickOnce: drain the queue one cell at a time, falling back to
//     an observation (maybe_collapse) once the queue runs dry.
//   - Rollback and reset: adaptive recovery when a cell's possibility set
//     collapses to zero (a contradiction).
//
// Why:
//
//   - Splitting propagation (constraint-only, no choice) from observation
//     (weighted random choice) keeps the algorithm's only source of
//     nondeterminism isolated to one call site, which is what makes the
//     whole solver replayable from (seed, catalogue, grid size) alone.
//
// Concurrency:
//
//   - Wave itself is single-threaded and synchronous; all mutation goes
//     through &Wave. The only concurrency in the solver lives one layer
//     down, inside superstate.SuperState.Tick's optional worker pool.
package wave
