// Package observer defines the contract a solver driver uses to notify
// external renderers of solve progress, and a read-only view over a
// running Wave's grid.
//
// What:
//
//   - EventKind: Started, Progress, Completed.
//   - Event: one notification, carrying the triggering position (if any)
//     and a snapshot-free read-only GridView.
//   - Observer: the interface implementations satisfy to receive events.
//   - Func: an adapter letting a plain function satisfy Observer, the same
//     functional-adapter shape used for single-method interfaces elsewhere
//     in this codebase.
//
// Why:
//
//   - The solver core never writes to stdout/stderr or opens a socket; it
//     only exposes state. A driver wraps a Wave and fans events out to
//     zero or more Observers (textrender, liveobserver, both, or neither).
package observer
