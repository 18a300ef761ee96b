// Package catalogue holds the tile / adjacency model: Prototype and
// Catalogue. The core solver consumes a Catalogue and never interprets a
// Prototype's payload.
//
// What:
//
//   - Identifier: an opaque, totally-ordered, hashable value (uint64).
//   - Prototype[T]: an immutable tile with a weight and, per direction,
//     the set of prototype IDs permitted on that side.
//   - Catalogue[T]: the full collection, indexed by Identifier.
//
// Why:
//
//   - Keeping the adjacency model immutable and shared (via pointers) lets
//     every cell's SuperState reference the same Prototype values without
//     copying payloads.
//
// Invariants:
//
//   - Every Prototype.Weight is >= 1 (NewCatalogue rejects otherwise).
//   - Identifiers are unique within a Catalogue.
//   - Adjacency symmetry: if b is in a.Neighbours[d], then a is in
//     b.Neighbours[d.Invert()]. CheckSymmetry reports violations;
//     construction does not enforce this automatically, so callers that
//     cannot guarantee it from their builder should call CheckSymmetry.
//
// Errors:
//
//   - ErrEmptyCatalogue: no prototypes supplied.
//   - ErrDuplicateID: two prototypes share an Identifier.
//   - ErrBadWeight: a prototype's weight is < 1.
package catalogue
