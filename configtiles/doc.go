// Package configtiles derives a catalogue from a JSON adjacency
// description instead of inferring adjacency from a reference image.
//
// What:
//
//   - Entry: one `{image, slots}` record naming an image and its four
//     edge-matching slot strings.
//   - ParseEntries: decodes a JSON array of Entry.
//   - BuildCatalogue: loads each entry's image and derives neighbour sets
//     from slot-string matching rather than observed adjacency.
//
// Why:
//
//   - Lets an author hand-describe which tile edges key into which,
//     instead of relying on a reference image large enough to exhibit
//     every valid adjacency.
//
// Slot matching: prototype a admits prototype b in direction d iff
// a.Slots[d] == reverse(b.Slots[d.Invert()]). Identifiers are a hash of
// the image's encoded bytes; weights default to 1.
package configtiles
