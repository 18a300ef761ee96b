// Package imagetiles derives a catalogue from a bitmap by slicing it into
// a uniform grid and deduplicating tiles by exact pixel equality.
//
// What:
//
//   - BuildCatalogue slices an image.Image into gridWidth x gridHeight
//     tiles, hashes each tile's pixels to a stable Identifier, counts
//     occurrences into Prototype.Weight, and accumulates observed
//     adjacency into Prototype.Neighbours.
//
// Why:
//
//   - The catalogue is not hand-authored; it is discovered from a
//     reference image, so adjacency reflects what the image actually
//     shows rather than what an author declared.
package imagetiles
