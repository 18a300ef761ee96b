// Package textrender is a terminal Observer: it prints the live grid to
// an io.Writer between ticks and logs start/progress/completion lines.
//
// Why:
//
//   - A terminal view covers the Observer contract's intent (watching the
//     solve happen) without pulling in a graphics or windowing binding.
//
// SettledRegions partitions collapsed cells into 4-connected components,
// grounded on gridgraph.ConnectedComponents' flood-fill idiom, adapted to
// a GridView instead of a [][]int.
package textrender
