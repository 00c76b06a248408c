// Package gridgraph treats a rectangular garden of leaf-carrying cells as a
// graph, the way the raking core needs to see it.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int of leaf quantities.
//   - Cells with value < BlockedBelow (default 0) are obstacles and never
//     take part in adjacency.
//   - Cells are addressed by a stable row-major index: y*Width + x.
//   - Arcs(idx) lists the open neighbors of a cell with their step weight:
//     1 for orthogonal steps, DiagonalWeight for diagonal steps (Conn8 only).
//   - ConnectedComponents groups open cells into contiguous regions.
//
// Why:
//
//   - Every component of the raking core (problem model, clustering, cost
//     evaluation) agrees on one indexing scheme and one adjacency relation.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H) time and memory (deep copy).
//   - Arcs:                O(d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.BlockedBelow:   values strictly below this are obstacles.
//   - GridOptions.Conn:           Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.DiagonalWeight: step weight of a diagonal move under Conn8.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadDiagonalWeight: Conn8 with a non-positive diagonal weight.
package gridgraph
