// Package gridgraph provides utilities to treat a 2D grid of leaf quantities
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8) with weighted diagonals
//   - Row-major cell indexing shared by the whole raking core
//   - Identification of connected components of open cells
//
// Cells with value < BlockedBelow are obstacles; all other cells are open.
package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadDiagonalWeight if Conn8 is paired with a non-positive diagonal weight.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.Conn == Conn8 && !(opts.DiagonalWeight > 0) {
		return nil, ErrBadDiagonalWeight
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity.
	// Orthogonal offsets come first so that Arcs lists them first.
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		BlockedBelow:    opts.BlockedBelow,
		DiagonalWeight:  opts.DiagonalWeight,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Order returns the number of cells, open or blocked.
func (gg *GridGraph) Order() int {
	return gg.Width * gg.Height
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Value returns the raw value of the cell at idx.
func (gg *GridGraph) Value(idx int) int {
	x, y := gg.Coordinate(idx)

	return gg.CellValues[y][x]
}

// Open reports whether the cell at idx is not an obstacle.
func (gg *GridGraph) Open(idx int) bool {
	return gg.Value(idx) >= gg.BlockedBelow
}

// Arcs returns the weighted steps from idx to every open in-bounds neighbor.
// The source cell itself may be blocked; callers use that to attach
// terminals such as a shed to the open garden.
// Complexity: O(d).
func (gg *GridGraph) Arcs(idx int) []Arc {
	x, y := gg.Coordinate(idx)
	arcs := make([]Arc, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !gg.InBounds(nx, ny) || gg.CellValues[ny][nx] < gg.BlockedBelow {
			continue
		}
		w := 1.0
		if d[0] != 0 && d[1] != 0 {
			w = gg.DiagonalWeight
		}
		arcs = append(arcs, Arc{To: gg.Index(nx, ny), Weight: w})
	}

	return arcs
}
