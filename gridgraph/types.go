// Package gridgraph defines core types and options for the garden grid.
package gridgraph

import "math"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell represents a single grid cell with its coordinates and stored value.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Original grid value at (X, Y)
}

// Arc is a weighted step from one cell to an open neighbor.
type Arc struct {
	To     int     // row-major index of the neighbor
	Weight float64 // 1 for orthogonal steps, DiagonalWeight for diagonal ones
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// BlockedBelow marks cells with a value strictly below it as obstacles.
	BlockedBelow int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// DiagonalWeight is the cost of one diagonal step (Conn8 only).
	DiagonalWeight float64
}

// DefaultGridOptions returns a GridOptions with default settings:
// BlockedBelow=0 (negative leaf counts are obstacles), Conn=Conn8,
// DiagonalWeight=√2.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		BlockedBelow:   0,
		Conn:           Conn8,
		DiagonalWeight: math.Sqrt2,
	}
}

// GridGraph treats a 2D leaf grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the input leaf count.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	BlockedBelow    int
	DiagonalWeight  float64
	neighborOffsets [][2]int
}
