package problem

import (
	"math"

	"github.com/katalvlaran/leafrake/dijkstra"
	"github.com/katalvlaran/leafrake/gridgraph"
)

// Grid returns the underlying garden grid.
func (m *Model) Grid() *gridgraph.GridGraph { return m.grid }

// Params returns a copy of the construction parameters.
func (m *Model) Params() Params { return m.params }

// Order returns the number of grid cells; node indices range over 0..Order()-1.
// Order also makes Model a dijkstra.Graph.
func (m *Model) Order() int { return m.order }

// Arcs returns the weighted steps out of v (nil for blocked, non-terminal cells).
// The returned slice must not be modified.
func (m *Model) Arcs(v int) []dijkstra.Arc {
	if v < 0 || v >= m.order {
		return nil
	}

	return m.arcs[v]
}

// LeafQuantity returns the leaves on v. Negative values mark blocked cells.
func (m *Model) LeafQuantity(v int) int { return m.grid.Value(v) }

// Open reports whether v is a clustering node.
func (m *Model) Open(v int) bool { return v >= 0 && v < m.order && m.open[v] }

// Walkable reports whether the worker may stand on v.
func (m *Model) Walkable(v int) bool { return v >= 0 && v < m.order && m.walkable[v] }

// Nodes returns the open cells in ascending order. The slice must not be modified.
func (m *Model) Nodes() []int { return m.nodes }

// Neighbors returns the open neighbors of the open cell v. The slice must not be modified.
func (m *Model) Neighbors(v int) []int {
	if !m.Open(v) {
		return nil
	}

	return m.neigh[v]
}

// StepWeight returns the single-step weight from a to b and whether they are adjacent.
func (m *Model) StepWeight(a, b int) (float64, bool) {
	for _, arc := range m.Arcs(a) {
		if arc.To == b {
			return arc.Weight, true
		}
	}

	return 0, false
}

// IsNeighbor reports whether a and b are adjacent walkable cells.
func (m *Model) IsNeighbor(a, b int) bool {
	_, ok := m.StepWeight(a, b)

	return ok
}

// Distance returns the shortest walking distance from a to b (+Inf if unreachable).
func (m *Model) Distance(a, b int) float64 {
	if a < 0 || b < 0 || a >= m.order || b >= m.order {
		return math.Inf(1)
	}

	return m.dist[a*m.order+b]
}

// MaxClusterCapacity returns the leaf capacity of one cluster.
func (m *Model) MaxClusterCapacity() int { return m.params.MaxCluster }

// MaxRakeBatch returns the number of leaves one rake stroke moves.
func (m *Model) MaxRakeBatch() int { return m.params.RakeBatch }

// MaxTransportBatch returns the number of leaves hauled per depot round trip.
func (m *Model) MaxTransportBatch() int { return m.params.TransportBatch }

// DepotNode returns the index of the depot cell.
func (m *Model) DepotNode() int { return m.depot }

// StartNode returns the index of the start cell.
func (m *Model) StartNode() int { return m.start }

// CostWeights returns the cost component weights.
func (m *Model) CostWeights() Weights { return m.params.Weights }

// TotalLeaves returns the sum of leaves over all open cells.
func (m *Model) TotalLeaves() int { return m.total }

// LeafSum returns the sum of leaves over the given cells.
func (m *Model) LeafSum(cells []int) int {
	s := 0
	for _, v := range cells {
		s += m.grid.Value(v)
	}

	return s
}
