package problem

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/leafrake/dijkstra"
	"github.com/katalvlaran/leafrake/gridgraph"
)

// Model is the read-only problem description consumed by the raking core.
type Model struct {
	grid     *gridgraph.GridGraph
	params   Params
	order    int
	open     []bool           // open[v]: v is a clustering node
	walkable []bool           // walkable[v]: open or shed terminal
	nodes    []int            // open cells, ascending
	arcs     [][]dijkstra.Arc // weighted steps between walkable cells
	neigh    [][]int          // open neighbors of open cells
	dist     []float64        // order×order shortest-path table, row-major
	depot    int
	start    int
	total    int
}

// New validates params against grid and precomputes adjacency and distances.
//
// Steps:
//  1. Validate capacities, weights and terminal coordinates.
//  2. Mark open cells and shed terminals as walkable; build the arc lists.
//  3. Without shed terminals, reject grids whose open cells form several regions.
//  4. Run Dijkstra from every walkable cell into a dense distance table.
//  5. Check that every open cell and the start are reachable from the depot.
//
// Complexity: O(V·(V+E) log V) time, O(V²) memory for the distance table.
func New(grid *gridgraph.GridGraph, params Params) (*Model, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if params.MaxCluster <= 0 || params.RakeBatch <= 0 || params.TransportBatch <= 0 {
		return nil, fmt.Errorf("%w: max_cluster=%d rake_batch=%d transport_batch=%d",
			ErrBadCapacity, params.MaxCluster, params.RakeBatch, params.TransportBatch)
	}
	if !validWeight(params.Weights.Rake) || !validWeight(params.Weights.Walk) || !validWeight(params.Weights.Transport) {
		return nil, fmt.Errorf("%w: %+v", ErrBadWeights, params.Weights)
	}

	m := &Model{
		grid:     grid,
		params:   params,
		order:    grid.Order(),
		open:     make([]bool, grid.Order()),
		walkable: make([]bool, grid.Order()),
	}
	m.params.Shed = slices.Clone(params.Shed)

	for v := 0; v < m.order; v++ {
		if grid.Open(v) {
			m.open[v] = true
			m.walkable[v] = true
			m.nodes = append(m.nodes, v)
			m.total += grid.Value(v)
			if grid.Value(v) > params.MaxCluster {
				return nil, fmt.Errorf("%w: cell %d holds %d > %d", ErrLeafExceedsCapacity, v, grid.Value(v), params.MaxCluster)
			}
		}
	}
	if len(m.nodes) == 0 {
		return nil, ErrNoNodes
	}

	shed := make(map[int]bool, len(params.Shed))
	for _, c := range params.Shed {
		if !grid.InBounds(c.X, c.Y) {
			return nil, fmt.Errorf("%w: shed cell %+v", ErrOutOfBounds, c)
		}
		shed[grid.Index(c.X, c.Y)] = true
	}

	var err error
	if m.depot, err = m.terminal("depot", params.Depot, shed); err != nil {
		return nil, err
	}
	if m.start, err = m.terminal("start", params.Start, shed); err != nil {
		return nil, err
	}

	m.buildArcs()
	for _, t := range []int{m.depot, m.start} {
		if len(m.arcs[t]) == 0 && !(m.open[t] && len(m.nodes) == 1) {
			return nil, fmt.Errorf("%w: cell %d", ErrIsolatedTerminal, t)
		}
	}

	if len(shed) == 0 {
		if err = m.connected(); err != nil {
			return nil, err
		}
	}
	if err = m.buildDistances(); err != nil {
		return nil, err
	}

	for v := 0; v < m.order; v++ {
		if m.walkable[v] && math.IsInf(m.Distance(m.depot, v), 1) {
			return nil, fmt.Errorf("%w: cell %d", ErrUnreachable, v)
		}
	}

	return m, nil
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 1)
}

// terminal resolves and validates the depot or start cell.
func (m *Model) terminal(name string, c Cell, shed map[int]bool) (int, error) {
	if !m.grid.InBounds(c.X, c.Y) {
		return -1, fmt.Errorf("%w: %s %+v", ErrOutOfBounds, name, c)
	}
	idx := m.grid.Index(c.X, c.Y)
	if m.open[idx] {
		return idx, nil
	}
	if !shed[idx] {
		return -1, fmt.Errorf("%w: %s %+v", ErrBlockedTerminal, name, c)
	}
	m.walkable[idx] = true

	return idx, nil
}

// connected fails fast when the open cells split into several regions.
// Without shed terminals every walk stays on open cells, so any region
// other than the depot's is unreachable. Regions come in order of their
// smallest cell, which is also their first element.
func (m *Model) connected() error {
	for _, comp := range m.grid.ConnectedComponents() {
		if !slices.Contains(comp, m.depot) {
			return fmt.Errorf("%w: cell %d", ErrUnreachable, comp[0])
		}
	}

	return nil
}

// buildArcs wires every walkable cell to its walkable neighbors.
// Grid arcs only point at open cells, so arcs into shed terminals are added
// by reversing the terminal's own arcs.
func (m *Model) buildArcs() {
	m.arcs = make([][]dijkstra.Arc, m.order)
	m.neigh = make([][]int, m.order)
	for v := 0; v < m.order; v++ {
		if !m.walkable[v] {
			continue
		}
		for _, a := range m.grid.Arcs(v) {
			m.arcs[v] = append(m.arcs[v], dijkstra.Arc{To: a.To, Weight: a.Weight})
			if m.open[v] {
				m.neigh[v] = append(m.neigh[v], a.To)
			}
		}
	}
	for v := 0; v < m.order; v++ {
		if !m.walkable[v] || m.open[v] {
			continue
		}
		for _, a := range m.grid.Arcs(v) {
			m.arcs[a.To] = append(m.arcs[a.To], dijkstra.Arc{To: v, Weight: a.Weight})
		}
	}
}

// buildDistances fills the dense all-pairs table, one Dijkstra run per walkable cell.
func (m *Model) buildDistances() error {
	inf := math.Inf(1)
	m.dist = make([]float64, m.order*m.order)
	for i := range m.dist {
		m.dist[i] = inf
	}
	for s := 0; s < m.order; s++ {
		if !m.walkable[s] {
			continue
		}
		row, _, err := dijkstra.Dijkstra(m, dijkstra.Source(s))
		if err != nil {
			return fmt.Errorf("problem: distances from %d: %w", s, err)
		}
		copy(m.dist[s*m.order:(s+1)*m.order], row)
	}

	return nil
}

// FromRows builds the grid from raw rows and then the Model in one step.
func FromRows(rows [][]int, opts gridgraph.GridOptions, params Params) (*Model, error) {
	grid, err := gridgraph.NewGridGraph(rows, opts)
	if err != nil {
		return nil, err
	}

	return New(grid, params)
}
