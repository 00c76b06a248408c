package hubcenter

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/leafrake/dijkstra"
	"github.com/katalvlaran/leafrake/problem"
	"github.com/katalvlaran/leafrake/solution"
)

// selector picks the hub of one ascending cluster.
type selector func(c *centerer, cluster []int) (int, error)

// selectors is the strategy table; unknown strategies have no entry.
var selectors = map[Strategy]selector{
	SmallestIndex: func(_ *centerer, cl []int) (int, error) { return cl[0], nil },
	LeafMax: func(c *centerer, cl []int) (int, error) {
		return argBest(cl, func(v int) float64 { return -float64(c.m.LeafQuantity(v)) }), nil
	},
	LeafMin: func(c *centerer, cl []int) (int, error) {
		return argBest(cl, func(v int) float64 { return float64(c.m.LeafQuantity(v)) }), nil
	},
	DepotNearest: func(c *centerer, cl []int) (int, error) {
		depot := c.m.DepotNode()
		return argBest(cl, func(v int) float64 { return c.m.Distance(v, depot) }), nil
	},
	Median:   (*centerer).median,
	KeepHubs: (*centerer).keep,
}

// argBest returns the element minimizing score; the first (lowest) wins ties.
func argBest(cl []int, score func(int) float64) int {
	best, bestScore := cl[0], score(cl[0])
	for _, v := range cl[1:] {
		if s := score(v); s < bestScore {
			best, bestScore = v, s
		}
	}

	return best
}

// centerer carries the per-call state shared by the selectors.
type centerer struct {
	m       *problem.Model
	opts    Options
	inClust []int // cluster id per cell, -1 outside
}

// CenterHubs chooses a hub for every cluster with strategy and returns the
// successor that rakes each member one step along the cluster-local
// shortest-path tree rooted at its hub.
//
// clusters must partition m.Nodes(); the order of clusters and of their
// members does not affect the result.
//
// Complexity: O(k·(k+e) log k) per cluster of size k for Median, O((k+e) log k) otherwise.
func CenterHubs(m *problem.Model, clusters [][]int, strategy Strategy, opts ...Option) (solution.Successor, error) {
	pick, ok := selectors[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPolicy, strategy)
	}
	c := &centerer{m: m}
	for _, opt := range opts {
		opt(&c.opts)
	}
	if strategy == KeepHubs && c.opts.Previous == nil {
		return nil, ErrNoPrevious
	}

	sorted, err := c.index(clusters)
	if err != nil {
		return nil, err
	}

	succ := make(solution.Successor, m.Order())
	for v := range succ {
		succ[v] = solution.Blocked
	}
	for id, cl := range sorted {
		hub, err := pick(c, cl)
		if err != nil {
			return nil, err
		}
		if err = c.rake(succ, id, hub, cl); err != nil {
			return nil, err
		}
	}

	return succ, nil
}

// index checks the partition property and returns ascending copies of the clusters.
func (c *centerer) index(clusters [][]int) ([][]int, error) {
	c.inClust = make([]int, c.m.Order())
	for i := range c.inClust {
		c.inClust[i] = -1
	}
	sorted := make([][]int, 0, len(clusters))
	covered := 0
	for _, cl := range clusters {
		if len(cl) == 0 {
			continue
		}
		id := len(sorted)
		for _, v := range cl {
			if !c.m.Open(v) {
				return nil, fmt.Errorf("%w: cell %d is not open", ErrNotPartition, v)
			}
			if c.inClust[v] != -1 {
				return nil, fmt.Errorf("%w: cell %d appears twice", ErrNotPartition, v)
			}
			c.inClust[v] = id
			covered++
		}
		s := slices.Clone(cl)
		slices.Sort(s)
		sorted = append(sorted, s)
	}
	if covered != len(c.m.Nodes()) {
		return nil, fmt.Errorf("%w: %d of %d cells covered", ErrNotPartition, covered, len(c.m.Nodes()))
	}

	return sorted, nil
}

// localDistances runs Dijkstra from src restricted to cluster id.
func (c *centerer) localDistances(id, src int, withPath bool) ([]float64, []int, error) {
	opts := []dijkstra.Option{
		dijkstra.Source(src),
		dijkstra.WithAllowed(func(v int) bool { return c.inClust[v] == id }),
	}
	if withPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}

	return dijkstra.Dijkstra(c.m, opts...)
}

// rake writes the shortest-path tree of cluster id rooted at hub into succ.
func (c *centerer) rake(succ solution.Successor, id, hub int, cl []int) error {
	_, prev, err := c.localDistances(id, hub, true)
	if err != nil {
		return err
	}
	for _, v := range cl {
		if v == hub {
			succ[v] = v
			continue
		}
		path := dijkstra.PathTo(prev, hub, v)
		if path == nil {
			return fmt.Errorf("%w: cell %d cannot reach hub %d", ErrDisconnectedCluster, v, hub)
		}
		succ[v] = path[len(path)-2]
	}

	return nil
}

// median returns the member minimizing the leaf-weighted cluster-local distance sum.
func (c *centerer) median(cl []int) (int, error) {
	id := c.inClust[cl[0]]
	best, bestCost := -1, math.Inf(1)
	for _, h := range cl {
		dist, _, err := c.localDistances(id, h, false)
		if err != nil {
			return -1, err
		}
		total := 0.0
		for _, v := range cl {
			if math.IsInf(dist[v], 1) {
				return -1, fmt.Errorf("%w: cells %d and %d", ErrDisconnectedCluster, h, v)
			}
			total += float64(c.m.LeafQuantity(v)) * dist[v]
		}
		if total < bestCost {
			best, bestCost = h, total
		}
	}

	return best, nil
}

// keep returns the lowest previous hub inside the cluster, or its lowest index.
func (c *centerer) keep(cl []int) (int, error) {
	for _, v := range cl {
		if c.opts.Previous.IsHub(v) {
			return v, nil
		}
	}

	return cl[0], nil
}
