package greedy

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/leafrake/hubcenter"
	"github.com/katalvlaran/leafrake/problem"
	"github.com/katalvlaran/leafrake/solution"
)

// order is a total order on cells; negative means a comes first.
type order func(a, b int) int

// orders is the policy table. Each entry breaks ties on the lower index.
var orders = map[Selection]func(m *problem.Model) order{
	NW: func(*problem.Model) order { return cmp.Compare[int] },
	LeafMax: func(m *problem.Model) order {
		return func(a, b int) int {
			return cmp.Or(cmp.Compare(m.LeafQuantity(b), m.LeafQuantity(a)), cmp.Compare(a, b))
		}
	},
	LeafMin: func(m *problem.Model) order {
		return func(a, b int) int {
			return cmp.Or(cmp.Compare(m.LeafQuantity(a), m.LeafQuantity(b)), cmp.Compare(a, b))
		}
	},
	DepotNearest: func(m *problem.Model) order {
		d := m.DepotNode()
		return func(a, b int) int {
			return cmp.Or(cmp.Compare(m.Distance(a, d), m.Distance(b, d)), cmp.Compare(a, b))
		}
	},
}

// Clusters runs the simultaneous cluster algorithm and returns the resulting
// partition of m.Nodes(). Every cluster is connected and within capacity.
//
// Complexity: O(n log n + n·d log d), d = neighbors per cell; consolidation
// adds O(k·n·d) for k clusters.
func Clusters(m *problem.Model, opts ...Option) ([][]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return clusters(m, cfg)
}

// Build runs Clusters and centers the hubs with the configured strategy.
func Build(m *problem.Model, opts ...Option) (solution.Successor, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	parts, err := clusters(m, cfg)
	if err != nil {
		return nil, err
	}

	return hubcenter.CenterHubs(m, parts, cfg.Hub)
}

func clusters(m *problem.Model, cfg Options) ([][]int, error) {
	assignBy, ok := orders[cfg.Assignment]
	if !ok {
		return nil, fmt.Errorf("%w: assignment %v", ErrUnsupportedPolicy, cfg.Assignment)
	}
	contactBy, ok := orders[cfg.Contact]
	if !ok {
		return nil, fmt.Errorf("%w: contact %v", ErrUnsupportedPolicy, cfg.Contact)
	}
	assign, contact := assignBy(m), contactBy(m)

	a := newArena(m.Order(), m.MaxClusterCapacity(), m.LeafQuantity)

	candidates := slices.Clone(m.Nodes())
	slices.SortFunc(candidates, assign)

	for _, cand := range candidates {
		if a.assigned(cand) {
			continue
		}
		linked := false
		for _, c := range contacts(m, a, contact, cand) {
			if a.link(cand, c) {
				linked = true
				break
			}
		}
		if !linked {
			a.open(cand)
		}
	}

	if cfg.Consolidate {
		consolidate(m, a, contact)
	}

	return a.partition(), nil
}

// contacts lists the neighbors of v: unassigned ones first, then assigned
// ones, each group in contact order.
func contacts(m *problem.Model, a *arena, by order, v int) []int {
	var free, taken []int
	for _, u := range m.Neighbors(v) {
		if a.assigned(u) {
			taken = append(taken, u)
		} else {
			free = append(free, u)
		}
	}
	slices.SortFunc(free, by)
	slices.SortFunc(taken, by)

	return append(free, taken...)
}

// consolidate merges neighboring clusters while capacity allows. Clusters are
// visited in id order and the scan restarts after every merge.
func consolidate(m *problem.Model, a *arena, by order) {
	for merged := true; merged; {
		merged = false
	scan:
		for id := range a.members {
			if !a.live[id] {
				continue
			}
			cells := slices.Clone(a.members[id])
			slices.SortFunc(cells, by)
			for _, v := range cells {
				for _, u := range contacts(m, a, by, v) {
					if a.of[u] != id && a.link(v, u) {
						merged = true
						break scan
					}
				}
			}
		}
	}
}
