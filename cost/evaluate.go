package cost

import (
	"fmt"

	"github.com/katalvlaran/leafrake/problem"
	"github.com/katalvlaran/leafrake/solution"
)

// ceilDiv returns ⌈a/b⌉ for a ≥ 0, b > 0.
func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}

	return (a + b - 1) / b
}

// violation applies policy; it returns done=true when evaluation must stop.
func violation(policy ViolationPolicy, node, load, capacity int) (Breakdown, bool, error) {
	switch policy {
	case Infinite:
		return Inf(), true, nil
	case Ignore:
		return Breakdown{}, false, nil
	default:
		return Breakdown{}, true, &CapacityError{Node: node, Load: load, Capacity: capacity}
	}
}

// Evaluate runs the full raking simulation of s on m.
//
// Errors: ErrUnsupportedPolicy, a solution structural error when s does not
// conform to m, or a *CapacityError under Throw.
// Complexity: O(S·S + n) for S sources (nearest-source scan) and n cells.
func Evaluate(m *problem.Model, s solution.Successor, policy ViolationPolicy) (Breakdown, error) {
	if !policy.valid() {
		return Breakdown{}, fmt.Errorf("%w: %v", ErrUnsupportedPolicy, policy)
	}
	if err := solution.Conforms(m, s); err != nil {
		return Breakdown{}, err
	}

	w := m.CostWeights()
	capacity := m.MaxClusterCapacity()
	batch := m.MaxRakeBatch()

	acc := make([]int, len(s))
	for _, v := range m.Nodes() {
		acc[v] = m.LeafQuantity(v)
	}
	sources := solution.HubsAndSources(s).Sources
	done := make([]bool, len(sources))

	var b Breakdown
	pos := m.DepotNode()
	for range sources {
		// Nearest unprocessed source; sources are ascending so ties go low.
		next := -1
		for i, src := range sources {
			if !done[i] && (next == -1 || m.Distance(pos, src) < m.Distance(pos, sources[next])) {
				next = i
			}
		}
		done[next] = true
		cur := sources[next]
		b.Walk += m.Distance(pos, cur) * w.Walk

		// A one-cell cluster keeps its leaves on the hub for transport.
		moved := acc[cur]
		if s[cur] != cur {
			acc[cur] = 0
		}
		for s[cur] != cur {
			nxt := s[cur]
			d := m.Distance(cur, nxt)
			b.Rake += float64(ceilDiv(moved, batch)) * w.Rake * d
			b.Walk += d * w.Walk
			acc[nxt] += moved
			if acc[nxt] > capacity {
				if out, stop, err := violation(policy, nxt, acc[nxt], capacity); stop {
					return out, err
				}
			}
			cur = nxt
			if s[cur] != cur {
				moved = acc[cur]
				acc[cur] = 0
			}
		}
		pos = cur
	}

	start, depot := m.StartNode(), m.DepotNode()
	b.Walk += m.Distance(pos, start)*w.Walk + 2*m.Distance(start, depot)*w.Walk

	for v, t := range s {
		if t == v {
			b.Transport += float64(ceilDiv(acc[v], m.MaxTransportBatch())) * 2 * m.Distance(v, depot) * w.Transport
		}
	}
	b.Total = b.Rake + b.Walk + b.Transport

	return b, nil
}

// EvaluateCheap scores s without the walk term: each hop is charged once with
// the full load that passes through it. Capacity is checked per hub.
// Complexity: O(n).
func EvaluateCheap(m *problem.Model, s solution.Successor, policy ViolationPolicy) (Breakdown, error) {
	if !policy.valid() {
		return Breakdown{}, fmt.Errorf("%w: %v", ErrUnsupportedPolicy, policy)
	}
	if err := solution.Conforms(m, s); err != nil {
		return Breakdown{}, err
	}

	return cheap(m, s, solution.Accumulate(s, m.LeafQuantity), policy)
}

// EvaluateCheapWith is EvaluateCheap for callers that already maintain the
// accumulated loads (e.g. an incremental search state). acc must equal
// solution.Accumulate(s, m.LeafQuantity); s must conform to m.
func EvaluateCheapWith(m *problem.Model, s solution.Successor, acc []int, policy ViolationPolicy) (Breakdown, error) {
	if !policy.valid() {
		return Breakdown{}, fmt.Errorf("%w: %v", ErrUnsupportedPolicy, policy)
	}

	return cheap(m, s, acc, policy)
}

func cheap(m *problem.Model, s solution.Successor, acc []int, policy ViolationPolicy) (Breakdown, error) {
	w := m.CostWeights()
	capacity := m.MaxClusterCapacity()
	depot := m.DepotNode()

	var b Breakdown
	for v, t := range s {
		switch {
		case t == solution.Blocked:
		case t == v:
			if acc[v] > capacity {
				if out, stop, err := violation(policy, v, acc[v], capacity); stop {
					return out, err
				}
			}
			b.Transport += float64(ceilDiv(acc[v], m.MaxTransportBatch())) * 2 * m.Distance(v, depot) * w.Transport
		default:
			b.Rake += float64(ceilDiv(acc[v], m.MaxRakeBatch())) * w.Rake * m.Distance(v, t)
		}
	}
	b.Total = b.Rake + b.Transport

	return b, nil
}
