package harkdata

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/leafrake/problem"
	"github.com/katalvlaran/leafrake/solution"
)

// New wraps a copy of s. s must conform to m and respect MaxCluster.
//
// Errors: ErrNilModel, the structural error from solution.Conforms, or
// ErrOverCapacity naming the first overloaded hub.
// Complexity: O(n).
func New(m *problem.Model, s solution.Successor) (*State, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if err := solution.Conforms(m, s); err != nil {
		return nil, err
	}
	st := &State{
		m:     m,
		succ:  s.Clone(),
		preds: solution.Predecessors(s),
		role:  solution.Roles(s),
		acc:   solution.Accumulate(s, m.LeafQuantity),
		hub:   solution.HubOf(s),
	}
	for v, t := range st.succ {
		if t == v && st.acc[v] > m.MaxClusterCapacity() {
			return nil, fmt.Errorf("%w: hub %d carries %d > %d", ErrOverCapacity, v, st.acc[v], m.MaxClusterCapacity())
		}
	}

	return st, nil
}

// NewRandom builds a random capacity-respecting forest: starting from
// singletons, it visits every neighbor pair in shuffled order and merges the
// two clusters whenever their combined load fits.
// Complexity: O(E·(d + c)) for E neighbor pairs.
func NewRandom(m *problem.Model, rng *rand.Rand) (*State, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	st, err := New(m, solution.Singletons(m))
	if err != nil {
		return nil, err
	}

	var pairs [][2]int
	for _, v := range m.Nodes() {
		for _, u := range m.Neighbors(v) {
			if u > v {
				pairs = append(pairs, [2]int{v, u})
			}
		}
	}
	rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	for _, p := range pairs {
		a, b := p[0], p[1]
		if rng.Intn(2) == 1 {
			a, b = b, a
		}
		st.MergeClusters(a, b)
	}

	return st, nil
}

// Model returns the problem the state is defined on.
func (st *State) Model() *problem.Model { return st.m }

// Successor returns a copy of the current successor.
func (st *State) Successor() solution.Successor { return st.succ.Clone() }

// Target returns the successor of v.
func (st *State) Target(v int) int { return st.succ[v] }

// Accumulated returns the leaves raked through v.
func (st *State) Accumulated(v int) int { return st.acc[v] }

// Accumulation returns a copy of every cell's accumulated leaves.
func (st *State) Accumulation() []int { return slices.Clone(st.acc) }

// Hub returns the hub of v's cluster (solution.Blocked for blocked cells).
func (st *State) Hub(v int) int { return st.hub[v] }

// Load returns the leaves of v's whole cluster.
func (st *State) Load(v int) int { return st.acc[st.hub[v]] }

// Role returns the role tag of v.
func (st *State) Role(v int) solution.Role { return st.role[v] }

// Predecessors returns the cells raking into v, ascending. The slice must not be modified.
func (st *State) Predecessors(v int) []int { return st.preds[v] }

// Hubs returns every hub, ascending.
func (st *State) Hubs() []int {
	var hubs []int
	for v, t := range st.succ {
		if t == v {
			hubs = append(hubs, v)
		}
	}

	return hubs
}

// Clone returns an independent copy sharing only the model.
func (st *State) Clone() *State {
	preds := make([][]int, len(st.preds))
	for v, p := range st.preds {
		preds[v] = slices.Clone(p)
	}

	return &State{
		m:     st.m,
		succ:  st.succ.Clone(),
		preds: preds,
		role:  slices.Clone(st.role),
		acc:   slices.Clone(st.acc),
		hub:   slices.Clone(st.hub),
	}
}

// Verify recomputes every cache from the successor and reports the first
// disagreement wrapped in ErrInconsistent.
// Complexity: O(n).
func (st *State) Verify() error {
	if err := solution.Conforms(st.m, st.succ); err != nil {
		return err
	}
	if want := solution.Accumulate(st.succ, st.m.LeafQuantity); !slices.Equal(st.acc, want) {
		return fmt.Errorf("%w: accumulated %v, want %v", ErrInconsistent, st.acc, want)
	}
	if want := solution.HubOf(st.succ); !slices.Equal(st.hub, want) {
		return fmt.Errorf("%w: hubs %v, want %v", ErrInconsistent, st.hub, want)
	}
	if want := solution.Roles(st.succ); !slices.Equal(st.role, want) {
		return fmt.Errorf("%w: roles %v, want %v", ErrInconsistent, st.role, want)
	}
	want := solution.Predecessors(st.succ)
	for v := range want {
		if !slices.Equal(st.preds[v], want[v]) {
			return fmt.Errorf("%w: predecessors of %d %v, want %v", ErrInconsistent, v, st.preds[v], want[v])
		}
	}
	for v, t := range st.succ {
		if t == v && st.acc[v] > st.m.MaxClusterCapacity() {
			return fmt.Errorf("%w: hub %d carries %d", ErrOverCapacity, v, st.acc[v])
		}
	}

	return nil
}

func (st *State) roleOf(v int) solution.Role {
	t := st.succ[v]
	fed := len(st.preds[v]) > 0
	switch {
	case t == solution.Blocked:
		return solution.RoleNone
	case t == v && fed:
		return solution.RoleHub
	case t == v:
		return solution.RoleSingle
	case fed:
		return solution.RoleBridge
	default:
		return solution.RoleSource
	}
}
