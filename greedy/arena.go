package greedy

import "slices"

// arena stores clusters under stable ids. A merged-away cluster stays in
// place with live=false.
type arena struct {
	leaf     func(v int) int
	capacity int
	of       []int // cluster id per cell, -1 unassigned
	members  [][]int
	load     []int
	live     []bool
}

func newArena(order, capacity int, leaf func(int) int) *arena {
	a := &arena{leaf: leaf, capacity: capacity, of: make([]int, order)}
	for i := range a.of {
		a.of[i] = -1
	}

	return a
}

func (a *arena) assigned(v int) bool { return a.of[v] != -1 }

// open creates a cluster holding cells.
func (a *arena) open(cells ...int) int {
	id := len(a.members)
	a.members = append(a.members, nil)
	a.load = append(a.load, 0)
	a.live = append(a.live, true)
	for _, v := range cells {
		a.add(id, v)
	}

	return id
}

func (a *arena) add(id, v int) {
	a.of[v] = id
	a.members[id] = append(a.members[id], v)
	a.load[id] += a.leaf(v)
}

// merge moves cluster from into cluster into.
func (a *arena) merge(from, into int) {
	for _, v := range a.members[from] {
		a.of[v] = into
	}
	a.members[into] = append(a.members[into], a.members[from]...)
	a.load[into] += a.load[from]
	a.members[from] = nil
	a.load[from] = 0
	a.live[from] = false
}

// link applies the cluster relation table to candidate x and contact y.
// It reports false, leaving the arena untouched, when capacity forbids the link.
func (a *arena) link(x, y int) bool {
	cx, cy := a.of[x], a.of[y]
	switch {
	case cx == -1 && cy == -1:
		if a.leaf(x)+a.leaf(y) > a.capacity {
			return false
		}
		a.open(x, y)
	case cx == -1:
		if a.leaf(x)+a.load[cy] > a.capacity {
			return false
		}
		a.add(cy, x)
	case cy == -1:
		if a.leaf(y)+a.load[cx] > a.capacity {
			return false
		}
		a.add(cx, y)
	case cx != cy:
		if a.load[cx]+a.load[cy] > a.capacity {
			return false
		}
		a.merge(min(cx, cy), max(cx, cy))
	}

	return true
}

// partition returns the live clusters in id order, members ascending.
func (a *arena) partition() [][]int {
	var out [][]int
	for id, ok := range a.live {
		if !ok {
			continue
		}
		cl := slices.Clone(a.members[id])
		slices.Sort(cl)
		out = append(out, cl)
	}

	return out
}
