package harkdata

import "slices"

// Retarget makes v rake into t. t == v turns v into a hub.
//
// Rejected (false, no change) when v or t is not an open cell, t is neither v
// nor a neighbor of v, t is already v's successor, v lies on t's chain to
// its hub, or the move would push t's cluster over MaxCluster.
func (st *State) Retarget(v, t int) bool {
	m := st.m
	if !m.Open(v) || !m.Open(t) || st.succ[v] == t {
		return false
	}
	if t != v {
		if !m.IsNeighbor(v, t) || st.onChain(t, v) {
			return false
		}
		if h := st.hub[t]; h != st.hub[v] && st.acc[h]+st.acc[v] > m.MaxClusterCapacity() {
			return false
		}
	}
	st.retarget(v, t)

	return true
}

// onChain reports whether x lies on the chain from u to its hub.
func (st *State) onChain(u, x int) bool {
	for {
		if u == x {
			return true
		}
		if st.succ[u] == u {
			return false
		}
		u = st.succ[u]
	}
}

func (st *State) retarget(v, t int) {
	old := st.succ[v]
	load := st.acc[v]
	if old != v {
		st.addAlong(old, -load)
		st.preds[old] = remove(st.preds[old], v)
	}

	st.succ[v] = t
	h := v
	if t != v {
		st.preds[t] = insert(st.preds[t], v)
		h = st.addAlong(t, load)
	}
	if h != st.hub[v] {
		st.relabel(v, h)
	}

	st.role[old] = st.roleOf(old)
	st.role[v] = st.roleOf(v)
	st.role[t] = st.roleOf(t)
}

// addAlong adds d to every cell from u up to and including its hub and
// returns the hub.
func (st *State) addAlong(u, d int) int {
	for {
		st.acc[u] += d
		if st.succ[u] == u {
			return u
		}
		u = st.succ[u]
	}
}

// relabel sets the hub of root's whole subtree to h.
func (st *State) relabel(root, h int) {
	queue := []int{root}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		st.hub[u] = h
		queue = append(queue, st.preds[u]...)
	}
}

// RerootCluster makes v the hub of its cluster by reversing the chain from v
// to the current hub. Membership and cluster load do not change.
// Rejected when v is not an open cell or already a hub.
func (st *State) RerootCluster(v int) bool {
	if !st.m.Open(v) || st.succ[v] == v {
		return false
	}
	path := []int{v}
	for u := v; st.succ[u] != u; {
		u = st.succ[u]
		path = append(path, u)
	}
	k := len(path) - 1
	total := st.acc[path[k]]

	// Walking down from the old hub: a'[i] = a[i] - a[i-1] + a'[i+1].
	carried := 0
	for i := k; i >= 1; i-- {
		st.acc[path[i]] += carried - st.acc[path[i-1]]
		carried = st.acc[path[i]]
	}
	st.acc[v] = total

	for i := 0; i < k; i++ {
		a, b := path[i], path[i+1]
		st.preds[b] = remove(st.preds[b], a)
		st.preds[a] = insert(st.preds[a], b)
		st.succ[b] = a
	}
	st.succ[v] = v
	st.relabel(v, v)
	for _, u := range path {
		st.role[u] = st.roleOf(u)
	}

	return true
}

// SplitCluster detaches v and everything raking through it as a new
// cluster with hub v. Rejected when v is already a hub.
func (st *State) SplitCluster(v int) bool {
	return st.Retarget(v, v)
}

// MergeClusters joins the clusters of the neighbors a and b: a becomes the
// hub of its cluster and then rakes into b.
// Rejected when a and b are not adjacent open cells, already share a hub,
// or the combined load exceeds MaxCluster.
func (st *State) MergeClusters(a, b int) bool {
	m := st.m
	if !m.Open(a) || !m.Open(b) || !m.IsNeighbor(a, b) {
		return false
	}
	ha, hb := st.hub[a], st.hub[b]
	if ha == hb || st.acc[ha]+st.acc[hb] > m.MaxClusterCapacity() {
		return false
	}
	if st.succ[a] != a {
		st.RerootCluster(a)
	}
	st.retarget(a, b)

	return true
}

// insert adds v to the ascending list p.
func insert(p []int, v int) []int {
	i, _ := slices.BinarySearch(p, v)

	return slices.Insert(p, i, v)
}

// remove deletes v from the ascending list p.
func remove(p []int, v int) []int {
	if i, ok := slices.BinarySearch(p, v); ok {
		return slices.Delete(p, i, i+1)
	}

	return p
}
