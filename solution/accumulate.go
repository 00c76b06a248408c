package solution

// Accumulate returns, per cell, the leaves raked through it: its own leaves
// plus those of every cell whose chain passes through it. At a hub this is
// the cluster load. Blocked cells get 0. s must be a valid forest.
// Complexity: O(n), processing cells in leaf-to-hub order.
func Accumulate(s Successor, leaf func(v int) int) []int {
	n := len(s)
	acc := make([]int, n)
	pending := make([]int, n)
	for v, t := range s {
		if t == Blocked {
			continue
		}
		acc[v] = leaf(v)
		if t != v {
			pending[t]++
		}
	}
	queue := make([]int, 0, n)
	for v, t := range s {
		if t != Blocked && pending[v] == 0 {
			queue = append(queue, v)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		v := queue[qi]
		t := s[v]
		if t == v {
			continue
		}
		acc[t] += acc[v]
		if pending[t]--; pending[t] == 0 {
			queue = append(queue, t)
		}
	}

	return acc
}
