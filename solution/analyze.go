package solution

import (
	"fmt"
	"slices"
)

// HubsAndSources is the cheap analysis path: one pass over s, no traversal.
// Hub = maps to itself. Source = open cell that no other cell maps to
// (a hub nobody rakes into is both a hub and a source).
// Complexity: O(n).
func HubsAndSources(s Successor) Analysis {
	targeted := make([]bool, len(s))
	var a Analysis
	for v, t := range s {
		if t == Blocked {
			continue
		}
		if t == v {
			a.Hubs = append(a.Hubs, v)
			continue
		}
		if t >= 0 && t < len(s) {
			targeted[t] = true
		}
	}
	for v, t := range s {
		if t != Blocked && !targeted[v] {
			a.Sources = append(a.Sources, v)
		}
	}

	return a
}

// Analyze returns hubs, sources and the cluster of every hub.
// s must be a valid forest; otherwise the structural error from Validate is returned.
// Complexity: O(n).
func Analyze(s Successor) (Analysis, error) {
	if err := Validate(s); err != nil {
		return Analysis{}, err
	}
	a := HubsAndSources(s)
	preds := Predecessors(s)
	a.Clusters = make([][]int, len(a.Hubs))
	for i, h := range a.Hubs {
		a.Clusters[i] = collect(preds, h)
	}

	return a, nil
}

// collect gathers every cell whose chain reaches root, iteratively via reverse edges.
func collect(preds [][]int, root int) []int {
	members := []int{root}
	for qi := 0; qi < len(members); qi++ {
		members = append(members, preds[members[qi]]...)
	}
	slices.Sort(members)

	return members
}

// Predecessors returns, per cell, the cells mapping to it (self-loops excluded),
// each list ascending.
func Predecessors(s Successor) [][]int {
	preds := make([][]int, len(s))
	for v, t := range s {
		if t == Blocked || t == v || t < 0 || t >= len(s) {
			continue
		}
		preds[t] = append(preds[t], v)
	}

	return preds
}

// Roles tags every cell. Blocked cells get RoleNone.
func Roles(s Successor) []Role {
	fed := make([]bool, len(s))
	for v, t := range s {
		if t != Blocked && t != v && t >= 0 && t < len(s) {
			fed[t] = true
		}
	}
	roles := make([]Role, len(s))
	for v, t := range s {
		switch {
		case t == Blocked:
			roles[v] = RoleNone
		case t == v && fed[v]:
			roles[v] = RoleHub
		case t == v:
			roles[v] = RoleSingle
		case fed[v]:
			roles[v] = RoleBridge
		default:
			roles[v] = RoleSource
		}
	}

	return roles
}

// HubOf returns the hub reached from every cell (Blocked for blocked cells).
// s must be a valid forest.
// Complexity: O(n) with memoized chain walks.
func HubOf(s Successor) []int {
	hub := make([]int, len(s))
	for i := range hub {
		hub[i] = -2
	}
	var path []int
	for v := range s {
		if s[v] == Blocked {
			hub[v] = Blocked
			continue
		}
		path = path[:0]
		cur := v
		for hub[cur] == -2 && s[cur] != cur {
			path = append(path, cur)
			cur = s[cur]
		}
		h := hub[cur]
		if h == -2 {
			h = cur
			hub[cur] = cur
		}
		for _, p := range path {
			hub[p] = h
		}
	}

	return hub
}

// Validate checks that every open cell maps to an open cell and that the only
// cycles are hub self-loops.
// Complexity: O(n) time, O(n) memory; iterative.
func Validate(s Successor) error {
	const (
		unseen = iota
		onPath
		done
	)
	n := len(s)
	for v, t := range s {
		if t == Blocked {
			continue
		}
		if t < 0 || t >= n || s[t] == Blocked {
			return fmt.Errorf("%w: %d -> %d", ErrBadTarget, v, t)
		}
	}
	state := make([]uint8, n)
	var path []int
	for v := range s {
		if s[v] == Blocked || state[v] != unseen {
			continue
		}
		path = path[:0]
		cur := v
		for state[cur] == unseen {
			state[cur] = onPath
			path = append(path, cur)
			if s[cur] == cur {
				break
			}
			cur = s[cur]
		}
		if state[cur] == onPath && s[cur] != cur {
			return fmt.Errorf("%w: through cell %d", ErrCycle, cur)
		}
		for _, p := range path {
			state[p] = done
		}
	}

	return nil
}
