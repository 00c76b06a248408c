package solution

import "fmt"

// OpenSet is the part of a problem model a successor must agree with.
type OpenSet interface {
	Order() int
	Open(v int) bool
	IsNeighbor(a, b int) bool
}

// Conforms checks s against m: one entry per cell, Blocked exactly on
// closed cells, every non-hub step between neighbors, and a valid forest
// over the open cells.
func Conforms(m OpenSet, s Successor) error {
	if len(s) != m.Order() {
		return fmt.Errorf("%w: length %d, want %d", ErrShape, len(s), m.Order())
	}
	for v, t := range s {
		if m.Open(v) == (t == Blocked) {
			return fmt.Errorf("%w: cell %d open=%t successor=%d", ErrShape, v, m.Open(v), t)
		}
	}
	if err := Validate(s); err != nil {
		return err
	}
	for v, t := range s {
		if t != Blocked && t != v && !m.IsNeighbor(v, t) {
			return fmt.Errorf("%w: %d -> %d", ErrNotAdjacent, v, t)
		}
	}

	return nil
}

// Singletons returns the successor in which every open cell is its own hub.
func Singletons(m OpenSet) Successor {
	s := make(Successor, m.Order())
	for v := range s {
		if m.Open(v) {
			s[v] = v
		} else {
			s[v] = Blocked
		}
	}

	return s
}
