package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/leafrake/cost"
	"github.com/katalvlaran/leafrake/problem"
	"github.com/katalvlaran/leafrake/solution"
)

// arrows maps a successor offset (dx+1, dy+1) to its glyph.
var arrows = [3][3]rune{
	{'↖', '←', '↙'},
	{'↑', 'H', '↓'},
	{'↗', '→', '↘'},
}

// writeReport prints the cost breakdown, one line per cluster and the
// raking plan as a grid of arrows (H hub, # blocked, D depot off the plan).
func writeReport(w io.Writer, m *problem.Model, s solution.Successor, b cost.Breakdown) error {
	a, err := solution.Analyze(s)
	if err != nil {
		return err
	}
	grid := m.Grid()

	var sb strings.Builder
	fmt.Fprintf(&sb, "cost: %s\n", b)
	fmt.Fprintf(&sb, "clusters: %d\n", len(a.Hubs))
	for i, h := range a.Hubs {
		x, y := grid.Coordinate(h)
		fmt.Fprintf(&sb, "  hub (%d,%d) cells=%d leaves=%d\n", y, x, len(a.Clusters[i]), m.LeafSum(a.Clusters[i]))
	}
	sb.WriteString("plan:\n")
	for y := 0; y < grid.Height; y++ {
		sb.WriteString("  ")
		for x := 0; x < grid.Width; x++ {
			v := grid.Index(x, y)
			sb.WriteRune(glyph(m, s, v))
		}
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(w, sb.String())

	return err
}

func glyph(m *problem.Model, s solution.Successor, v int) rune {
	t := s[v]
	switch {
	case t == solution.Blocked && v == m.DepotNode():
		return 'D'
	case t == solution.Blocked:
		return '#'
	}
	grid := m.Grid()
	vx, vy := grid.Coordinate(v)
	tx, ty := grid.Coordinate(t)

	return arrows[tx-vx+1][ty-vy+1]
}
