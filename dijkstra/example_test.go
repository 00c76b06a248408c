// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/leafrake/dijkstra"
)

// ExampleDijkstra demonstrates computing shortest paths on a small weighted graph
// and rebuilding one path from the predecessor slice.
func ExampleDijkstra() {
	g := undirected(4,
		[3]float64{0, 1, 1},
		[3]float64{1, 2, 1.5},
		[3]float64{0, 2, 3},
		[3]float64{2, 3, 1},
	)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("dist:", dist)
	fmt.Println("path to 3:", dijkstra.PathTo(prev, 0, 3))
	// Output:
	// dist: [0 1 2.5 3.5]
	// path to 3: [0 1 2 3]
}
