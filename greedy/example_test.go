package greedy_test

import (
	"fmt"

	"github.com/katalvlaran/leafrake/greedy"
	"github.com/katalvlaran/leafrake/gridgraph"
	"github.com/katalvlaran/leafrake/problem"
)

// ExampleClusters groups a one-row garden under a capacity of 5.
func ExampleClusters() {
	m, err := problem.FromRows([][]int{{2, 0, 3, 0}}, gridgraph.DefaultGridOptions(), problem.Params{
		MaxCluster:     5,
		RakeBatch:      10,
		TransportBatch: 20,
		Depot:          problem.Cell{X: 3},
		Start:          problem.Cell{X: 3},
		Weights:        problem.DefaultWeights(),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	clusters, err := greedy.Clusters(m, greedy.WithAssignment(greedy.NW))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(clusters)
	// Output: [[0 1] [2 3]]
}
