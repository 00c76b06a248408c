package cost_test

import (
	"fmt"

	"github.com/katalvlaran/leafrake/cost"
	"github.com/katalvlaran/leafrake/greedy"
	"github.com/katalvlaran/leafrake/gridgraph"
	"github.com/katalvlaran/leafrake/problem"
)

// ExampleEvaluate plans and scores a one-row garden.
func ExampleEvaluate() {
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
	s, err := greedy.Build(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	b, err := cost.Evaluate(m, s, cost.Throw)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)
	fmt.Println(b)
	// Output:
	// [0 0 2 2]
	// rake=0.000 walk=6.000 transport=8.000 total=14.000
}
