package greedy_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leafrake/greedy"
	"github.com/katalvlaran/leafrake/gridgraph"
	"github.com/katalvlaran/leafrake/hubcenter"
	"github.com/katalvlaran/leafrake/problem"
	"github.com/katalvlaran/leafrake/solution"
)

func lineModel(t *testing.T, leaves []int, capacity, depot int) *problem.Model {
	t.Helper()
	m, err := problem.FromRows([][]int{leaves}, gridgraph.DefaultGridOptions(), problem.Params{
		MaxCluster:     capacity,
		RakeBatch:      10,
		TransportBatch: 10,
		Depot:          problem.Cell{X: depot},
		Start:          problem.Cell{X: depot},
		Weights:        problem.DefaultWeights(),
	})
	require.NoError(t, err)

	return m
}

// TestBuild_LineScenario: [2,0,3,0], capacity 5, depot at the last cell.
// Expect clusters {0,1} and {2,3} with hubs 0 and 2.
func TestBuild_LineScenario(t *testing.T) {
	m := lineModel(t, []int{2, 0, 3, 0}, 5, 3)

	parts, err := greedy.Clusters(m)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, parts)

	s, err := greedy.Build(m,
		greedy.WithAssignment(greedy.NW),
		greedy.WithContact(greedy.NW),
		greedy.WithHubStrategy(hubcenter.SmallestIndex),
	)
	require.NoError(t, err)
	assert.Equal(t, solution.Successor{0, 0, 2, 2}, s)
}

// TestBuild_CapacityBreachKeepsCellsApart: 4 + 4 > 5, so two singletons.
func TestBuild_CapacityBreachKeepsCellsApart(t *testing.T) {
	m := lineModel(t, []int{4, 4}, 5, 0)
	for _, sel := range []greedy.Selection{greedy.NW, greedy.LeafMax, greedy.LeafMin, greedy.DepotNearest} {
		parts, err := greedy.Clusters(m, greedy.WithAssignment(sel), greedy.WithContact(sel), greedy.WithConsolidation())
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0}, {1}}, parts, sel.String())
	}
}

func TestClusters_Consolidation(t *testing.T) {
	m := lineModel(t, []int{1, 1, 1, 1}, 4, 0)

	plain, err := greedy.Clusters(m)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, plain)

	merged, err := greedy.Clusters(m, greedy.WithConsolidation())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, merged)
}

func TestClusters_LeafMaxAssignment(t *testing.T) {
	// The 5 is taken first and pairs with its leafiest free neighbor; the
	// empty cell 4 is visited last and still fits next to it.
	m := lineModel(t, []int{1, 2, 5, 3, 0}, 8, 0)
	parts, err := greedy.Clusters(m, greedy.WithAssignment(greedy.LeafMax), greedy.WithContact(greedy.LeafMax))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 3, 4}, {0, 1}}, parts)
}

func TestClusters_JoinsAssignedNeighbor(t *testing.T) {
	// 0 and 1 pair up, 2 has no free neighbor and joins their cluster.
	m := lineModel(t, []int{1, 1, 1}, 5, 0)
	parts, err := greedy.Clusters(m)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, parts)
}

func TestClusters_UnsupportedPolicy(t *testing.T) {
	m := lineModel(t, []int{1, 1}, 5, 0)
	_, err := greedy.Clusters(m, greedy.WithAssignment(greedy.Selection(7)))
	assert.ErrorIs(t, err, greedy.ErrUnsupportedPolicy)
	_, err = greedy.Build(m, greedy.WithContact(greedy.Selection(-1)))
	assert.ErrorIs(t, err, greedy.ErrUnsupportedPolicy)
	_, err = greedy.Build(m, greedy.WithHubStrategy(hubcenter.Strategy(99)))
	assert.ErrorIs(t, err, hubcenter.ErrUnsupportedPolicy)
}

func TestParseSelection(t *testing.T) {
	for _, name := range []string{"NW", "LeafMax", "LeafMin", "DepotNearest"} {
		s, err := greedy.ParseSelection(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}
	_, err := greedy.ParseSelection("nw")
	assert.ErrorIs(t, err, greedy.ErrUnsupportedPolicy)
}

// randomGarden returns a w×h garden whose obstacles sit only on even interior
// coordinates, so no obstacle touches another and the garden stays connected.
func randomGarden(rng *rand.Rand, w, h int) [][]int {
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			if x > 0 && y > 0 && x%2 == 0 && y%2 == 0 && rng.Intn(2) == 0 {
				rows[y][x] = -1
				continue
			}
			rows[y][x] = rng.Intn(6)
		}
	}

	return rows
}

// TestBuild_Invariants checks partition, capacity and acyclicity over random
// gardens and every policy combination.
func TestBuild_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	selections := []greedy.Selection{greedy.NW, greedy.LeafMax, greedy.LeafMin, greedy.DepotNearest}
	hubs := []hubcenter.Strategy{
		hubcenter.SmallestIndex, hubcenter.LeafMax, hubcenter.LeafMin,
		hubcenter.DepotNearest, hubcenter.Median,
	}
	for trial := 0; trial < 4; trial++ {
		m, err := problem.FromRows(randomGarden(rng, 7, 6), gridgraph.DefaultGridOptions(), problem.Params{
			MaxCluster:     9,
			RakeBatch:      4,
			TransportBatch: 12,
			Weights:        problem.DefaultWeights(),
		})
		require.NoError(t, err)
		for _, as := range selections {
			for _, cs := range selections {
				for _, hs := range hubs {
					name := fmt.Sprintf("%d/%v/%v/%v", trial, as, cs, hs)
					s, err := greedy.Build(m,
						greedy.WithAssignment(as), greedy.WithContact(cs),
						greedy.WithHubStrategy(hs), func(o *greedy.Options) { o.Consolidate = trial%2 == 1 },
					)
					require.NoError(t, err, name)
					require.NoError(t, solution.Conforms(m, s), name)

					a, err := solution.Analyze(s)
					require.NoError(t, err, name)
					seen := 0
					for _, cl := range a.Clusters {
						assert.LessOrEqual(t, m.LeafSum(cl), m.MaxClusterCapacity(), name)
						seen += len(cl)
					}
					assert.Equal(t, len(m.Nodes()), seen, name)
				}
			}
		}
	}
}
