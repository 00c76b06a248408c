package hubcenter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leafrake/gridgraph"
	"github.com/katalvlaran/leafrake/hubcenter"
	"github.com/katalvlaran/leafrake/problem"
	"github.com/katalvlaran/leafrake/solution"
)

// plus returns a 3×3 Conn4 garden with a heavy centre and the depot at (2,2).
//
//	1 2 1
//	0 9 0
//	1 1 1
func plus(t *testing.T) *problem.Model {
	t.Helper()
	m, err := problem.FromRows(
		[][]int{{1, 2, 1}, {0, 9, 0}, {1, 1, 1}},
		gridgraph.GridOptions{Conn: gridgraph.Conn4},
		problem.Params{
			MaxCluster:     20,
			RakeBatch:      5,
			TransportBatch: 10,
			Depot:          problem.Cell{X: 2, Y: 2},
			Start:          problem.Cell{X: 2, Y: 2},
			Weights:        problem.DefaultWeights(),
		},
	)
	require.NoError(t, err)

	return m
}

var whole = [][]int{{0, 1, 2, 3, 4, 5, 6, 7, 8}}

func TestCenterHubs_StrategyPicksHub(t *testing.T) {
	m := plus(t)
	cases := []struct {
		strategy hubcenter.Strategy
		hub      int
	}{
		{hubcenter.SmallestIndex, 0},
		{hubcenter.LeafMax, 4},
		{hubcenter.LeafMin, 3},
		{hubcenter.DepotNearest, 8},
		{hubcenter.Median, 4},
	}
	for _, tc := range cases {
		t.Run(tc.strategy.String(), func(t *testing.T) {
			s, err := hubcenter.CenterHubs(m, whole, tc.strategy)
			require.NoError(t, err)
			a, err := solution.Analyze(s)
			require.NoError(t, err)
			assert.Equal(t, []int{tc.hub}, a.Hubs)
			assert.Equal(t, whole, a.Clusters)
		})
	}
}

func TestCenterHubs_ShortestPathTree(t *testing.T) {
	s, err := hubcenter.CenterHubs(plus(t), whole, hubcenter.Median)
	require.NoError(t, err)
	want := solution.Successor{1, 4, 1, 4, 4, 4, 3, 4, 5}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("successor mismatch (-want +got):\n%s", diff)
	}
}

func TestCenterHubs_KeepHubs(t *testing.T) {
	m := plus(t)
	clusters := [][]int{{0, 1, 2}, {3, 4, 5, 6, 7, 8}}
	prev, err := hubcenter.CenterHubs(m, clusters, hubcenter.LeafMax)
	require.NoError(t, err)
	require.True(t, prev.IsHub(1))
	require.True(t, prev.IsHub(4))

	kept, err := hubcenter.CenterHubs(m, clusters, hubcenter.KeepHubs, hubcenter.WithPrevious(prev))
	require.NoError(t, err)
	assert.Equal(t, prev, kept)

	// Clusters without a previous hub fall back to their lowest index.
	regrouped := [][]int{{0, 1, 2, 4, 7}, {3, 6}, {5, 8}}
	s, err := hubcenter.CenterHubs(m, regrouped, hubcenter.KeepHubs, hubcenter.WithPrevious(prev))
	require.NoError(t, err)
	a, err := solution.Analyze(s)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, a.Hubs)
}

func TestCenterHubs_Idempotent(t *testing.T) {
	m := plus(t)
	clusters := [][]int{{8, 5, 2}, {7, 6, 3, 0}, {4, 1}}
	for _, st := range []hubcenter.Strategy{
		hubcenter.SmallestIndex, hubcenter.LeafMax, hubcenter.LeafMin,
		hubcenter.DepotNearest, hubcenter.Median,
	} {
		first, err := hubcenter.CenterHubs(m, clusters, st)
		require.NoError(t, err)
		second, err := hubcenter.CenterHubs(m, clusters, st)
		require.NoError(t, err)
		assert.Equal(t, first, second, st.String())

		a, err := solution.Analyze(first)
		require.NoError(t, err)
		again, err := hubcenter.CenterHubs(m, a.Clusters, st)
		require.NoError(t, err)
		assert.Equal(t, first, again, st.String())
		require.NoError(t, solution.Conforms(m, first))
	}
}

func TestCenterHubs_Errors(t *testing.T) {
	m := plus(t)
	cases := []struct {
		name     string
		clusters [][]int
		strategy hubcenter.Strategy
		opts     []hubcenter.Option
		want     error
	}{
		{"Unsupported", whole, hubcenter.Strategy(42), nil, hubcenter.ErrUnsupportedPolicy},
		{"NoPrevious", whole, hubcenter.KeepHubs, nil, hubcenter.ErrNoPrevious},
		{"Missing", [][]int{{0, 1, 2}}, hubcenter.SmallestIndex, nil, hubcenter.ErrNotPartition},
		{"Duplicate", [][]int{{0, 1, 2, 3, 4, 5, 6, 7, 8}, {4}}, hubcenter.SmallestIndex, nil, hubcenter.ErrNotPartition},
		{"OutOfGrid", [][]int{{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}}, hubcenter.SmallestIndex, nil, hubcenter.ErrNotPartition},
		{"Disconnected", [][]int{{0, 2}, {1, 3, 4, 5, 6, 7, 8}}, hubcenter.SmallestIndex, nil, hubcenter.ErrDisconnectedCluster},
		{"DisconnectedMedian", [][]int{{0, 2}, {1, 3, 4, 5, 6, 7, 8}}, hubcenter.Median, nil, hubcenter.ErrDisconnectedCluster},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hubcenter.CenterHubs(m, tc.clusters, tc.strategy, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"SmallestIndex", "LeafMax", "LeafMin", "DepotNearest", "Median", "KeepHubs"} {
		st, err := hubcenter.ParseStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, name, st.String())
	}
	_, err := hubcenter.ParseStrategy("median")
	assert.ErrorIs(t, err, hubcenter.ErrUnsupportedPolicy)
	assert.Equal(t, "Strategy(9)", hubcenter.Strategy(9).String())
}
