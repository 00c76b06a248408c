// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate correct behavior under various configurations, including
// basic functionality, vertex filters, and deterministic tie-breaks.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leafrake/dijkstra"
)

// adjList is a minimal dijkstra.Graph used across tests.
type adjList [][]dijkstra.Arc

func (g adjList) Order() int                { return len(g) }
func (g adjList) Arcs(u int) []dijkstra.Arc { return g[u] }

// undirected builds an adjList of n vertices from (u, v, w) triples.
func undirected(n int, edges ...[3]float64) adjList {
	g := make(adjList, n)
	for _, e := range edges {
		u, v := int(e[0]), int(e[1])
		g[u] = append(g[u], dijkstra.Arc{To: v, Weight: e[2]})
		g[v] = append(g[v], dijkstra.Arc{To: u, Weight: e[2]})
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := undirected(2, [3]float64{0, 1, 1})
	cases := []struct {
		name string
		g    dijkstra.Graph
		opts []dijkstra.Option
		want error
	}{
		{"NoSource", g, nil, dijkstra.ErrNoSource},
		{"NilGraph", nil, []dijkstra.Option{dijkstra.Source(0)}, dijkstra.ErrNilGraph},
		{"OutOfRange", g, []dijkstra.Option{dijkstra.Source(5)}, dijkstra.ErrVertexNotFound},
		{"Filtered", g, []dijkstra.Option{dijkstra.Source(0), dijkstra.WithAllowed(func(v int) bool { return v != 0 })}, dijkstra.ErrSourceNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := dijkstra.Dijkstra(tc.g, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := undirected(2, [3]float64{0, 1, -2})
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// 0-1 (1), 1-2 (2), 0-2 (5)
	g := undirected(3, [3]float64{0, 1, 1}, [3]float64{1, 2, 2}, [3]float64{0, 2, 5})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, []float64{0, 1, 3}, dist)

	_, prev, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 1}, prev)
	assert.Equal(t, []int{0, 1, 2}, dijkstra.PathTo(prev, 0, 2))
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := undirected(3, [3]float64{0, 1, 1})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist[2], 1))
	assert.Equal(t, -1, prev[2])
	assert.Nil(t, dijkstra.PathTo(prev, 0, 2))
	assert.Equal(t, []int{0}, dijkstra.PathTo(prev, 0, 0))
}

func TestDijkstra_AllowedFilterDetours(t *testing.T) {
	// Square 0-1-3 and 0-2-3; the short route through 1 is filtered out.
	g := undirected(4,
		[3]float64{0, 1, 1}, [3]float64{1, 3, 1},
		[3]float64{0, 2, 2}, [3]float64{2, 3, 2},
	)
	dist, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source(0),
		dijkstra.WithReturnPath(),
		dijkstra.WithAllowed(func(v int) bool { return v != 1 }),
	)
	require.NoError(t, err)
	assert.Equal(t, 4.0, dist[3])
	assert.Equal(t, 2, prev[3])
	assert.True(t, math.IsInf(dist[1], 1))
}

func TestDijkstra_TieBreakPrefersFirstSettled(t *testing.T) {
	// Two equal routes 0→1→3 and 0→2→3; vertex 1 settles first and wins.
	g := undirected(4,
		[3]float64{0, 2, 1}, [3]float64{0, 1, 1},
		[3]float64{1, 3, 1}, [3]float64{2, 3, 1},
	)
	for i := 0; i < 5; i++ {
		_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
		require.NoError(t, err)
		assert.Equal(t, 1, prev[3])
	}
}
