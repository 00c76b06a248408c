// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on index-addressed graphs.
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was configured.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source index is outside the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrSourceNotAllowed indicates that the Allowed filter rejects the source itself.
	ErrSourceNotAllowed = errors.New("dijkstra: source vertex excluded by filter")

	// ErrNegativeWeight indicates that a negative (or NaN) arc weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Arc is a directed, weighted step u → To. Undirected graphs list each arc twice.
type Arc struct {
	To     int
	Weight float64
}

// Graph is the read-only view Dijkstra needs: a vertex count and the
// outgoing arcs of every vertex.
type Graph interface {
	Order() int
	Arcs(u int) []Arc
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex index (must be set and inside the graph).
// ReturnPath  – if true, return the predecessor slice; otherwise prev is nil.
// Allowed     – optional vertex filter; nil admits every vertex.
type Options struct {
	Source     int
	ReturnPath bool
	Allowed    func(v int) bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
// prev[v] == u means the shortest path to v goes through u; prev[source] == -1
// and prev[v] == -1 for unreachable v.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithAllowed restricts the search to vertices accepted by keep.
// Used to compute shortest paths inside a cluster's induced subgraph.
func WithAllowed(keep func(v int) bool) Option {
	return func(o *Options) {
		o.Allowed = keep
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:      -1 (unset; Dijkstra fails with ErrNoSource).
//   - ReturnPath:  false.
//   - Allowed:     nil (all vertices).
func DefaultOptions() Options {
	return Options{
		Source:     -1,
		ReturnPath: false,
	}
}
