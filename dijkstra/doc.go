// Package dijkstra provides Dijkstra's shortest-path algorithm on index-addressed
// graphs with non-negative float64 step weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Vertices are dense integers 0..Order()-1, which matches the row-major cell
//     indexing of gridgraph and lets callers keep results in plain slices.
//
// When to use:
//
//   - All-pairs distance tables for the leaf-raking problem model (one run per vertex).
//   - Cluster-local shortest-path trees for hub centering (WithAllowed restricts
//     traversal to the cluster's induced subgraph).
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns the predecessor slice, so you can rebuild each path.
//   - Allowed: a vertex filter; vertices rejected by it are never entered.
//
// Determinism:
//
//   - The heap orders entries by (distance, vertex index) and predecessors change only
//     on strict improvement, so equal-cost ties always resolve the same way.
//
// Errors (sentinel):
//
//   - ErrNoSource          if no Source option was given.
//   - ErrNilGraph          if the graph is nil.
//   - ErrVertexNotFound    if the source is outside 0..Order()-1.
//   - ErrSourceNotAllowed  if the Allowed filter rejects the source.
//   - ErrNegativeWeight    if a negative or NaN arc weight is detected.
package dijkstra
