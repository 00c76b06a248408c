// Package problem holds the immutable description of one leaf-raking instance:
// the garden grid, the raking and transport capacities, the depot and start
// cells, the cost weights, and precomputed adjacency and all-pairs distances.
//
// What:
//
//   - Model is built once per instance with New and never mutated afterwards.
//   - Every accessor is an O(1) lookup (Neighbors and Arcs return shared slices).
//   - Nodes() lists the open cells that take part in clustering, ascending.
//
// Terminals:
//
//   - Depot and Start must sit on an open cell, or on a blocked cell listed
//     in Params.Shed. A shed terminal is traversable, carries no leaves and is
//     not part of the clustering node set.
//
// Errors (sentinel, checked at construction):
//
//   - ErrNilGrid, ErrNoNodes, ErrBadCapacity, ErrBadWeights
//   - ErrOutOfBounds, ErrBlockedTerminal, ErrIsolatedTerminal
//   - ErrUnreachable, ErrLeafExceedsCapacity
//
// Concurrency:
//
//   - A Model is read-only after New returns and may be shared by any number
//     of goroutines.
package problem
