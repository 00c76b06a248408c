// Package leafrake plans how to rake the leaves of a garden grid.
//
// 🍂 What is leafrake?
//
//	Given a grid of cells carrying leaf counts, leafrake partitions the
//	reachable cells into capacity-bounded clusters, picks one hub per
//	cluster, orders the raking inside each cluster as a forest pointing at
//	the hub, and scores the plan by raking, walking and transport cost.
//
// Packages, leaves first:
//
//	gridgraph/   2D grid as an index graph (Conn4/Conn8, weighted diagonals)
//	dijkstra/    index-based shortest paths with vertex filters
//	problem/     immutable problem model: leaves, distances, capacities, weights
//	solution/    successor forests: hubs, sources, clusters, roles, validation
//	hubcenter/   per-cluster hub selection and shortest-path raking trees
//	greedy/      simultaneous cluster builder with pluggable selection policies
//	cost/        full raking simulation and the cheap walk-free variant
//	harkdata/    mutable forest with incremental caches for local search
//	anneal/      simulated annealing over harkdata operators
//	config/      HCL problem and solver files
//	cmd/leafrake command line front end
//
// Quick ASCII example (capacity 5, depot on the right):
//
//	leaves   2 0 3 0
//	plan     H ← H ←
//
// two clusters {0,1} and {2,3}, each raked into its left cell.
package leafrake
