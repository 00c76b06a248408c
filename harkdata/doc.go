// Package harkdata holds one mutable candidate solution for local search.
//
// What:
//
//	A State wraps a successor (see package solution) and keeps, per cell,
//	the predecessor list, the role tag, the hub and the accumulated leaves
//	raked through the cell. Mutation operators keep every cache consistent:
//
//	  - Retarget(v, t)    re-parent v onto neighbor t (or onto itself)
//	  - RerootCluster(v)  make v the hub of its cluster by reversing v→hub
//	  - SplitCluster(v)   detach v's subtree as a new cluster
//	  - MergeClusters(a,b) join two adjacent clusters across the edge a–b
//
// Why:
//
//	Stochastic search proposes thousands of small moves. Recomputing the
//	forest aggregates after each move costs O(n); the operators here touch
//	only the affected chain and subtree.
//
// Atomicity:
//
//	Every operator checks all preconditions (neighborhood, acyclicity,
//	capacity) before writing anything. A rejected move returns false and
//	leaves the State untouched; operators never return errors.
//
// Complexity:
//
//	Retarget:       O(d + t) for chain lengths d and relabelled subtree t.
//	RerootCluster:  O(d + c) for path length d and cluster size c.
//	Verify:         O(n).
//
// A State must not be mutated concurrently. Clone gives each search
// trajectory its own copy; the underlying *problem.Model is shared.
package harkdata
