// Package greedy builds a complete raking plan from scratch with the
// simultaneous cluster algorithm.
//
// Algorithm:
//
//  1. Take the next unassigned cell in assignment order (the assignment candidate).
//  2. Walk its neighbors in contact order, unassigned ones first, and link the
//     first one the capacity rule admits:
//     - neither assigned:      open a cluster with both;
//     - only contact assigned: join the contact's cluster;
//     - only candidate assigned: pull the contact into the candidate's cluster;
//     - both assigned:         merge the two clusters into the higher id.
//  3. If no neighbor can be linked, the candidate becomes a one-cell cluster.
//  4. Optionally consolidate adjacent clusters while capacity allows.
//  5. Hand the partition to hubcenter with the requested hub strategy.
//
// Every selection policy is a total order on cells with ties going to the
// lower index, so a run is fully deterministic.
//
// Clusters live in an arena addressed by stable ids with a live flag; merging
// never renumbers, and the final partition lists live clusters in id order.
package greedy
