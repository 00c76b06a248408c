// Package hubcenter turns a cluster partition into a successor function:
// it picks one hub per cluster and rakes every member towards that hub along a
// cluster-local shortest-path tree.
//
// Strategies:
//
//   - SmallestIndex: lowest cell index.
//   - LeafMax / LeafMin: most / fewest leaves, ties to the lowest index.
//   - DepotNearest: shortest garden distance to the depot.
//   - Median: minimizes Σ leaf(n)·d(hub, n) with d measured inside the cluster.
//   - KeepHubs: keeps the hub a previous successor had in the cluster
//     (WithPrevious); clusters without one fall back to SmallestIndex.
//
// Guarantees:
//
//   - The result is acyclic and conforms to the model.
//   - Identical input yields identical output: ties always go to the lower index.
//   - A cluster whose induced subgraph is disconnected is reported with
//     ErrDisconnectedCluster, never patched.
package hubcenter
