// Package cost scores a raking plan against a problem model.
//
// The full evaluator simulates one worker:
//
//  1. Starting at the depot, repeatedly walk to the nearest unprocessed source
//     (ties to the lower index) and rake its chain hop by hop to the hub.
//     Every hop charges rake cost ⌈moved/RakeBatch⌉·w_rake·d and walk cost
//     d·w_walk, where moved is everything currently carried along the chain.
//  2. After the last source, walk back to the start cell and charge the
//     start↔depot round trip twice.
//  3. Transport: each hub is emptied in ⌈load/TransportBatch⌉ depot round trips,
//     each costing 2·d(hub, depot)·w_transport.
//
// EvaluateCheap drops the walk term and charges each hop once with the full
// subtree load. It is a faster, less faithful score for search loops and is
// never substituted for Evaluate implicitly.
//
// Capacity violations (a cell holding more than MaxClusterCapacity leaves) are
// handled by an explicit ViolationPolicy: Throw returns a *CapacityError,
// Infinite returns +Inf for every component, Ignore keeps going.
package cost
