// Package solution defines the successor-function representation of a
// raking plan and the cluster analysis every other component normalizes with.
//
// A Successor maps each cell index to the cell its accumulated leaves are
// raked to next. A cell mapping to itself is a hub; blocked cells hold the
// Blocked sentinel. A valid successor is a forest: following successors from
// any open cell reaches a hub after at most len(s) steps.
//
// Analysis:
//
//   - HubsAndSources: single O(n) pass, no graph traversal.
//   - Analyze:        hubs, sources and clusters (reverse-reachable sets per hub).
//   - HubOf:          hub of every cell, memoized chain walk.
//   - Roles:          Hub, Source, Bridge or Single per cell.
//
// Validation:
//
//   - Validate checks targets and acyclicity iteratively (no recursion), so
//     garden size is bounded by memory, not stack depth.
//   - Conforms additionally checks the successor against a model's open cells.
package solution
