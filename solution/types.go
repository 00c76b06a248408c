package solution

import (
	"errors"
	"slices"
)

// Blocked is the successor value of a blocked cell.
const Blocked = -1

// Sentinel errors for structural violations.
var (
	// ErrBadTarget indicates an open cell mapped outside the grid or onto a blocked cell.
	ErrBadTarget = errors.New("solution: successor points outside the open node set")

	// ErrCycle indicates a cycle other than a hub self-loop.
	ErrCycle = errors.New("solution: successor contains a non-trivial cycle")

	// ErrNotAdjacent indicates a cell raking into a cell that is not its neighbor.
	ErrNotAdjacent = errors.New("solution: successor is not a neighbor")

	// ErrShape indicates a successor whose length or open set disagrees with the model.
	ErrShape = errors.New("solution: successor does not match model")
)

// Successor is the per-cell "rake target" mapping of one candidate solution.
type Successor []int

// Clone returns an independent copy of s.
func (s Successor) Clone() Successor { return slices.Clone(s) }

// IsHub reports whether v maps to itself.
func (s Successor) IsHub(v int) bool { return v >= 0 && v < len(s) && s[v] == v }

// IsBlocked reports whether v carries the Blocked sentinel.
func (s Successor) IsBlocked(v int) bool { return s[v] == Blocked }

// Role tags a cell by its position in the raking forest.
type Role int

const (
	// RoleNone marks blocked cells.
	RoleNone Role = iota
	// RoleSource starts a chain: rakes onward, nothing is raked into it.
	RoleSource
	// RoleBridge receives leaves and rakes them onward.
	RoleBridge
	// RoleHub terminates a chain that other cells rake into.
	RoleHub
	// RoleSingle is a hub nobody rakes into: a one-cell cluster.
	RoleSingle
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleSource:
		return "Source"
	case RoleBridge:
		return "Bridge"
	case RoleHub:
		return "Hub"
	case RoleSingle:
		return "Single"
	default:
		return "None"
	}
}

// Analysis is the normalized view of a successor.
// Hubs and Sources are ascending. Clusters[i] belongs to Hubs[i] and is
// ascending; Clusters is nil when produced by HubsAndSources.
type Analysis struct {
	Hubs     []int
	Sources  []int
	Clusters [][]int
}
