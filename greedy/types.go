package greedy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/leafrake/hubcenter"
)

// ErrUnsupportedPolicy indicates an unknown selection policy.
var ErrUnsupportedPolicy = errors.New("greedy: unsupported selection policy")

// Selection orders candidate cells.
type Selection int

const (
	// NW takes the smallest index first (north-west corner in row-major order).
	NW Selection = iota
	// LeafMax takes the cell with the most leaves first.
	LeafMax
	// LeafMin takes the cell with the fewest leaves first.
	LeafMin
	// DepotNearest takes the cell closest to the depot first.
	DepotNearest
)

var selectionNames = [...]string{
	NW:           "NW",
	LeafMax:      "LeafMax",
	LeafMin:      "LeafMin",
	DepotNearest: "DepotNearest",
}

// String returns the canonical policy name.
func (s Selection) String() string {
	if s < 0 || int(s) >= len(selectionNames) {
		return fmt.Sprintf("Selection(%d)", int(s))
	}

	return selectionNames[s]
}

// ParseSelection maps a canonical name to its Selection.
func ParseSelection(name string) (Selection, error) {
	for i, n := range selectionNames {
		if n == name {
			return Selection(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedPolicy, name)
}

// Options configures Build and Clusters.
type Options struct {
	Assignment  Selection
	Contact     Selection
	Hub         hubcenter.Strategy
	Consolidate bool
}

// Option is a functional option.
type Option func(*Options)

// WithAssignment sets the assignment candidate policy.
func WithAssignment(s Selection) Option { return func(o *Options) { o.Assignment = s } }

// WithContact sets the contact candidate policy.
func WithContact(s Selection) Option { return func(o *Options) { o.Contact = s } }

// WithHubStrategy sets the hub strategy used to turn clusters into a successor.
func WithHubStrategy(h hubcenter.Strategy) Option { return func(o *Options) { o.Hub = h } }

// WithConsolidation merges adjacent clusters after the main loop while capacity allows.
func WithConsolidation() Option { return func(o *Options) { o.Consolidate = true } }

// DefaultOptions returns NW / NW / SmallestIndex without consolidation.
func DefaultOptions() Options {
	return Options{
		Assignment: NW,
		Contact:    NW,
		Hub:        hubcenter.SmallestIndex,
	}
}
