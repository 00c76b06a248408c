package hubcenter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/leafrake/solution"
)

// Sentinel errors.
var (
	// ErrUnsupportedPolicy indicates an unknown hub strategy.
	ErrUnsupportedPolicy = errors.New("hubcenter: unsupported hub strategy")

	// ErrNotPartition indicates clusters that do not partition the open cells.
	ErrNotPartition = errors.New("hubcenter: clusters do not partition the open cells")

	// ErrDisconnectedCluster indicates a cluster whose induced subgraph is disconnected.
	ErrDisconnectedCluster = errors.New("hubcenter: cluster is not connected")

	// ErrNoPrevious indicates KeepHubs without a previous successor.
	ErrNoPrevious = errors.New("hubcenter: KeepHubs requires a previous successor")
)

// Strategy selects the hub of a cluster.
type Strategy int

const (
	// SmallestIndex picks the lowest cell index of the cluster.
	SmallestIndex Strategy = iota
	// LeafMax picks the cell holding the most leaves.
	LeafMax
	// LeafMin picks the cell holding the fewest leaves.
	LeafMin
	// DepotNearest picks the cell closest to the depot.
	DepotNearest
	// Median picks the cell minimizing the leaf-weighted in-cluster distance sum.
	Median
	// KeepHubs reuses a hub of the previous successor when the cluster contains one.
	KeepHubs
)

var strategyNames = [...]string{
	SmallestIndex: "SmallestIndex",
	LeafMax:       "LeafMax",
	LeafMin:       "LeafMin",
	DepotNearest:  "DepotNearest",
	Median:        "Median",
	KeepHubs:      "KeepHubs",
}

// String returns the canonical strategy name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps a canonical name to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedPolicy, name)
}

// Options configures CenterHubs.
type Options struct {
	Previous solution.Successor
}

// Option is a functional option for CenterHubs.
type Option func(*Options)

// WithPrevious supplies the successor whose hubs KeepHubs preserves.
func WithPrevious(s solution.Successor) Option {
	return func(o *Options) {
		o.Previous = s
	}
}
