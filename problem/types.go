package problem

import "errors"

// Sentinel errors returned by New.
var (
	// ErrNilGrid indicates a nil grid was passed to New.
	ErrNilGrid = errors.New("problem: grid is nil")

	// ErrNoNodes indicates the grid contains no open cell.
	ErrNoNodes = errors.New("problem: grid has no open cells")

	// ErrBadCapacity indicates a non-positive cluster, rake or transport capacity.
	ErrBadCapacity = errors.New("problem: capacities must be positive")

	// ErrBadWeights indicates a negative or non-finite cost weight.
	ErrBadWeights = errors.New("problem: cost weights must be finite and non-negative")

	// ErrOutOfBounds indicates a depot, start or shed cell outside the grid.
	ErrOutOfBounds = errors.New("problem: cell out of bounds")

	// ErrBlockedTerminal indicates a depot or start on a blocked cell outside the shed zone.
	ErrBlockedTerminal = errors.New("problem: terminal on blocked cell outside shed zone")

	// ErrIsolatedTerminal indicates a depot or start without any open neighbor.
	ErrIsolatedTerminal = errors.New("problem: terminal is isolated")

	// ErrUnreachable indicates an open cell or terminal that cannot be reached from the depot.
	ErrUnreachable = errors.New("problem: cell unreachable from depot")

	// ErrLeafExceedsCapacity indicates a single cell holding more leaves than MaxCluster.
	ErrLeafExceedsCapacity = errors.New("problem: cell exceeds cluster capacity")
)

// Cell addresses a grid cell by column X and row Y.
type Cell struct {
	X, Y int
}

// Weights scales the three cost components.
type Weights struct {
	Rake      float64
	Walk      float64
	Transport float64
}

// Params configures a Model.
//
// MaxCluster     – capacity of one cluster (sum of leaves, "Max_Val").
// RakeBatch      – leaves moved by one rake stroke; rake cost is charged per ⌈moved/RakeBatch⌉.
// TransportBatch – leaves hauled per depot round trip.
// Depot          – destination of all collected material.
// Start          – where the worker starts and ends (e.g. the tool shed).
// Weights        – component weights of the total cost.
// Shed           – blocked cells on which a terminal may nevertheless sit.
type Params struct {
	MaxCluster     int
	RakeBatch      int
	TransportBatch int
	Depot          Cell
	Start          Cell
	Weights        Weights
	Shed           []Cell
}

// DefaultWeights returns unit weights for all three components.
func DefaultWeights() Weights {
	return Weights{Rake: 1, Walk: 1, Transport: 1}
}
