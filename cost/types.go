package cost

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	// ErrCapacityExceeded matches every *CapacityError.
	ErrCapacityExceeded = errors.New("cost: capacity exceeded")

	// ErrUnsupportedPolicy indicates an unknown violation policy.
	ErrUnsupportedPolicy = errors.New("cost: unsupported violation policy")
)

// CapacityError reports the first cell whose load exceeded the cluster capacity.
type CapacityError struct {
	Node     int
	Load     int
	Capacity int
}

// Error implements error.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("cost: capacity exceeded at cell %d: load %d > %d", e.Node, e.Load, e.Capacity)
}

// Unwrap makes errors.Is(err, ErrCapacityExceeded) hold.
func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// ViolationPolicy decides what a capacity violation does to an evaluation.
type ViolationPolicy int

const (
	// Throw aborts with a *CapacityError.
	Throw ViolationPolicy = iota
	// Infinite aborts with +Inf in every component.
	Infinite
	// Ignore continues; the resulting cost may be misleading.
	Ignore
)

var policyNames = [...]string{
	Throw:    "throw",
	Infinite: "infinite",
	Ignore:   "ignore",
}

// String returns the canonical policy name.
func (p ViolationPolicy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("ViolationPolicy(%d)", int(p))
	}

	return policyNames[p]
}

// ParseViolationPolicy maps "throw", "infinite" or "ignore" to its policy.
func ParseViolationPolicy(name string) (ViolationPolicy, error) {
	for i, n := range policyNames {
		if n == name {
			return ViolationPolicy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedPolicy, name)
}

func (p ViolationPolicy) valid() bool { return p >= Throw && p <= Ignore }

// Breakdown is the cost tuple of one plan.
type Breakdown struct {
	Rake      float64
	Walk      float64
	Transport float64
	Total     float64
}

// Inf returns the breakdown produced by the Infinite policy.
func Inf() Breakdown {
	inf := math.Inf(1)

	return Breakdown{Rake: inf, Walk: inf, Transport: inf, Total: inf}
}

// IsInf reports whether the total is +Inf.
func (b Breakdown) IsInf() bool { return math.IsInf(b.Total, 1) }

// String formats the breakdown for reports.
func (b Breakdown) String() string {
	return fmt.Sprintf("rake=%.3f walk=%.3f transport=%.3f total=%.3f", b.Rake, b.Walk, b.Transport, b.Total)
}
