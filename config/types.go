package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/leafrake/anneal"
	"github.com/katalvlaran/leafrake/cost"
	"github.com/katalvlaran/leafrake/greedy"
	"github.com/katalvlaran/leafrake/hubcenter"
	"github.com/katalvlaran/leafrake/problem"
)

// Sentinel errors.
var (
	// ErrDecode indicates HCL that does not parse or does not fit the schema.
	ErrDecode = errors.New("config: decode")

	// ErrInvalid indicates a well-formed file with an invalid value.
	ErrInvalid = errors.New("config: invalid value")
)

// Algorithm selects the solver run by the CLI.
type Algorithm int

const (
	// Greedy runs the simultaneous cluster builder.
	Greedy Algorithm = iota
	// Anneal runs simulated annealing seeded with the greedy solution.
	Anneal
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Greedy:
		return "greedy"
	case Anneal:
		return "anneal"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "greedy" or "anneal" to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "greedy":
		return Greedy, nil
	case "anneal":
		return Anneal, nil
	default:
		return 0, fmt.Errorf("%w: algorithm %q", ErrInvalid, name)
	}
}

// Config is a decoded and validated file.
type Config struct {
	Model *problem.Model
	Solve Solve
}

// Solve holds the parsed solver settings.
type Solve struct {
	Algorithm   Algorithm
	Assignment  greedy.Selection
	Contact     greedy.Selection
	Hub         hubcenter.Strategy
	Consolidate bool
	Violation   cost.ViolationPolicy
	Anneal      AnnealSettings
}

// AnnealSettings mirrors the anneal block.
type AnnealSettings struct {
	Iterations  int
	Seed        int64
	Temperature float64
	Cooling     float64
	Cheap       bool
}

// DefaultSolve returns greedy NW/NW/SmallestIndex, the throw policy and
// the anneal package defaults.
func DefaultSolve() Solve {
	d := anneal.DefaultOptions()

	return Solve{
		Algorithm:  Greedy,
		Assignment: greedy.NW,
		Contact:    greedy.NW,
		Hub:        hubcenter.SmallestIndex,
		Violation:  cost.Throw,
		Anneal: AnnealSettings{
			Iterations:  d.Iterations,
			Seed:        d.Seed,
			Temperature: d.Temperature,
			Cooling:     d.Cooling,
		},
	}
}

// GreedyOptions converts the settings for greedy.Build.
func (s Solve) GreedyOptions() []greedy.Option {
	opts := []greedy.Option{
		greedy.WithAssignment(s.Assignment),
		greedy.WithContact(s.Contact),
		greedy.WithHubStrategy(s.Hub),
	}
	if s.Consolidate {
		opts = append(opts, greedy.WithConsolidation())
	}

	return opts
}

// AnnealOptions converts the settings for anneal.Run.
func (s Solve) AnnealOptions() []anneal.Option {
	return []anneal.Option{
		anneal.WithIterations(s.Anneal.Iterations),
		anneal.WithSeed(s.Anneal.Seed),
		anneal.WithTemperature(s.Anneal.Temperature),
		anneal.WithCooling(s.Anneal.Cooling),
		anneal.WithCheap(s.Anneal.Cheap),
		anneal.WithViolationPolicy(s.Violation),
	}
}
