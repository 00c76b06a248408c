package anneal

import (
	"errors"
	"math/rand"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/leafrake/cost"
	"github.com/katalvlaran/leafrake/solution"
)

// Sentinel errors.
var (
	// ErrNilModel indicates a nil *problem.Model.
	ErrNilModel = errors.New("anneal: nil model")

	// ErrBadOptions indicates a non-positive temperature, a cooling factor
	// outside (0,1] or a negative iteration count.
	ErrBadOptions = errors.New("anneal: invalid options")
)

// Options configures Run.
type Options struct {
	Iterations  int
	Temperature float64
	Cooling     float64
	Cheap       bool
	Policy      cost.ViolationPolicy
	Seed        int64
	Rand        *rand.Rand
	Registerer  prometheus.Registerer
}

// Option is a functional option.
type Option func(*Options)

// DefaultOptions returns 1000 iterations, T0 = 10, cooling 0.995, full
// scoring under cost.Throw, seed 1 and a private metrics registry.
func DefaultOptions() Options {
	return Options{
		Iterations:  1000,
		Temperature: 10,
		Cooling:     0.995,
		Policy:      cost.Throw,
		Seed:        1,
	}
}

// WithIterations sets the number of proposals.
func WithIterations(n int) Option { return func(o *Options) { o.Iterations = n } }

// WithTemperature sets the starting temperature.
func WithTemperature(t float64) Option { return func(o *Options) { o.Temperature = t } }

// WithCooling sets the per-iteration cooling factor.
func WithCooling(f float64) Option { return func(o *Options) { o.Cooling = f } }

// WithCheap scores candidates without the walk term.
func WithCheap(cheap bool) Option { return func(o *Options) { o.Cheap = cheap } }

// WithViolationPolicy sets the policy passed to the evaluator.
func WithViolationPolicy(p cost.ViolationPolicy) Option { return func(o *Options) { o.Policy = p } }

// WithSeed seeds a private *rand.Rand. Ignored when WithRand is given.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithRand shares an existing random stream.
func WithRand(r *rand.Rand) Option { return func(o *Options) { o.Rand = r } }

// WithRegisterer registers the run metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option { return func(o *Options) { o.Registerer = reg } }

// Result summarizes one run.
type Result struct {
	RunID      string
	Best       solution.Successor
	Cost       cost.Breakdown
	Score      float64
	Iterations int
	Accepted   int
	Improved   int
	Rejected   int
}

// operator names a harkdata mutation.
type operator int

const (
	opRetarget operator = iota
	opReroot
	opSplit
	opMerge
	numOperators
)

var operatorNames = [numOperators]string{
	opRetarget: "retarget",
	opReroot:   "reroot",
	opSplit:    "split",
	opMerge:    "merge",
}

func (op operator) String() string { return operatorNames[op] }
