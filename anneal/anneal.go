package anneal

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/leafrake/cost"
	"github.com/katalvlaran/leafrake/harkdata"
	"github.com/katalvlaran/leafrake/internal/ctxlog"
	"github.com/katalvlaran/leafrake/problem"
	"github.com/katalvlaran/leafrake/solution"
)

// Run anneals from initial, or from harkdata.NewRandom when initial is nil.
//
// Errors: ErrNilModel, ErrBadOptions, errors from harkdata.New for an invalid
// initial successor, evaluator errors, and the ctx error when cancelled. On
// cancellation the returned Result still holds the best solution found.
func Run(ctx context.Context, m *problem.Model, initial solution.Successor, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if m == nil {
		return Result{}, ErrNilModel
	}
	if o.Iterations < 0 || !(o.Temperature > 0) || !(o.Cooling > 0 && o.Cooling <= 1) {
		return Result{}, fmt.Errorf("%w: iterations=%d temperature=%g cooling=%g",
			ErrBadOptions, o.Iterations, o.Temperature, o.Cooling)
	}
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(o.Seed))
	}
	met, err := newMetrics(o.Registerer)
	if err != nil {
		return Result{}, err
	}

	var cur *harkdata.State
	if initial == nil {
		cur, err = harkdata.NewRandom(m, rng)
	} else {
		cur, err = harkdata.New(m, initial)
	}
	if err != nil {
		return Result{}, err
	}

	r := runner{m: m, opts: o, rng: rng, met: met}
	curScore, err := r.score(cur)
	if err != nil {
		return Result{}, err
	}

	res := Result{RunID: uuid.NewString(), Best: cur.Successor(), Score: curScore}
	log := ctxlog.FromContext(ctx).With("run", res.RunID)
	log.Info("anneal started", "iterations", o.Iterations, "temperature", o.Temperature,
		"cooling", o.Cooling, "cheap", o.Cheap, "score", curScore)
	met.best.Set(curScore)

	temp := o.Temperature
	var stopErr error
	for i := 0; i < o.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			stopErr = fmt.Errorf("anneal: stopped after %d iterations: %w", i, err)
			break
		}
		res.Iterations++

		cand := cur.Clone()
		op := operator(rng.Intn(int(numOperators)))
		if !r.propose(cand, op) {
			res.Rejected++
			met.proposal(op, "rejected")
		} else {
			s, err := r.score(cand)
			if err != nil {
				return res, err
			}
			if r.accept(s-curScore, temp) {
				cur, curScore = cand, s
				res.Accepted++
				met.proposal(op, "accepted")
				if s < res.Score {
					res.Best, res.Score = cand.Successor(), s
					res.Improved++
					met.best.Set(s)
					log.Debug("anneal improved", "iteration", i, "operator", op.String(), "score", s)
				}
			} else {
				met.proposal(op, "declined")
			}
		}
		temp *= o.Cooling
		met.temperature.Set(temp)
	}

	res.Cost, err = cost.Evaluate(m, res.Best, o.Policy)
	if err != nil {
		return res, err
	}
	log.Info("anneal finished", "iterations", res.Iterations, "accepted", res.Accepted,
		"improved", res.Improved, "rejected", res.Rejected, "total", res.Cost.Total)

	return res, stopErr
}

type runner struct {
	m    *problem.Model
	opts Options
	rng  *rand.Rand
	met  *metrics
}

func (r *runner) score(st *harkdata.State) (float64, error) {
	var (
		b   cost.Breakdown
		err error
	)
	if r.opts.Cheap {
		b, err = cost.EvaluateCheapWith(r.m, st.Successor(), st.Accumulation(), r.opts.Policy)
	} else {
		b, err = cost.Evaluate(r.m, st.Successor(), r.opts.Policy)
	}

	return b.Total, err
}

// accept is the Metropolis rule; +Inf candidates are never taken.
func (r *runner) accept(delta, temp float64) bool {
	switch {
	case math.IsNaN(delta) || math.IsInf(delta, 1):
		return false
	case delta <= 0:
		return true
	default:
		return r.rng.Float64() < math.Exp(-delta/temp)
	}
}

// propose applies op at a random open cell of st.
func (r *runner) propose(st *harkdata.State, op operator) bool {
	nodes := r.m.Nodes()
	v := nodes[r.rng.Intn(len(nodes))]
	nb := r.m.Neighbors(v)
	switch op {
	case opReroot:
		return st.RerootCluster(v)
	case opSplit:
		return st.SplitCluster(v)
	}
	if len(nb) == 0 {
		return false
	}
	u := nb[r.rng.Intn(len(nb))]
	if op == opMerge {
		return st.MergeClusters(v, u)
	}

	return st.Retarget(v, u)
}
