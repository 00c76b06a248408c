// Package anneal drives simulated annealing over harkdata operators.
//
// Each iteration clones the current state, applies one random operator
// (retarget, reroot, split or merge), scores the candidate and accepts it
// when it is cheaper or, with probability exp(-Δ/T), when it is not. The
// temperature is multiplied by the cooling factor after every iteration.
//
// Scoring uses cost.Evaluate, or cost.EvaluateCheapWith when WithCheap is
// set. The returned Result always carries the full evaluation of the best
// successor seen.
//
// Run checks ctx between iterations and returns the best solution so far
// together with the context error. Progress is logged through the logger in
// ctx (see internal/ctxlog) and counted in Prometheus metrics registered on
// the configured Registerer.
package anneal
