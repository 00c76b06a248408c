package harkdata

import (
	"errors"

	"github.com/katalvlaran/leafrake/problem"
	"github.com/katalvlaran/leafrake/solution"
)

// Sentinel errors.
var (
	// ErrNilModel indicates a nil *problem.Model.
	ErrNilModel = errors.New("harkdata: nil model")

	// ErrOverCapacity indicates an initial successor with a cluster above MaxCluster.
	ErrOverCapacity = errors.New("harkdata: cluster exceeds capacity")

	// ErrInconsistent is returned by Verify when a cache disagrees with a full recompute.
	ErrInconsistent = errors.New("harkdata: cache inconsistent with successor")
)

// State is one candidate solution with incrementally maintained caches.
type State struct {
	m     *problem.Model
	succ  solution.Successor
	preds [][]int
	role  []solution.Role
	acc   []int
	hub   []int
}
