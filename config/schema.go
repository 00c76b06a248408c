package config

// fileSchema is the gohcl decoding target.
type fileSchema struct {
	Problem problemBlock `hcl:"problem,block"`
	Solve   *solveBlock  `hcl:"solve,block"`
}

type problemBlock struct {
	Rows           [][]int       `hcl:"rows"`
	Depot          []int         `hcl:"depot"`
	Start          []int         `hcl:"start,optional"`
	MaxCluster     int           `hcl:"max_cluster"`
	RakeBatch      int           `hcl:"rake_batch"`
	TransportBatch int           `hcl:"transport_batch"`
	Connectivity   *int          `hcl:"connectivity,optional"`
	DiagonalWeight *float64      `hcl:"diagonal_weight,optional"`
	Shed           [][]int       `hcl:"shed,optional"`
	Weights        *weightsBlock `hcl:"weights,block"`
}

type weightsBlock struct {
	Rake      *float64 `hcl:"rake,optional"`
	Walk      *float64 `hcl:"walk,optional"`
	Transport *float64 `hcl:"transport,optional"`
}

type solveBlock struct {
	Algorithm   *string      `hcl:"algorithm,optional"`
	Assignment  *string      `hcl:"assignment,optional"`
	Contact     *string      `hcl:"contact,optional"`
	Hub         *string      `hcl:"hub,optional"`
	Consolidate *bool        `hcl:"consolidate,optional"`
	Violation   *string      `hcl:"violation,optional"`
	Anneal      *annealBlock `hcl:"anneal,block"`
}

type annealBlock struct {
	Iterations  *int     `hcl:"iterations,optional"`
	Seed        *int64   `hcl:"seed,optional"`
	Temperature *float64 `hcl:"temperature,optional"`
	Cooling     *float64 `hcl:"cooling,optional"`
	Cheap       *bool    `hcl:"cheap,optional"`
}
