// Package config loads a leaf-raking problem and its solver settings from HCL.
//
// A file holds one problem block and an optional solve block:
//
//	problem {
//	  rows            = [[2, 0, 3, blocked]]
//	  depot           = [0, 1]          # [row, col]
//	  max_cluster     = 5
//	  rake_batch      = 10
//	  transport_batch = 20
//	  weights { rake = 1  walk = 1  transport = 1 }
//	}
//	solve {
//	  algorithm = "greedy"
//	  hub       = "Median"
//	}
//
// The variable blocked (= -1) marks obstacle cells. Every validation problem
// in a file is reported at once; the returned error combines them and each
// part matches ErrInvalid or the problem package sentinel that caused it.
package config
