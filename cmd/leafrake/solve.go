package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/leafrake/anneal"
	"github.com/katalvlaran/leafrake/config"
	"github.com/katalvlaran/leafrake/cost"
	"github.com/katalvlaran/leafrake/greedy"
	"github.com/katalvlaran/leafrake/internal/ctxlog"
)

func newSolveCommand() *cobra.Command {
	o := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build a raking plan for an HCL problem and print its cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return err
			}

			return runSolve(cmd, o)
		},
	}
	o.AddFlags(cmd.Flags())

	return cmd
}

func runSolve(cmd *cobra.Command, o *solveOptions) error {
	ctx := cmd.Context()
	log := ctxlog.FromContext(ctx)

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	if o.override != nil {
		cfg.Solve.Algorithm = *o.override
	}
	m := cfg.Model
	log.Info("problem loaded", "path", o.ConfigPath, "cells", m.Order(), "nodes", len(m.Nodes()),
		"leaves", m.TotalLeaves(), "algorithm", cfg.Solve.Algorithm.String())

	s, err := greedy.Build(m, cfg.Solve.GreedyOptions()...)
	if err != nil {
		return fmt.Errorf("greedy: %w", err)
	}
	b, err := cost.Evaluate(m, s, cfg.Solve.Violation)
	if err != nil {
		return err
	}
	log.Info("greedy plan built", "total", b.Total)

	if cfg.Solve.Algorithm == config.Anneal {
		res, err := anneal.Run(ctx, m, s, cfg.Solve.AnnealOptions()...)
		if err != nil {
			return err
		}
		s, b = res.Best, res.Cost
	}

	return writeReport(cmd.OutOrStdout(), m, s, b)
}
