package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/multierr"

	"github.com/katalvlaran/leafrake/cost"
	"github.com/katalvlaran/leafrake/greedy"
	"github.com/katalvlaran/leafrake/gridgraph"
	"github.com/katalvlaran/leafrake/hubcenter"
	"github.com/katalvlaran/leafrake/problem"
)

// blockedValue is what the HCL variable blocked evaluates to.
const blockedValue = -1

// Load reads and validates the HCL file at path.
func Load(path string) (*Config, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, diags)
	}

	return decode(file, path)
}

// Parse validates HCL source; filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Config, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, filename, diags)
	}

	return decode(file, filename)
}

func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"blocked": cty.NumberIntVal(blockedValue),
		},
	}
}

func decode(file *hcl.File, name string) (*Config, error) {
	var raw fileSchema
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, diags)
	}

	solve, errs := buildSolve(raw.Solve)
	params, opts, perrs := buildParams(raw.Problem)
	errs = multierr.Append(errs, perrs)
	if errs != nil {
		return nil, errs
	}
	m, err := problem.FromRows(raw.Problem.Rows, opts, params)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", name, err)
	}

	return &Config{Model: m, Solve: solve}, nil
}

// cell converts an HCL [row, col] pair.
func cell(field string, rc []int) (problem.Cell, error) {
	if len(rc) != 2 {
		return problem.Cell{}, fmt.Errorf("%w: %s must be [row, col], got %v", ErrInvalid, field, rc)
	}

	return problem.Cell{X: rc[1], Y: rc[0]}, nil
}

func buildParams(b problemBlock) (problem.Params, gridgraph.GridOptions, error) {
	var errs error
	p := problem.Params{
		MaxCluster:     b.MaxCluster,
		RakeBatch:      b.RakeBatch,
		TransportBatch: b.TransportBatch,
		Weights:        problem.DefaultWeights(),
	}

	var err error
	if p.Depot, err = cell("depot", b.Depot); err != nil {
		errs = multierr.Append(errs, err)
	}
	p.Start = p.Depot
	if b.Start != nil {
		if p.Start, err = cell("start", b.Start); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	for i, rc := range b.Shed {
		c, err := cell(fmt.Sprintf("shed[%d]", i), rc)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		p.Shed = append(p.Shed, c)
	}

	if w := b.Weights; w != nil {
		if w.Rake != nil {
			p.Weights.Rake = *w.Rake
		}
		if w.Walk != nil {
			p.Weights.Walk = *w.Walk
		}
		if w.Transport != nil {
			p.Weights.Transport = *w.Transport
		}
	}

	opts := gridgraph.DefaultGridOptions()
	if b.Connectivity != nil {
		switch *b.Connectivity {
		case 4:
			opts.Conn = gridgraph.Conn4
		case 8:
			opts.Conn = gridgraph.Conn8
		default:
			errs = multierr.Append(errs, fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrInvalid, *b.Connectivity))
		}
	}
	if b.DiagonalWeight != nil {
		opts.DiagonalWeight = *b.DiagonalWeight
	}

	return p, opts, errs
}

func buildSolve(b *solveBlock) (Solve, error) {
	s := DefaultSolve()
	if b == nil {
		return s, nil
	}
	var errs error
	var err error
	if b.Algorithm != nil {
		if s.Algorithm, err = ParseAlgorithm(*b.Algorithm); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if b.Assignment != nil {
		if s.Assignment, err = greedy.ParseSelection(*b.Assignment); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: assignment: %w", ErrInvalid, err))
		}
	}
	if b.Contact != nil {
		if s.Contact, err = greedy.ParseSelection(*b.Contact); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: contact: %w", ErrInvalid, err))
		}
	}
	if b.Hub != nil {
		if s.Hub, err = hubcenter.ParseStrategy(*b.Hub); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: hub: %w", ErrInvalid, err))
		}
	}
	if b.Violation != nil {
		if s.Violation, err = cost.ParseViolationPolicy(*b.Violation); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: violation: %w", ErrInvalid, err))
		}
	}
	if b.Consolidate != nil {
		s.Consolidate = *b.Consolidate
	}
	if s.Hub == hubcenter.KeepHubs {
		errs = multierr.Append(errs, fmt.Errorf("%w: hub KeepHubs needs a previous solution", ErrInvalid))
	}

	if a := b.Anneal; a != nil {
		if a.Iterations != nil {
			s.Anneal.Iterations = *a.Iterations
		}
		if a.Seed != nil {
			s.Anneal.Seed = *a.Seed
		}
		if a.Temperature != nil {
			s.Anneal.Temperature = *a.Temperature
		}
		if a.Cooling != nil {
			s.Anneal.Cooling = *a.Cooling
		}
		if a.Cheap != nil {
			s.Anneal.Cheap = *a.Cheap
		}
	}
	if s.Anneal.Iterations < 0 || !(s.Anneal.Temperature > 0) || !(s.Anneal.Cooling > 0 && s.Anneal.Cooling <= 1) {
		errs = multierr.Append(errs, fmt.Errorf("%w: anneal iterations=%d temperature=%g cooling=%g",
			ErrInvalid, s.Anneal.Iterations, s.Anneal.Temperature, s.Anneal.Cooling))
	}

	return s, errs
}
