package anneal

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	proposals   *prometheus.CounterVec
	best        prometheus.Gauge
	temperature prometheus.Gauge
}

// newMetrics registers the run metrics on reg, reusing collectors a previous
// run already registered. A nil reg gets a private registry.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	proposals, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "leafrake_anneal_proposals_total",
		Help: "Annealing proposals by operator and outcome (accepted, declined, rejected).",
	}, []string{"operator", "outcome"}))
	if err != nil {
		return nil, err
	}
	best, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "leafrake_anneal_best_score",
		Help: "Best search score of the most recent annealing run.",
	}))
	if err != nil {
		return nil, err
	}
	temperature, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "leafrake_anneal_temperature",
		Help: "Current annealing temperature.",
	}))
	if err != nil {
		return nil, err
	}

	return &metrics{proposals: proposals, best: best, temperature: temperature}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C

		return zero, fmt.Errorf("anneal: register metrics: %w", err)
	}

	return c, nil
}

func (m *metrics) proposal(op operator, outcome string) {
	m.proposals.WithLabelValues(op.String(), outcome).Inc()
}
