// SPDX-License-Identifier: MIT

package logistics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "lvroute"
	metricsSubsystem = "planner"
)

// Plan outcomes, used as the "outcome" label.
const (
	OutcomeRouted   = "routed"
	OutcomeFallback = "fallback"
	OutcomeFailed   = "failed"
)

// Metrics holds the planner's Prometheus collectors.
type Metrics struct {
	// PlansTotal counts plan attempts by criterion and outcome.
	PlansTotal *prometheus.CounterVec

	// FallbacksTotal counts reroutes to the fallback hub by reason.
	FallbacksTotal *prometheus.CounterVec

	// PlannedStops observes the number of stops in successful plans.
	PlannedStops prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		PlansTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "plans_total",
				Help:      "Total number of route plans by criterion and outcome.",
			},
			[]string{"criterion", "outcome"},
		),
		FallbacksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "fallbacks_total",
				Help:      "Total number of deliveries rerouted to the fallback hub.",
			},
			[]string{"reason"},
		),
		PlannedStops: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "stops",
				Help:      "Number of stops on planned routes, origin included.",
				Buckets:   prometheus.LinearBuckets(1, 2, 10),
			},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.PlansTotal, m.FallbacksTotal, m.PlannedStops} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("logistics: register metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) observePlan(c Criterion, outcome string, stops int) {
	if m == nil {
		return
	}
	m.PlansTotal.WithLabelValues(string(c), outcome).Inc()
	if outcome != OutcomeFailed {
		m.PlannedStops.Observe(float64(stops))
	}
}

func (m *Metrics) observeFallback(reason string) {
	if m == nil {
		return
	}
	m.FallbacksTotal.WithLabelValues(reason).Inc()
}
