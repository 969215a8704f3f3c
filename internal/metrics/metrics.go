// Package metrics exposes Prometheus instruments for the automation engine,
// wired in as lifecycle hooks so the engine core stays free of metric code.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/greenscreenhq/greenscreen/pkg/domain"
)

// Collector bundles the engine's Prometheus instruments.
type Collector struct {
	StepsTotal   *prometheus.CounterVec
	FlowDuration *prometheus.HistogramVec
}

// NewCollector creates and registers the instruments on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		StepsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "greenscreen_steps_total",
				Help: "Navigation steps executed, by screen, action and final state.",
			},
			[]string{"screen", "action", "state"},
		),
		FlowDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "greenscreen_flow_duration_seconds",
				Help:    "Wall-clock duration of whole flows, by screen and outcome.",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			},
			[]string{"screen", "outcome"},
		),
	}
	reg.MustRegister(c.StepsTotal, c.FlowDuration)
	return c
}

// Hooks returns lifecycle hooks that feed the instruments.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStepEnd: func(_ context.Context, ev *domain.StepEvent) {
			c.StepsTotal.WithLabelValues(ev.Screen, string(ev.Action), string(ev.State)).Inc()
		},
		OnFlowEnd: func(_ context.Context, ev *domain.FlowEvent) {
			outcome := "failure"
			if ev.Success {
				outcome = "success"
			}
			c.FlowDuration.WithLabelValues(ev.Screen, outcome).Observe(ev.Duration.Seconds())
		},
	}
}
