package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/greenscreenhq/greenscreen/internal/metrics"
	"github.com/greenscreenhq/greenscreen/pkg/domain"
)

func TestCollector_CountsSteps(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	hooks := c.Hooks()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		hooks.OnStepEnd(ctx, &domain.StepEvent{
			Screen: "add-customer",
			Action: domain.ActionCommand,
			State:  domain.StepCompleted,
		})
	}
	hooks.OnStepEnd(ctx, &domain.StepEvent{
		Screen: "add-customer",
		Action: domain.ActionFormFill,
		State:  domain.StepFailed,
	})

	completed := testutil.ToFloat64(c.StepsTotal.WithLabelValues("add-customer", "command", "completed"))
	if completed != 3 {
		t.Errorf("completed command steps = %v, want 3", completed)
	}
	failed := testutil.ToFloat64(c.StepsTotal.WithLabelValues("add-customer", "form_fill", "failed"))
	if failed != 1 {
		t.Errorf("failed form_fill steps = %v, want 1", failed)
	}
}

func TestCollector_ObservesFlowDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	hooks := c.Hooks()

	hooks.OnFlowEnd(context.Background(), &domain.FlowEvent{
		Screen:   "add-customer",
		Success:  true,
		Duration: 2 * time.Second,
	})

	count := testutil.CollectAndCount(c.FlowDuration)
	if count != 1 {
		t.Errorf("flow duration series = %d, want 1", count)
	}
}
