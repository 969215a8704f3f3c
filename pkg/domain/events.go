package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventFlowStart EventType = "flow_start"
	EventFlowEnd   EventType = "flow_end"
	EventStepStart EventType = "step_start"
	EventStepEnd   EventType = "step_end"
)

// StepEvent describes one navigation step entering or leaving execution.
type StepEvent struct {
	Timestamp time.Time  `json:"timestamp"`
	Type      EventType  `json:"type"`
	RunID     string     `json:"run_id"`
	Screen    string     `json:"screen"`
	Order     int        `json:"order"`
	Action    ActionKind `json:"action"`
	State     StepState  `json:"state"`
	Message   string     `json:"message,omitempty"`
}

// FlowEvent describes a whole flow starting or finishing.
type FlowEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      EventType     `json:"type"`
	RunID     string        `json:"run_id"`
	Screen    string        `json:"screen"`
	Success   bool          `json:"success,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability. Any field may
// be nil; the engine skips unset hooks.
type LifecycleHooks struct {
	OnFlowStart func(context.Context, *FlowEvent)
	OnFlowEnd   func(context.Context, *FlowEvent)
	OnStepStart func(context.Context, *StepEvent)
	OnStepEnd   func(context.Context, *StepEvent)
}
