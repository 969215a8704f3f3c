package domain

import (
	"sort"
	"time"
)

// ActionKind selects the behavior of a navigation step.
type ActionKind string

const (
	// ActionCredentials enters a username/password pair. The step value is
	// a comma-separated "user,password" string.
	ActionCredentials ActionKind = "credentials"
	// ActionEnter submits the current screen with no text entered.
	ActionEnter ActionKind = "enter"
	// ActionCommand types the step value as a literal command and submits.
	ActionCommand ActionKind = "command"
	// ActionOption types the step value as a menu option and submits.
	ActionOption ActionKind = "option"
	// ActionOptionWithID resolves placeholders in the step value against the
	// run's inputs, enters each comma-separated part, and submits.
	ActionOptionWithID ActionKind = "option_with_id"
	// ActionFormFill fills the screen's configured fields and submits. It is
	// always the flow's final step; its outcome decides the whole flow.
	ActionFormFill ActionKind = "form_fill"
)

// StepState tracks a navigation step through its lifecycle.
type StepState string

const (
	StepPending   StepState = "pending"
	StepExecuting StepState = "executing"
	StepCompleted StepState = "completed"
	StepSkipped   StepState = "skipped"
	StepFailed    StepState = "failed"
)

// NavigationStep is one scripted action gated by expected screen content.
type NavigationStep struct {
	// Order defines the execution sequence. Values need not be contiguous
	// but must be unique within a screen definition.
	Order int `json:"order" yaml:"order" mapstructure:"order"`

	// ScreenContains gates the step: if non-empty and absent from the
	// current screen text, the step is skipped. Empty matches any screen.
	ScreenContains string `json:"screen_contains,omitempty" yaml:"screen_contains,omitempty" mapstructure:"screen_contains"`

	Action ActionKind `json:"action" yaml:"action" mapstructure:"action"`

	// Value carries the action's payload; its semantics depend on Action.
	Value string `json:"value,omitempty" yaml:"value,omitempty" mapstructure:"value"`

	// Wait is the fixed pause after the action, covering host redraw latency.
	Wait time.Duration `json:"wait" yaml:"wait" mapstructure:"wait"`

	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
}

// ScreenDefinition bundles everything needed to automate one host screen:
// its fields, its navigation script and the menu option that reaches it.
type ScreenDefinition struct {
	Name        string           `json:"name" yaml:"name" mapstructure:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Option      string           `json:"option,omitempty" yaml:"option,omitempty" mapstructure:"option"`
	Fields      []FieldConfig    `json:"fields" yaml:"fields" mapstructure:"fields"`
	Steps       []NavigationStep `json:"steps" yaml:"steps" mapstructure:"steps"`
}

// Field returns the configuration for a field name, if present.
func (d *ScreenDefinition) Field(name string) (FieldConfig, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldConfig{}, false
}

// SortedSteps returns the navigation steps in ascending execution order
// without mutating the definition.
func (d *ScreenDefinition) SortedSteps() []NavigationStep {
	steps := make([]NavigationStep, len(d.Steps))
	copy(steps, d.Steps)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Order < steps[j].Order })
	return steps
}
