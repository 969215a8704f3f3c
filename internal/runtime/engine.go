package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/greenscreenhq/greenscreen/internal/logging"
	"github.com/greenscreenhq/greenscreen/internal/screen"
	"github.com/greenscreenhq/greenscreen/pkg/domain"
	"github.com/greenscreenhq/greenscreen/pkg/ports"
)

// Engine orchestrates one navigation flow against one terminal session.
// It is synchronous by design: every step blocks on the session's
// send-wait-read cycle before the next may begin, because the terminal is
// stateful and position-dependent. The engine holds no mutable state across
// flows, so N concurrent flows are safe against N independent sessions.
type Engine struct {
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	recorder ports.Recorder
	sleep    Sleeper
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithRecorder sets the diagnostic screen capture sink.
func WithRecorder(rec ports.Recorder) EngineOption {
	return func(e *Engine) {
		e.recorder = rec
	}
}

// WithSleeper replaces the wait implementation. Tests use a no-op.
func WithSleeper(s Sleeper) EngineOption {
	return func(e *Engine) {
		if s != nil {
			e.sleep = s
		}
	}
}

// NewEngine creates an orchestrator with the given options.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
		sleep:  DefaultSleeper,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes a screen definition's navigation flow with the submitted
// inputs against a live session.
//
// Validation runs first and collects every failure; if any field is invalid
// the session is never touched. Afterwards each step is gated on expected
// screen content, classified before and after execution, and the flow
// aborts on the first host error. A form-fill step is terminal: its
// post-submission classification decides the whole flow.
//
// The returned result always carries the messages accumulated so far, even
// when err is non-nil (a transport failure).
func (e *Engine) Run(ctx context.Context, def *domain.ScreenDefinition, inputs *domain.Inputs, sess ports.Session) (*domain.ExecutionResult, error) {
	runID := uuid.NewString()
	result := domain.NewExecutionResult(runID, def.Name)
	logger := e.logger.With("run_id", runID, "screen", def.Name)
	start := time.Now()

	e.emitFlow(ctx, domain.EventFlowStart, runID, def.Name, false, 0)
	defer func() {
		e.emitFlow(ctx, domain.EventFlowEnd, runID, def.Name, result.Success, time.Since(start))
	}()

	ok, msgs := ValidateAll(def, inputs)
	for _, m := range msgs {
		result.Append(m)
	}
	if !ok {
		logger.Error("field validation failed, flow not started")
		result.Append("field validation failed; flow not started")
		return result, nil
	}

	exec := &Executor{
		session:  sess,
		sleep:    e.sleep,
		recorder: e.recorder,
		logger:   logger,
	}

	for _, step := range def.SortedSteps() {
		logger.Info("executing step", "order", step.Order, "action", step.Action, "description", step.Description)
		e.emitStep(ctx, domain.EventStepStart, runID, def.Name, step, domain.StepPending, "")

		raw, err := sess.GetScreen()
		if err != nil {
			result.Appendf("step %d: transport failure: %v", step.Order, err)
			e.emitStep(ctx, domain.EventStepEnd, runID, def.Name, step, domain.StepFailed, err.Error())
			return result, fmt.Errorf("read screen before step %d: %w", step.Order, err)
		}
		scr := screen.New(raw)
		exec.record(ctx, fmt.Sprintf("step_%02d_%s", step.Order, step.Action), raw)

		cls := Classify(scr)
		if cls.IsPrompt() {
			scr, cls, err = exec.resolvePrompt(ctx)
			if err != nil {
				result.Appendf("step %d: transport failure: %v", step.Order, err)
				e.emitStep(ctx, domain.EventStepEnd, runID, def.Name, step, domain.StepFailed, err.Error())
				return result, err
			}
			if cls.IsPrompt() {
				result.Appendf("step %d: %s", step.Order, domain.ErrPromptUnresolved)
				e.emitStep(ctx, domain.EventStepEnd, runID, def.Name, step, domain.StepFailed, domain.ErrPromptUnresolved.Error())
				return result, nil
			}
			result.Appendf("step %d: reactivation prompt confirmed", step.Order)
		}
		if cls.IsError() {
			result.Appendf("step %d: pre-step %s", step.Order, cls.Message)
			e.emitStep(ctx, domain.EventStepEnd, runID, def.Name, step, domain.StepFailed, cls.Message)
			return result, nil
		}

		if step.Action == domain.ActionFormFill {
			if ok, _ := screen.Text(step.ScreenContains)(scr); step.ScreenContains != "" && !ok {
				result.Appendf("step %d: not on expected screen (looking for %q), skipping", step.Order, step.ScreenContains)
				e.emitStep(ctx, domain.EventStepEnd, runID, def.Name, step, domain.StepSkipped, "")
				continue
			}
			cls, err := exec.FillForm(ctx, def, inputs)
			if err != nil {
				result.Appendf("step %d: transport failure: %v", step.Order, err)
				e.emitStep(ctx, domain.EventStepEnd, runID, def.Name, step, domain.StepFailed, err.Error())
				return result, err
			}
			result.Append(cls.Message)
			result.Success = cls.Kind == domain.ClassSuccess
			state := domain.StepCompleted
			if !result.Success {
				state = domain.StepFailed
			}
			e.emitStep(ctx, domain.EventStepEnd, runID, def.Name, step, state, cls.Message)
			return result, nil
		}

		state, stepMsgs, err := exec.Execute(ctx, step, scr, inputs)
		for _, m := range stepMsgs {
			result.Append(m)
		}
		e.emitStep(ctx, domain.EventStepEnd, runID, def.Name, step, state, "")
		if err != nil {
			return result, err
		}
		if state == domain.StepFailed {
			return result, nil
		}
	}

	result.Append("screen processing completed successfully")
	result.Success = true
	return result, nil
}

// Validate runs offline field validation without touching any session.
func (e *Engine) Validate(def *domain.ScreenDefinition, inputs *domain.Inputs) (bool, []string) {
	return ValidateAll(def, inputs)
}

func (e *Engine) emitFlow(ctx context.Context, t domain.EventType, runID, screenName string, success bool, d time.Duration) {
	var fn func(context.Context, *domain.FlowEvent)
	switch t {
	case domain.EventFlowStart:
		fn = e.hooks.OnFlowStart
	case domain.EventFlowEnd:
		fn = e.hooks.OnFlowEnd
	}
	if fn == nil {
		return
	}
	fn(ctx, &domain.FlowEvent{
		Timestamp: time.Now(),
		Type:      t,
		RunID:     runID,
		Screen:    screenName,
		Success:   success,
		Duration:  d,
	})
}

func (e *Engine) emitStep(ctx context.Context, t domain.EventType, runID, screenName string, step domain.NavigationStep, state domain.StepState, msg string) {
	var fn func(context.Context, *domain.StepEvent)
	switch t {
	case domain.EventStepStart:
		fn = e.hooks.OnStepStart
	case domain.EventStepEnd:
		fn = e.hooks.OnStepEnd
	}
	if fn == nil {
		return
	}
	fn(ctx, &domain.StepEvent{
		Timestamp: time.Now(),
		Type:      t,
		RunID:     runID,
		Screen:    screenName,
		Order:     step.Order,
		Action:    step.Action,
		State:     state,
		Message:   msg,
	})
}
