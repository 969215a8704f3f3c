package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/greenscreenhq/greenscreen/internal/screen"
	"github.com/greenscreenhq/greenscreen/pkg/domain"
	"github.com/greenscreenhq/greenscreen/pkg/ports"
)

// Sleeper pauses for a fixed interval, honoring context cancellation.
// Tests inject a no-op so flows never sleep for real.
type Sleeper func(ctx context.Context, d time.Duration)

// DefaultSleeper waits with a timer and returns early on context cancel.
func DefaultSleeper(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

const (
	// reactivationWait is the fixed pause after confirming a reactivation
	// prompt, before the screen is re-read.
	reactivationWait = time.Second
	// submitWait is the fixed pause after form submission.
	submitWait = time.Second
)

// Executor runs one navigation step at a time against a live session. It
// holds no state between steps beyond the session itself.
type Executor struct {
	session  ports.Session
	sleep    Sleeper
	recorder ports.Recorder
	logger   *slog.Logger
}

// Execute runs a single non-form step through its state machine:
// pending -> executing -> completed | skipped | failed. The returned
// messages belong in the flow's outcome log in order. A non-nil error is
// always a transport failure and aborts the flow.
func (x *Executor) Execute(ctx context.Context, step domain.NavigationStep, scr *screen.Screen, inputs *domain.Inputs) (domain.StepState, []string, error) {
	if step.ScreenContains != "" {
		if ok, want := screen.Text(step.ScreenContains)(scr); !ok {
			msg := fmt.Sprintf("step %d: not on expected screen (looking for %q), skipping", step.Order, step.ScreenContains)
			x.logger.Info("step skipped", "order", step.Order, "expected", want)
			return domain.StepSkipped, []string{msg}, nil
		}
	}

	messages, failMsg, err := x.dispatch(step, inputs)
	if err != nil {
		return domain.StepFailed, messages, fmt.Errorf("step %d: %w", step.Order, err)
	}
	if failMsg != "" {
		return domain.StepFailed, append(messages, failMsg), nil
	}

	x.sleep(ctx, step.Wait)

	raw, err := x.session.GetScreen()
	if err != nil {
		return domain.StepFailed, messages, fmt.Errorf("step %d: read screen after action: %w", step.Order, err)
	}
	cls := Classify(screen.New(raw))

	if cls.IsPrompt() {
		_, cls, err = x.resolvePrompt(ctx)
		if err != nil {
			return domain.StepFailed, messages, fmt.Errorf("step %d: %w", step.Order, err)
		}
		if cls.IsPrompt() {
			messages = append(messages, fmt.Sprintf("step %d: %s", step.Order, domain.ErrPromptUnresolved))
			return domain.StepFailed, messages, nil
		}
		messages = append(messages, fmt.Sprintf("step %d: reactivation prompt confirmed", step.Order))
	}

	if cls.IsError() {
		x.logger.Error("host error after step", "order", step.Order, "message", cls.Message)
		messages = append(messages, fmt.Sprintf("step %d: %s", step.Order, cls.Message))
		return domain.StepFailed, messages, nil
	}

	messages = append(messages, fmt.Sprintf("step %d completed", step.Order))
	return domain.StepCompleted, messages, nil
}

// dispatch performs the step's keystrokes. It returns log messages, a
// non-empty failure message for configuration problems, or a transport error.
func (x *Executor) dispatch(step domain.NavigationStep, inputs *domain.Inputs) (messages []string, failMsg string, err error) {
	switch step.Action {
	case domain.ActionCredentials:
		parts := strings.SplitN(step.Value, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Sprintf("step %d: credentials value must be \"user,password\"", step.Order), nil
		}
		if err := x.session.MoveToFirstField(); err != nil {
			return nil, "", err
		}
		if err := x.session.SendText(parts[0]); err != nil {
			return nil, "", err
		}
		if err := x.session.SendTab(); err != nil {
			return nil, "", err
		}
		if err := x.session.SendText(parts[1]); err != nil {
			return nil, "", err
		}
		if err := x.session.SendEnter(); err != nil {
			return nil, "", err
		}
		messages = append(messages, fmt.Sprintf("step %d: entered credentials and submitted", step.Order))

	case domain.ActionEnter:
		if err := x.session.SendEnter(); err != nil {
			return nil, "", err
		}
		messages = append(messages, fmt.Sprintf("step %d: pressed enter", step.Order))

	case domain.ActionCommand:
		if err := x.sendAndSubmit(step.Value); err != nil {
			return nil, "", err
		}
		messages = append(messages, fmt.Sprintf("step %d: executed command: %s", step.Order, step.Value))

	case domain.ActionOption:
		if err := x.sendAndSubmit(step.Value); err != nil {
			return nil, "", err
		}
		messages = append(messages, fmt.Sprintf("step %d: selected option: %s", step.Order, step.Value))

	case domain.ActionOptionWithID:
		resolved, warnings := ResolvePlaceholders(step.Value, inputs)
		for _, w := range warnings {
			x.logger.Warn("placeholder resolution", "order", step.Order, "warning", w)
			messages = append(messages, fmt.Sprintf("step %d: warning: %s", step.Order, w))
		}
		for i, part := range strings.Split(resolved, ",") {
			if i > 0 {
				if err := x.session.SendTab(); err != nil {
					return messages, "", err
				}
			}
			if err := x.session.SendText(part); err != nil {
				return messages, "", err
			}
		}
		if err := x.session.SendEnter(); err != nil {
			return messages, "", err
		}
		messages = append(messages, fmt.Sprintf("step %d: selected option with values: %s", step.Order, resolved))

	default:
		return nil, fmt.Sprintf("step %d: unknown action kind: %s", step.Order, step.Action), nil
	}

	return messages, "", nil
}

func (x *Executor) sendAndSubmit(text string) error {
	if err := x.session.SendText(text); err != nil {
		return err
	}
	return x.session.SendEnter()
}

// FillForm fills every configured field in configuration order and submits.
// Per-field validation here is log-only: upstream validation already gated
// the flow, so an invalid field is skipped with a warning instead of
// aborting mid-form, keeping its untouched-field tab plan so the cursor
// stays aligned for the fields after it. The post-submission classification is the procedure's
// result; its message and success flag become the whole flow's outcome.
func (x *Executor) FillForm(ctx context.Context, def *domain.ScreenDefinition, inputs *domain.Inputs) (domain.Classification, error) {
	if err := x.session.MoveToFirstField(); err != nil {
		return domain.Classification{}, fmt.Errorf("form fill: %w", err)
	}

	for _, cfg := range def.Fields {
		value, _ := inputs.Get(cfg.Name)
		if ok, msg := ValidateField(cfg, value); !ok {
			// Enter nothing, but still tab past the field: every later
			// field's position depends on the cursor moving on schedule.
			x.logger.Warn("skipping invalid field", "field", cfg.Name, "reason", msg)
			value = ""
		}
		if value != "" {
			if err := x.session.SendText(value); err != nil {
				return domain.Classification{}, fmt.Errorf("form fill: enter %s: %w", cfg.Name, err)
			}
		}
		for i := 0; i < PlanTabs(cfg, value); i++ {
			if err := x.session.SendTab(); err != nil {
				return domain.Classification{}, fmt.Errorf("form fill: tab after %s: %w", cfg.Name, err)
			}
		}
	}

	x.capture(ctx, "before_submission")

	if err := x.session.SendEnter(); err != nil {
		return domain.Classification{}, fmt.Errorf("form fill: submit: %w", err)
	}
	x.sleep(ctx, submitWait)

	raw, err := x.session.GetScreen()
	if err != nil {
		return domain.Classification{}, fmt.Errorf("form fill: read final screen: %w", err)
	}
	x.record(ctx, "after_submission", raw)

	cls := Classify(screen.New(raw))
	if cls.IsPrompt() {
		_, cls, err = x.resolvePrompt(ctx)
		if err != nil {
			return domain.Classification{}, fmt.Errorf("form fill: %w", err)
		}
		if cls.IsPrompt() {
			return domain.Classification{Kind: domain.ClassError, Message: domain.ErrPromptUnresolved.Error()}, nil
		}
	}
	return cls, nil
}

// resolvePrompt answers a reactivation prompt with a literal yes, waits for
// the host to redraw, and re-classifies. It runs at most once per call
// site; a prompt that survives it is surfaced, never retried.
func (x *Executor) resolvePrompt(ctx context.Context) (*screen.Screen, domain.Classification, error) {
	x.logger.Info("confirming reactivation prompt")
	if err := x.session.SendText("Y"); err != nil {
		return nil, domain.Classification{}, fmt.Errorf("confirm reactivation: %w", err)
	}
	if err := x.session.SendEnter(); err != nil {
		return nil, domain.Classification{}, fmt.Errorf("confirm reactivation: %w", err)
	}
	x.sleep(ctx, reactivationWait)

	raw, err := x.session.GetScreen()
	if err != nil {
		return nil, domain.Classification{}, fmt.Errorf("confirm reactivation: read screen: %w", err)
	}
	scr := screen.New(raw)
	return scr, Classify(scr), nil
}

// capture records the current screen under a label, best effort.
func (x *Executor) capture(ctx context.Context, label string) {
	raw, err := x.session.GetScreen()
	if err != nil {
		x.logger.Warn("screen capture read failed", "label", label, "err", err)
		return
	}
	x.record(ctx, label, raw)
}

func (x *Executor) record(ctx context.Context, label, raw string) {
	if x.recorder == nil {
		return
	}
	if err := x.recorder.Record(ctx, label, raw); err != nil {
		x.logger.Warn("screen capture failed", "label", label, "err", err)
	}
}
