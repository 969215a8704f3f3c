package greenscreen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/greenscreenhq/greenscreen/internal/runtime"
	"github.com/greenscreenhq/greenscreen/internal/screen"
	"github.com/greenscreenhq/greenscreen/pkg/domain"
	"github.com/greenscreenhq/greenscreen/pkg/ports"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Engine is the high-level entry point for the greenscreen library. It
// wraps the internal orchestrator and provides a simplified API for
// consumers.
type Engine struct {
	runtime *runtime.Engine
	store   ports.ConfigStore

	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	recorder ports.Recorder
	sleeper  Sleeper
}

// Sleeper pauses between terminal interactions. Tests inject a no-op so
// flows never wait for real.
type Sleeper func(ctx context.Context, d time.Duration)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithRecorder sets the diagnostic screen capture sink.
func WithRecorder(rec ports.Recorder) Option {
	return func(e *Engine) {
		e.recorder = rec
	}
}

// WithStore injects a configuration store, enabling RunScreen.
func WithStore(store ports.ConfigStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithSleeper replaces the wait implementation.
func WithSleeper(s Sleeper) Option {
	return func(e *Engine) {
		e.sleeper = s
	}
}

// New initializes an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithHooks(e.hooks),
	}
	if e.logger != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithLogger(e.logger))
	}
	if e.recorder != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithRecorder(e.recorder))
	}
	if e.sleeper != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithSleeper(runtime.Sleeper(e.sleeper)))
	}

	e.runtime = runtime.NewEngine(runtimeOpts...)
	return e
}

// Run executes a screen definition's navigation flow against a session.
// The returned result carries the ordered outcome log even when the flow
// aborted; a non-nil error is always a transport failure.
func (e *Engine) Run(ctx context.Context, def *domain.ScreenDefinition, inputs *domain.Inputs, sess ports.Session) (*domain.ExecutionResult, error) {
	return e.runtime.Run(ctx, def, inputs, sess)
}

// RunScreen loads a definition by name from the configured store and runs
// it. Requires WithStore.
func (e *Engine) RunScreen(ctx context.Context, name string, inputs *domain.Inputs, sess ports.Session) (*domain.ExecutionResult, error) {
	if e.store == nil {
		return nil, fmt.Errorf("RunScreen requires a configuration store (use WithStore)")
	}
	def, err := e.store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return e.runtime.Run(ctx, def, inputs, sess)
}

// Validate runs offline field validation without touching any session.
func (e *Engine) Validate(def *domain.ScreenDefinition, inputs *domain.Inputs) (bool, []string) {
	return e.runtime.Validate(def, inputs)
}

// Store returns the configured store, if any.
func (e *Engine) Store() ports.ConfigStore {
	return e.store
}

// Classify inspects raw screen text and reports the host's verdict. It is
// exposed for callers that capture screens through other means.
func Classify(raw string) domain.Classification {
	return runtime.Classify(screen.New(raw))
}
