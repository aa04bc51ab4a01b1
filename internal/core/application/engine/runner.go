package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrRunnerStopped is returned for work submitted after Stop.
var ErrRunnerStopped = errors.New("engine runner is stopped")

const tracerName = "warehouse/engine"

// CommandObserver is told how long each command took.
type CommandObserver interface {
	CommandHandled(name string, err error, elapsed time.Duration)
}

type (
	// CommandFunc mutates the engine. It runs on the runner goroutine.
	CommandFunc func(ctx context.Context, e *AssignmentEngine) error
	// QueryFunc reads the engine. It runs on the runner goroutine and must
	// copy anything it keeps.
	QueryFunc func(e *AssignmentEngine)
)

type envelope struct {
	ctx   context.Context
	name  string
	fn    CommandFunc
	reply chan error
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

func WithTracer(t trace.Tracer) RunnerOption {
	return func(r *Runner) {
		r.tracer = t
	}
}

func WithCommandObserver(o CommandObserver) RunnerOption {
	return func(r *Runner) {
		r.observer = o
	}
}

// Runner confines an AssignmentEngine to one goroutine. Commands are applied
// strictly in submission order and each runs to completion before the next
// starts.
type Runner struct {
	engine   *AssignmentEngine
	inbox    chan envelope
	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	tracer   trace.Tracer
	observer CommandObserver
	logger   *slog.Logger
}

func NewRunner(engine *AssignmentEngine, logger *slog.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		engine: engine,
		inbox:  make(chan envelope),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
		tracer: otel.Tracer(tracerName),
		logger: logger.With("component", "engine_runner"),
	}
	for _, opt := range opts {
		opt(r)
	}

	go r.loop()
	return r
}

// Submit applies fn and returns its error. Cancelling ctx stops the wait,
// never a command that has already been accepted.
func (r *Runner) Submit(ctx context.Context, name string, fn CommandFunc) error {
	env := envelope{ctx: context.WithoutCancel(ctx), name: name, fn: fn, reply: make(chan error, 1)}

	select {
	case r.inbox <- env:
	case <-r.quit:
		return ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-env.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Query runs fn on the engine goroutine.
func (r *Runner) Query(ctx context.Context, fn QueryFunc) error {
	return r.Submit(ctx, "query", func(_ context.Context, e *AssignmentEngine) error {
		fn(e)
		return nil
	})
}

// Stop finishes the command in progress and stops the goroutine.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.quit)
	})
	<-r.done
}

func (r *Runner) loop() {
	defer close(r.done)
	for {
		select {
		case env := <-r.inbox:
			env.reply <- r.apply(env)
		case <-r.quit:
			return
		}
	}
}

func (r *Runner) apply(env envelope) (err error) {
	ctx, span := r.tracer.Start(env.ctx, "engine."+env.name,
		trace.WithAttributes(attribute.String("engine.command", env.name)))
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			r.logger.ErrorContext(ctx, "Engine command panicked", "command", env.name, "panic", p)
			err = errors.New("engine command panicked")
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if r.observer != nil {
			r.observer.CommandHandled(env.name, err, time.Since(start))
		}
	}()

	return env.fn(ctx, r.engine)
}
