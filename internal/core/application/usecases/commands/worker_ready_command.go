package commands

import (
	"context"
	"errors"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/pkg/guard"
)

var ErrWorkerReadyCommandIsNotConstructed = errors.New(
	"WorkerReadyCommand must be created via NewWorkerReadyCommand constructor",
)

// WorkerReadyCommand reports a worker starting a shift or asking for more
// work.
type WorkerReadyCommand struct { //nolint:recvcheck //using for validation
	workerRef

	guard guard.ConstructorGuard
}

func NewWorkerReadyCommand(role, name string) (WorkerReadyCommand, error) {
	command := WorkerReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.set(role, name); err != nil {
		return WorkerReadyCommand{}, err
	}

	return command, nil
}

func (c WorkerReadyCommand) Validate() error {
	return c.guard.Validate(ErrWorkerReadyCommandIsNotConstructed)
}

// WorkerReadyCommandHandler registers workers and offers them work.
type WorkerReadyCommandHandler struct {
	runner EngineRunner
}

func NewWorkerReadyCommandHandler(runner EngineRunner) WorkerReadyCommandHandler {
	return WorkerReadyCommandHandler{runner: runner}
}

// Handle returns worker.ErrWorkerBusy when the worker still holds work.
func (h *WorkerReadyCommandHandler) Handle(ctx context.Context, cmd WorkerReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.Submit(ctx, "ready", func(ctx context.Context, e *engine.AssignmentEngine) error {
		return e.OnWorkerReady(ctx, cmd.Role(), cmd.Name())
	})
}
