package commands

import (
	"context"
	"errors"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/pkg/guard"
)

var ErrDiscardCommandIsNotConstructed = errors.New(
	"DiscardCommand must be created via NewDiscardCommand constructor",
)

// DiscardCommand abandons the worker's current picking request. The request
// returns to Waiting and is offered to pickers first.
type DiscardCommand struct { //nolint:recvcheck //using for validation
	workerRef

	guard guard.ConstructorGuard
}

func NewDiscardCommand(role, name string) (DiscardCommand, error) {
	command := DiscardCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.set(role, name); err != nil {
		return DiscardCommand{}, err
	}

	return command, nil
}

func (c DiscardCommand) Validate() error {
	return c.guard.Validate(ErrDiscardCommandIsNotConstructed)
}

type DiscardCommandHandler struct {
	runner EngineRunner
}

func NewDiscardCommandHandler(runner EngineRunner) DiscardCommandHandler {
	return DiscardCommandHandler{runner: runner}
}

func (h *DiscardCommandHandler) Handle(ctx context.Context, cmd DiscardCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.Submit(ctx, "discard", func(ctx context.Context, e *engine.AssignmentEngine) error {
		return e.OnDiscard(ctx, cmd.Role(), cmd.Name())
	})
}
