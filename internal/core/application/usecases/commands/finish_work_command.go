package commands

import (
	"context"
	"errors"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/pkg/guard"
)

var ErrFinishWorkCommandIsNotConstructed = errors.New(
	"FinishWorkCommand must be created via NewFinishWorkCommand constructor",
)

// FinishWorkCommand closes the worker's current stage, or a replenisher's
// current SKU.
type FinishWorkCommand struct { //nolint:recvcheck //using for validation
	workerRef

	guard guard.ConstructorGuard
}

func NewFinishWorkCommand(role, name string) (FinishWorkCommand, error) {
	command := FinishWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.set(role, name); err != nil {
		return FinishWorkCommand{}, err
	}

	return command, nil
}

func (c FinishWorkCommand) Validate() error {
	return c.guard.Validate(ErrFinishWorkCommandIsNotConstructed)
}

// FinishWorkCommandHandler hands finished requests to the next stage.
type FinishWorkCommandHandler struct {
	runner EngineRunner
}

func NewFinishWorkCommandHandler(runner EngineRunner) FinishWorkCommandHandler {
	return FinishWorkCommandHandler{runner: runner}
}

// Handle returns engine.ErrSequenceMismatch when a blocking sequencer policy
// refuses the finish.
func (h *FinishWorkCommandHandler) Handle(ctx context.Context, cmd FinishWorkCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.Submit(ctx, "finish", func(ctx context.Context, e *engine.AssignmentEngine) error {
		return e.OnWorkerFinished(ctx, cmd.Role(), cmd.Name())
	})
}
