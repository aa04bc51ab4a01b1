package commands

import (
	"context"

	"warehouse/internal/core/application/engine"
)

// ReceiveOrderCommandHandler hands orders to the assignment engine.
type ReceiveOrderCommandHandler struct {
	runner EngineRunner
}

func NewReceiveOrderCommandHandler(runner EngineRunner) ReceiveOrderCommandHandler {
	return ReceiveOrderCommandHandler{
		runner: runner,
	}
}

// Handle records the order. Unknown colour and model pairs, and pairs whose
// fascias have no storage location, are rejected before batching.
func (h *ReceiveOrderCommandHandler) Handle(ctx context.Context, cmd ReceiveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.Submit(ctx, "order", func(ctx context.Context, e *engine.AssignmentEngine) error {
		return e.OnOrderReceived(ctx, cmd.Color(), cmd.Model())
	})
}
