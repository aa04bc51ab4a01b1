package commands

import (
	"context"

	"warehouse/internal/core/application/engine"
)

// ScanCommandHandler applies scans. A picker's scan also takes the item from
// stock, which may trigger a replenishment.
type ScanCommandHandler struct {
	runner EngineRunner
}

func NewScanCommandHandler(runner EngineRunner) ScanCommandHandler {
	return ScanCommandHandler{runner: runner}
}

func (h *ScanCommandHandler) Handle(ctx context.Context, cmd ScanCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.Submit(ctx, "scan", func(ctx context.Context, e *engine.AssignmentEngine) error {
		return e.OnScan(ctx, cmd.Role(), cmd.Name(), cmd.SKU())
	})
}
