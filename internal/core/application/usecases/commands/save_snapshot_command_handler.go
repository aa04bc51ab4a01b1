package commands

import (
	"context"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/report"
)

// SaveSnapshotCommandHandler copies engine state inside the runner and writes
// it in one transaction. Completed requests are saved on every run; the
// repository ignores request ids it already holds.
type SaveSnapshotCommandHandler struct {
	runner     EngineRunner
	uowFactory SnapshotUoWFactory
	table      *kernel.LocationTable
}

func NewSaveSnapshotCommandHandler(
	runner EngineRunner,
	uowFactory SnapshotUoWFactory,
	table *kernel.LocationTable,
) SaveSnapshotCommandHandler {
	return SaveSnapshotCommandHandler{
		runner:     runner,
		uowFactory: uowFactory,
		table:      table,
	}
}

func (h *SaveSnapshotCommandHandler) Handle(ctx context.Context, cmd SaveSnapshotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var (
		counts    map[kernel.SKU]int
		completed []*report.CompletedRequest
		copyErr   error
	)
	err := h.runner.Query(ctx, func(e *engine.AssignmentEngine) {
		counts = e.Inventory()
		for _, pr := range e.Completed() {
			c, err := report.NewCompletedRequest(kernel.NewUUID(), pr, cmd.TakenAt())
			if err != nil {
				copyErr = err
				return
			}
			completed = append(completed, c)
		}
	})
	if err != nil {
		return err
	}
	if copyErr != nil {
		return copyErr
	}

	snapshot, err := report.NewInventorySnapshot(kernel.NewUUID(), cmd.TakenAt(), counts, h.table)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.InventorySnapshotRepository().Add(ctx, snapshot); err != nil {
		return err
	}

	completedRepo := uow.CompletedRequestRepository()
	for _, c := range completed {
		if err = completedRepo.Save(ctx, c); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
