package ports

import (
	"context"

	"warehouse/internal/core/domain/model/report"
)

// InventorySnapshotRepository stores point-in-time copies of the ledger.
type InventorySnapshotRepository interface {
	Add(ctx context.Context, snapshot *report.InventorySnapshot) error

	// Latest returns the newest snapshot, or an ObjectNotFoundError when none
	// has been taken.
	Latest(ctx context.Context) (*report.InventorySnapshot, error)
}

// CompletedRequestRepository stores loaded requests. Saving the same request
// id twice is a no-op so periodic jobs can re-send the full history.
type CompletedRequestRepository interface {
	Save(ctx context.Context, completed *report.CompletedRequest) error

	Get(ctx context.Context, requestID int) (*report.CompletedRequest, error)

	// List returns every stored request ordered by completion.
	List(ctx context.Context) ([]*report.CompletedRequest, error)
}
