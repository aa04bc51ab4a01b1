package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each job run or
// command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a transaction boundary around the snapshot
// repositories. Client code manages the transaction lifecycle explicitly.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active.
	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	// InventorySnapshotRepository is bound to the transaction started by Begin.
	InventorySnapshotRepository() InventorySnapshotRepository

	// CompletedRequestRepository is bound to the transaction started by Begin.
	CompletedRequestRepository() CompletedRequestRepository
}
