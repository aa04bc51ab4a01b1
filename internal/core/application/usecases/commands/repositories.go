// Package commands contains business operations that modify system state.
// Worker and order events are applied to the assignment engine through its
// runner; snapshot commands persist engine state through a unit of work.
package commands

import (
	"context"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/ports"
)

// EngineRunner serializes access to the assignment engine.
//
// Implemented by *engine.Runner.
type EngineRunner interface {
	Submit(ctx context.Context, name string, fn engine.CommandFunc) error
	Query(ctx context.Context, fn engine.QueryFunc) error
}

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SnapshotRepoFactory provides access to the inventory snapshot
	// repository within a transaction.
	SnapshotRepoFactory interface {
		InventorySnapshotRepository() ports.InventorySnapshotRepository
	}

	// CompletedRequestRepoFactory provides access to the completed request
	// repository within a transaction.
	CompletedRequestRepoFactory interface {
		CompletedRequestRepository() ports.CompletedRequestRepository
	}

	// SnapshotUoW writes a snapshot and the completed requests atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.InventorySnapshotRepository().Add(ctx, snapshot)
	//   err = uow.CompletedRequestRepository().Save(ctx, completed)
	//
	//   err = uow.Commit(ctx)
	SnapshotUoW interface {
		TxManager
		SnapshotRepoFactory
		CompletedRequestRepoFactory
	}

	// SnapshotUoWFactory creates new snapshot unit of work instances.
	SnapshotUoWFactory interface {
		Create() SnapshotUoW
	}
)
