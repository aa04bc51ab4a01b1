// Package postgres stores inventory snapshots and completed picking requests
// in PostgreSQL through GORM.
//
// The snapshot job writes one snapshot and every newly loaded request per
// run, inside one transaction:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.InventorySnapshotRepository().Add(ctx, snapshot); err != nil {
//	    return err
//	}
//	for _, c := range completed {
//	    if err := uow.CompletedRequestRepository().Save(ctx, c); err != nil {
//	        return err
//	    }
//	}
//	return uow.Commit(ctx)
//
// A unit of work is single use per run and not safe for concurrent use.
package postgres

import (
	"context"
	"fmt"

	"warehouse/internal/adapters/out/postgres/completedrepo"
	"warehouse/internal/adapters/out/postgres/snapshotrepo"
	"warehouse/internal/core/ports"

	"gorm.io/gorm"
)

type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork binds the snapshot and completed request repositories to
// one transaction. Outside a transaction they write straight to db.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin is a no-op while a transaction is already open.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin snapshot transaction: %w", tx.Error)
	}
	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	return uow.end((*gorm.DB).Commit)
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	return uow.end((*gorm.DB).Rollback)
}

// end closes the open transaction with finish. Without one it returns
// gorm.ErrInvalidTransaction, so the deferred Rollback after a Commit only
// reports that nothing was left to undo.
func (uow *GormUnitOfWork) end(finish func(*gorm.DB) *gorm.DB) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	tx := uow.tx
	uow.tx = nil
	return finish(tx).Error
}

func (uow *GormUnitOfWork) InventorySnapshotRepository() ports.InventorySnapshotRepository {
	return snapshotrepo.NewGormInventorySnapshotRepository(uow.conn())
}

func (uow *GormUnitOfWork) CompletedRequestRepository() ports.CompletedRequestRepository {
	return completedrepo.NewGormCompletedRequestRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
