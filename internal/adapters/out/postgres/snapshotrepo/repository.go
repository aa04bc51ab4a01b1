package snapshotrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventorySnapshotRepository implements ports.InventorySnapshotRepository
// using GORM.
type GormInventorySnapshotRepository struct {
	db *gorm.DB
}

func NewGormInventorySnapshotRepository(db *gorm.DB) *GormInventorySnapshotRepository {
	return &GormInventorySnapshotRepository{db: db}
}

// Add saves the snapshot together with its levels.
func (r *GormInventorySnapshotRepository) Add(ctx context.Context, snapshot *report.InventorySnapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(snapshot)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Latest returns the snapshot with the newest TakenAt.
func (r *GormInventorySnapshotRepository) Latest(ctx context.Context) (*report.InventorySnapshot, error) {
	var dto InventorySnapshotDTO
	err := r.db.WithContext(ctx).
		Preload("Levels").
		Order("taken_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory snapshot", "latest")
		}
		return nil, err
	}

	return toDomain(dto)
}
