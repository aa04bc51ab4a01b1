package completedrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCompletedRequestRepository implements ports.CompletedRequestRepository
// using GORM.
type GormCompletedRequestRepository struct {
	db *gorm.DB
}

func NewGormCompletedRequestRepository(db *gorm.DB) *GormCompletedRequestRepository {
	return &GormCompletedRequestRepository{db: db}
}

// Save inserts the request unless one with the same request id exists.
func (r *GormCompletedRequestRepository) Save(ctx context.Context, completed *report.CompletedRequest) error {
	if err := completed.Validate(); err != nil {
		return err
	}

	dto := fromDomain(completed)
	orders := dto.Orders
	dto.Orders = nil

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "request_id"}}, DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 || len(orders) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&orders).Error
}

// Get retrieves a completed request by its picking request id.
func (r *GormCompletedRequestRepository) Get(ctx context.Context, requestID int) (*report.CompletedRequest, error) {
	var dto CompletedRequestDTO
	err := r.db.WithContext(ctx).
		Preload("Orders", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "request_id = ?", requestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("completed request", requestID)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormCompletedRequestRepository) List(ctx context.Context) ([]*report.CompletedRequest, error) {
	var dtos []CompletedRequestDTO
	err := r.db.WithContext(ctx).
		Preload("Orders", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("completed_at, request_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	out := make([]*report.CompletedRequest, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
