// Package completedrepo persists requests that cleared the loading dock,
// together with their orders in request order.
package completedrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/report"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CompletedRequestDTO is the database structure of a completed request. The
// correct order is stored as a text[] column.
type CompletedRequestDTO struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	RequestID    int                 `gorm:"type:int;not null;uniqueIndex"`
	CorrectOrder pq.StringArray      `gorm:"type:text[];not null"`
	CompletedAt  time.Time           `gorm:"type:timestamptz;not null;index"`
	Orders       []CompletedOrderDTO `gorm:"foreignKey:CompletedRequestID;constraint:OnDelete:CASCADE"`
}

func (CompletedRequestDTO) TableName() string {
	return "completed_requests"
}

// CompletedOrderDTO is one order of a completed request. Position keeps the
// order in which the orders formed the request.
type CompletedOrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompletedRequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position           int       `gorm:"type:smallint;not null"`
	Color              string    `gorm:"type:varchar(64);not null"`
	Model              string    `gorm:"type:varchar(64);not null"`
	FrontSKU           string    `gorm:"type:varchar(16);not null"`
	BackSKU            string    `gorm:"type:varchar(16);not null"`
}

func (CompletedOrderDTO) TableName() string {
	return "completed_orders"
}

func fromDomain(c *report.CompletedRequest) CompletedRequestDTO {
	id := c.ID().Value()

	correctOrder := make(pq.StringArray, 0, len(c.CorrectOrder()))
	for _, sku := range c.CorrectOrder() {
		correctOrder = append(correctOrder, sku.String())
	}

	orders := make([]CompletedOrderDTO, 0, len(c.Orders()))
	for i, o := range c.Orders() {
		orders = append(orders, CompletedOrderDTO{
			ID:                 uuid.New(),
			CompletedRequestID: id,
			Position:           i,
			Color:              o.Color,
			Model:              o.Model,
			FrontSKU:           o.Front.String(),
			BackSKU:            o.Back.String(),
		})
	}

	return CompletedRequestDTO{
		ID:           id,
		RequestID:    c.RequestID(),
		CorrectOrder: correctOrder,
		CompletedAt:  c.CompletedAt(),
		Orders:       orders,
	}
}

func toDomain(dto CompletedRequestDTO) (*report.CompletedRequest, error) {
	id, err := kernel.RestoreUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	correctOrder := make([]kernel.SKU, 0, len(dto.CorrectOrder))
	for _, s := range dto.CorrectOrder {
		correctOrder = append(correctOrder, kernel.SKU(s))
	}

	lines := make([]report.OrderLine, 0, len(dto.Orders))
	for _, o := range dto.Orders {
		lines = append(lines, report.OrderLine{
			Color: o.Color,
			Model: o.Model,
			Front: kernel.SKU(o.FrontSKU),
			Back:  kernel.SKU(o.BackSKU),
		})
	}

	return report.RestoreCompletedRequest(id, dto.RequestID, correctOrder, lines, dto.CompletedAt.UTC())
}
