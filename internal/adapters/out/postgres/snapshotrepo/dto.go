// Package snapshotrepo persists inventory snapshots. Each snapshot row owns
// one level row per SKU.
package snapshotrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/report"

	"github.com/google/uuid"
)

// InventorySnapshotDTO is the database structure of a snapshot.
type InventorySnapshotDTO struct {
	ID      uuid.UUID           `gorm:"type:uuid;primaryKey"`
	TakenAt time.Time           `gorm:"type:timestamptz;not null;index"`
	Levels  []InventoryLevelDTO `gorm:"foreignKey:SnapshotID;constraint:OnDelete:CASCADE"`
}

func (InventorySnapshotDTO) TableName() string {
	return "inventory_snapshots"
}

// InventoryLevelDTO is one SKU's count within a snapshot.
type InventoryLevelDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	SnapshotID uuid.UUID `gorm:"type:uuid;not null;index"`
	SKU        string    `gorm:"type:varchar(16);not null"`
	Location   string    `gorm:"type:varchar(16)"`
	Count      int       `gorm:"type:int;not null"`
}

func (InventoryLevelDTO) TableName() string {
	return "inventory_levels"
}

func fromDomain(s *report.InventorySnapshot) InventorySnapshotDTO {
	id := s.ID().Value()
	levels := make([]InventoryLevelDTO, 0, len(s.Levels()))
	for _, l := range s.Levels() {
		levels = append(levels, InventoryLevelDTO{
			ID:         uuid.New(),
			SnapshotID: id,
			SKU:        l.SKU.String(),
			Location:   l.Location,
			Count:      l.Count,
		})
	}

	return InventorySnapshotDTO{
		ID:      id,
		TakenAt: s.TakenAt(),
		Levels:  levels,
	}
}

func toDomain(dto InventorySnapshotDTO) (*report.InventorySnapshot, error) {
	id, err := kernel.RestoreUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	levels := make([]report.Level, 0, len(dto.Levels))
	for _, l := range dto.Levels {
		levels = append(levels, report.Level{SKU: kernel.SKU(l.SKU), Location: l.Location, Count: l.Count})
	}

	return report.RestoreInventorySnapshot(id, dto.TakenAt, levels)
}
