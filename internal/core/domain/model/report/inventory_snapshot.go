package report

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrInventorySnapshotIsNotConstructed = errors.New("InventorySnapshot must be created via NewInventorySnapshot constructor")

// Level is the stock of one SKU at snapshot time. Location is empty for SKUs
// the location table does not know.
type Level struct {
	SKU      kernel.SKU
	Location string
	Count    int
}

// InventorySnapshot is a copy of the ledger at TakenAt, ordered by SKU.
type InventorySnapshot struct {
	id      kernel.UUID
	takenAt time.Time
	levels  []Level
	guard   guard.ConstructorGuard
}

// NewInventorySnapshot captures counts and resolves each SKU's slot through
// table.
func NewInventorySnapshot(
	id kernel.UUID,
	takenAt time.Time,
	counts map[kernel.SKU]int,
	table *kernel.LocationTable,
) (*InventorySnapshot, error) {
	if table == nil {
		return nil, errs.NewValueIsRequiredError("location table")
	}

	levels := make([]Level, 0, len(counts))
	for sku, n := range counts {
		lvl := Level{SKU: sku, Count: n}
		if loc, ok := table.Lookup(sku); ok {
			lvl.Location = loc.String()
		}
		levels = append(levels, lvl)
	}
	return RestoreInventorySnapshot(id, takenAt, levels)
}

// RestoreInventorySnapshot rebuilds a snapshot read from storage.
func RestoreInventorySnapshot(id kernel.UUID, takenAt time.Time, levels []Level) (*InventorySnapshot, error) {
	s := &InventorySnapshot{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setID(id),
		s.setTakenAt(takenAt),
		s.setLevels(levels),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *InventorySnapshot) Validate() error {
	if s == nil {
		return ErrInventorySnapshotIsNotConstructed
	}
	return s.guard.Validate(ErrInventorySnapshotIsNotConstructed)
}

func (s *InventorySnapshot) ID() kernel.UUID {
	return s.id
}

func (s *InventorySnapshot) TakenAt() time.Time {
	return s.takenAt
}

// Levels returns every level in ascending SKU order.
func (s *InventorySnapshot) Levels() []Level {
	return slices.Clone(s.levels)
}

func (s *InventorySnapshot) Count(sku kernel.SKU) (int, bool) {
	for _, l := range s.levels {
		if l.SKU == sku {
			return l.Count, true
		}
	}
	return 0, false
}

func (s *InventorySnapshot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	s.id = id
	return nil
}

func (s *InventorySnapshot) setTakenAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("taken at")
	}
	s.takenAt = at.UTC()
	return nil
}

func (s *InventorySnapshot) setLevels(levels []Level) error {
	seen := make(map[kernel.SKU]struct{}, len(levels))
	for _, l := range levels {
		if l.Count < 0 {
			return errs.NewValueIsInvalidErrorWithCause("count", fmt.Errorf("%s has %d items", l.SKU, l.Count))
		}
		if _, ok := seen[l.SKU]; ok {
			return errs.NewValueIsInvalidErrorWithCause("sku", fmt.Errorf("%s listed twice", l.SKU))
		}
		seen[l.SKU] = struct{}{}
	}

	s.levels = slices.Clone(levels)
	slices.SortFunc(s.levels, func(a, b Level) int {
		switch {
		case a.SKU.Less(b.SKU):
			return -1
		case b.SKU.Less(a.SKU):
			return 1
		default:
			return 0
		}
	})
	return nil
}
