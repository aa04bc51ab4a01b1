package kernel

import (
	"fmt"
	"slices"

	"warehouse/internal/pkg/errs"
)

// Default warehouse geometry: zones A and B, 2 aisles, 3 racks, 4 levels.
const (
	defaultAisles = 2
	defaultRacks  = 3
	defaultLevels = 4
)

var defaultZones = []byte{'A', 'B'}

// LocationTable maps every SKU to its storage slot. It is immutable after
// construction.
type LocationTable struct {
	bySKU      map[SKU]Location
	byLocation map[string]SKU
	skus       []SKU
}

// LocationEntry is one row of a traversal table.
type LocationEntry struct {
	Location Location
	SKU      SKU
}

// NewLocationTable indexes entries, rejecting duplicate SKUs or slots.
func NewLocationTable(entries []LocationEntry) (*LocationTable, error) {
	t := &LocationTable{
		bySKU:      make(map[SKU]Location, len(entries)),
		byLocation: make(map[string]SKU, len(entries)),
		skus:       make([]SKU, 0, len(entries)),
	}

	for _, e := range entries {
		if err := e.Location.Validate(); err != nil {
			return nil, err
		}
		if _, ok := t.bySKU[e.SKU]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("sku", fmt.Errorf("%s listed twice", e.SKU))
		}
		code := e.Location.String()
		if _, ok := t.byLocation[code]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("location", fmt.Errorf("%s listed twice", code))
		}
		t.bySKU[e.SKU] = e.Location
		t.byLocation[code] = e.SKU
		t.skus = append(t.skus, e.SKU)
	}

	slices.SortFunc(t.skus, func(a, b SKU) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})

	return t, nil
}

// DefaultLocationTable numbers the default geometry from SKU 1 at A,0,0,0,
// level fastest, then rack, aisle and zone.
func DefaultLocationTable() *LocationTable {
	entries := make([]LocationEntry, 0, len(defaultZones)*defaultAisles*defaultRacks*defaultLevels)
	n := 1
	for _, zone := range defaultZones {
		for aisle := range defaultAisles {
			for rack := range defaultRacks {
				for level := range defaultLevels {
					loc, err := NewLocation(zone, Coordinate(aisle), Coordinate(rack), Coordinate(level))
					if err != nil {
						panic(err)
					}
					entries = append(entries, LocationEntry{Location: loc, SKU: SKU(fmt.Sprint(n))})
					n++
				}
			}
		}
	}

	t, err := NewLocationTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the slot for sku.
func (t *LocationTable) Lookup(sku SKU) (Location, bool) {
	loc, ok := t.bySKU[sku]
	return loc, ok
}

// SKUAt returns the SKU stored at code.
func (t *LocationTable) SKUAt(code string) (SKU, bool) {
	sku, ok := t.byLocation[code]
	return sku, ok
}

// SKUs returns all SKUs in ascending numeric order.
func (t *LocationTable) SKUs() []SKU {
	return slices.Clone(t.skus)
}

func (t *LocationTable) Len() int {
	return len(t.skus)
}
