package inventory

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrOutOfStock is returned when a pick finds the level empty.
var ErrOutOfStock = errors.New("no fascias left in level")

// PickResult describes the level after a pick.
type PickResult struct {
	Remaining int
	LowStock  bool
	Empty     bool
}

// Shortage is a SKU below full stock.
type Shortage struct {
	SKU   kernel.SKU
	Count int
}

// Ledger maps SKU to on-hand count. Counts never go negative.
type Ledger struct {
	counts   map[kernel.SKU]int
	settings Settings
}

// NewLedger copies counts. Only SKUs present in counts can be picked or
// restocked.
func NewLedger(counts map[kernel.SKU]int, settings Settings) (*Ledger, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	for sku, n := range counts {
		if n < 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("count", fmt.Errorf("%s has %d items", sku, n))
		}
	}
	return &Ledger{counts: maps.Clone(counts), settings: settings}, nil
}

func (l *Ledger) Settings() Settings {
	return l.settings
}

// Pick takes one item from the level of sku.
func (l *Ledger) Pick(sku kernel.SKU) (PickResult, error) {
	n, ok := l.counts[sku]
	if !ok {
		return PickResult{}, errs.NewObjectNotFoundError("sku", sku)
	}
	if n == 0 {
		return PickResult{Empty: true}, fmt.Errorf("%w: sku %s", ErrOutOfStock, sku)
	}

	l.counts[sku] = n - 1
	return PickResult{
		Remaining: n - 1,
		LowStock:  l.settings.LowStock.Fires(n, n-1, l.settings.LowStockThreshold),
		Empty:     n-1 == 0,
	}, nil
}

// PutBack returns one item to the level of sku.
func (l *Ledger) PutBack(sku kernel.SKU) (int, error) {
	return l.add(sku, 1)
}

// Replenish adds the restock amount to the level of sku.
func (l *Ledger) Replenish(sku kernel.SKU) (int, error) {
	return l.add(sku, l.settings.RestockAmount)
}

func (l *Ledger) Count(sku kernel.SKU) (int, bool) {
	n, ok := l.counts[sku]
	return n, ok
}

func (l *Ledger) IsEmpty(sku kernel.SKU) bool {
	n, ok := l.counts[sku]
	return ok && n == 0
}

// Snapshot returns a copy of all counts.
func (l *Ledger) Snapshot() map[kernel.SKU]int {
	return maps.Clone(l.counts)
}

// Shortages lists SKUs below full stock in ascending SKU order.
func (l *Ledger) Shortages() []Shortage {
	out := make([]Shortage, 0)
	for sku, n := range l.counts {
		if n < l.settings.FullStock {
			out = append(out, Shortage{SKU: sku, Count: n})
		}
	}
	slices.SortFunc(out, func(a, b Shortage) int {
		switch {
		case a.SKU.Less(b.SKU):
			return -1
		case b.SKU.Less(a.SKU):
			return 1
		default:
			return 0
		}
	})
	return out
}

func (l *Ledger) add(sku kernel.SKU, amount int) (int, error) {
	n, ok := l.counts[sku]
	if !ok {
		return 0, errs.NewObjectNotFoundError("sku", sku)
	}
	l.counts[sku] = n + amount
	return n + amount, nil
}
