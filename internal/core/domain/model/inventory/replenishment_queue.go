package inventory

import (
	"slices"

	"warehouse/internal/core/domain/model/kernel"
)

// ReplenishmentQueue is a FIFO of SKUs waiting for a replenisher. The same
// SKU may be queued more than once.
type ReplenishmentQueue struct {
	items []kernel.SKU
}

func NewReplenishmentQueue() *ReplenishmentQueue {
	return &ReplenishmentQueue{}
}

func (q *ReplenishmentQueue) Push(sku kernel.SKU) {
	q.items = append(q.items, sku)
}

// Pop removes the oldest entry.
func (q *ReplenishmentQueue) Pop() (kernel.SKU, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	sku := q.items[0]
	q.items = q.items[1:]
	return sku, true
}

func (q *ReplenishmentQueue) Len() int {
	return len(q.items)
}

// Items returns the queue from oldest to newest.
func (q *ReplenishmentQueue) Items() []kernel.SKU {
	return slices.Clone(q.items)
}
