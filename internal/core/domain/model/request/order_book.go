package request

import "slices"

// OrderBook keeps every order received and the not-yet-batched tail.
type OrderBook struct {
	all     []*Order
	pending []*Order
}

func NewOrderBook() *OrderBook {
	return &OrderBook{}
}

// Add records o and, once OrdersPerRequest orders are waiting, returns them
// as a batch and empties the pending tail.
func (b *OrderBook) Add(o *Order) ([]*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	b.all = append(b.all, o)
	b.pending = append(b.pending, o)
	if len(b.pending) < OrdersPerRequest {
		return nil, nil
	}

	batch := b.pending
	b.pending = nil
	return batch, nil
}

// Pending returns the orders still waiting for a batch.
func (b *OrderBook) Pending() []*Order {
	return slices.Clone(b.pending)
}

// All returns every order in arrival order.
func (b *OrderBook) All() []*Order {
	return slices.Clone(b.all)
}
