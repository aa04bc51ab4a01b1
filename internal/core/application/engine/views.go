package engine

import (
	"slices"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/request"
	"warehouse/internal/core/domain/model/worker"
	"warehouse/internal/pkg/errs"
)

// The accessors below expose live aggregates. Callers outside the engine's
// goroutine must copy what they need inside Runner.Query.

// Requests returns every request in creation order.
func (e *AssignmentEngine) Requests() []*request.PickingRequest {
	return slices.Clone(e.history)
}

// RequestsByStatus filters Requests by st.
func (e *AssignmentEngine) RequestsByStatus(st request.Status) []*request.PickingRequest {
	out := make([]*request.PickingRequest, 0)
	for _, pr := range e.history {
		if pr.Status() == st {
			out = append(out, pr)
		}
	}
	return out
}

// Request returns the request with id or an ObjectNotFoundError.
func (e *AssignmentEngine) Request(id int) (*request.PickingRequest, error) {
	for _, pr := range e.history {
		if pr.ID() == id {
			return pr, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("request", id)
}

// Completed returns loaded requests in completion order.
func (e *AssignmentEngine) Completed() []*request.PickingRequest {
	return slices.Clone(e.completed)
}

// PendingRequests returns the request queue from front to back.
func (e *AssignmentEngine) PendingRequests() []*request.PickingRequest {
	return slices.Clone(e.pendingRequests)
}

// PendingWorkers returns the worker queue from front to back.
func (e *AssignmentEngine) PendingWorkers() []*worker.Worker {
	return slices.Clone(e.pendingWorkers)
}

// PendingOrders returns the orders not yet batched.
func (e *AssignmentEngine) PendingOrders() []*request.Order {
	return e.book.Pending()
}

// Orders returns every order received.
func (e *AssignmentEngine) Orders() []*request.Order {
	return e.book.All()
}

func (e *AssignmentEngine) Workers() []*worker.Worker {
	return e.workers.All()
}

func (e *AssignmentEngine) Worker(name string) (*worker.Worker, error) {
	return e.workers.Get(name)
}

// Inventory returns a copy of every stock level.
func (e *AssignmentEngine) Inventory() map[kernel.SKU]int {
	return e.ledger.Snapshot()
}

// Shortages lists SKUs below full stock in SKU order.
func (e *AssignmentEngine) Shortages() []inventory.Shortage {
	return e.ledger.Shortages()
}

// Restocks returns the queued SKUs from oldest to newest.
func (e *AssignmentEngine) Restocks() []kernel.SKU {
	return e.restocks.Items()
}

func (e *AssignmentEngine) Policy() Policy {
	return e.policy
}
