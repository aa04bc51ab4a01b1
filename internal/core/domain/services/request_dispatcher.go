package services

import (
	"warehouse/internal/core/domain/model/request"
	"warehouse/internal/core/domain/model/worker"
)

// RequestDispatcher finds matches between pending workers and pending
// requests.
//
// Business rules:
//   - Waiting requests go to pickers, Picked to sequencers, Sequenced to loaders
//   - The first compatible entry in queue order wins
//   - A loader may only take the oldest request that has not been loaded yet
//
// The dispatcher returns indexes so that callers can remove the matched entry
// after the search instead of while iterating.
type RequestDispatcher struct{}

func NewRequestDispatcher() RequestDispatcher {
	return RequestDispatcher{}
}

// FindWorker returns the index of the first pending worker that can take pr.
// history must list every request in creation order.
func (d RequestDispatcher) FindWorker(
	pr *request.PickingRequest,
	pending []*worker.Worker,
	history []*request.PickingRequest,
) (int, bool) {
	if !d.Eligible(pr, history) {
		return -1, false
	}
	for i, w := range pending {
		if w.IsIdle() && w.Role().Accepts(pr.Status()) {
			return i, true
		}
	}
	return -1, false
}

// FindRequest returns the index of the first pending request w can take.
func (d RequestDispatcher) FindRequest(
	w *worker.Worker,
	pending []*request.PickingRequest,
	history []*request.PickingRequest,
) (int, bool) {
	if !w.IsIdle() {
		return -1, false
	}
	for i, pr := range pending {
		if w.Role().Accepts(pr.Status()) && d.Eligible(pr, history) {
			return i, true
		}
	}
	return -1, false
}

// Eligible applies the loading order rule. Requests in other stages are
// always eligible.
func (d RequestDispatcher) Eligible(pr *request.PickingRequest, history []*request.PickingRequest) bool {
	if pr.Status() != request.Sequenced {
		return true
	}
	return d.IsNextToLoad(pr, history)
}

// IsNextToLoad reports whether pr is the oldest request not yet Loaded.
func (d RequestDispatcher) IsNextToLoad(pr *request.PickingRequest, history []*request.PickingRequest) bool {
	for _, h := range history {
		if h.Status().IsLoaded() {
			continue
		}
		return h == pr
	}
	return false
}
