package queries

import (
	"context"
	"errors"
	"slices"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/domain/model/worker"
	"warehouse/internal/pkg/guard"
)

var ErrGetWorkersQueryIsNotConstructed = errors.New(
	"GetWorkersQuery must be created via NewGetWorkersQuery constructor",
)

// GetWorkersQuery lists registered workers in registration order.
type GetWorkersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetWorkersQuery() GetWorkersQuery {
	return GetWorkersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetWorkersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkersQueryIsNotConstructed)
}

type GetWorkersQueryResponse struct {
	Name string
	Role string
	Idle bool
	// Waiting is set while the worker is queued for work.
	Waiting bool
	// RequestID is 0 when the worker holds no request.
	RequestID int
	// Target is the SKU a replenisher is restocking, empty otherwise.
	Target string
	Scans  int
}

type GetWorkersQueryHandler struct {
	reader EngineReader
}

func NewGetWorkersQueryHandler(reader EngineReader) GetWorkersQueryHandler {
	return GetWorkersQueryHandler{reader: reader}
}

func (h GetWorkersQueryHandler) Handle(ctx context.Context, query GetWorkersQuery) ([]GetWorkersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	out := make([]GetWorkersQueryResponse, 0)
	err := h.reader.Query(ctx, func(e *engine.AssignmentEngine) {
		pending := e.PendingWorkers()
		for _, w := range e.Workers() {
			r := GetWorkersQueryResponse{
				Name:    w.Name(),
				Role:    w.Role().String(),
				Idle:    w.IsIdle(),
				Waiting: slices.Contains(pending, w),
				Scans:   len(w.Scans()),
			}
			if pr := w.Request(); pr != nil {
				r.RequestID = pr.ID()
			}
			if w.Role() == worker.Replenisher && !w.Target().IsNone() {
				r.Target = w.Target().String()
			}
			out = append(out, r)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
