package queries

import (
	"errors"
	"time"

	"warehouse/internal/pkg/guard"
)

var ErrGetCompletedRequestsQueryIsNotConstructed = errors.New(
	"GetCompletedRequestsQuery must be created via NewGetCompletedRequestsQuery constructor",
)

// GetCompletedRequestsQuery reads the persisted history of loaded requests.
// It covers every run that shared the database, not only the current one.
type GetCompletedRequestsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCompletedRequestsQuery() GetCompletedRequestsQuery {
	return GetCompletedRequestsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCompletedRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetCompletedRequestsQueryIsNotConstructed)
}

type GetCompletedRequestsQueryResponse struct {
	RequestID    int
	CorrectOrder []string
	CompletedAt  time.Time
}
