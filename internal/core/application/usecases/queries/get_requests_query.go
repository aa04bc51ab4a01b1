package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/request"
	"warehouse/internal/pkg/guard"
)

var ErrGetRequestsQueryIsNotConstructed = errors.New(
	"GetRequestsQuery must be created via NewGetRequestsQuery constructor",
)

// GetRequestsQuery lists picking requests in creation order, optionally
// filtered by status.
type GetRequestsQuery struct {
	status    request.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewGetRequestsQuery filters by status name. An empty name lists every
// request.
func NewGetRequestsQuery(status string) (GetRequestsQuery, error) {
	q := GetRequestsQuery{guard: guard.NewConstructorGuard()}
	if status == "" {
		return q, nil
	}

	st, err := request.ParseStatus(status)
	if err != nil {
		return GetRequestsQuery{}, err
	}
	q.status, q.hasStatus = st, true
	return q, nil
}

func (q GetRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestsQueryIsNotConstructed)
}

// Status returns the filter and whether one was given.
func (q GetRequestsQuery) Status() (request.Status, bool) {
	return q.status, q.hasStatus
}

type GetRequestsQueryResponse struct {
	ID           int
	Status       string
	CorrectOrder []string
	// Remaining counts picker stops not yet handed out.
	Remaining int
	Orders    []OrderResponse
}

type OrderResponse struct {
	Color string
	Model string
	Front string
	Back  string
}
