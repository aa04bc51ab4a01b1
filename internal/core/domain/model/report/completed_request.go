package report

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/request"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCompletedRequestIsNotConstructed = errors.New("CompletedRequest must be created via NewCompletedRequest constructor")

// OrderLine is one order of a completed request.
type OrderLine struct {
	Color string
	Model string
	Front kernel.SKU
	Back  kernel.SKU
}

// String renders the order-log line "color,model".
func (o OrderLine) String() string {
	return o.Color + "," + o.Model
}

// CompletedRequest records a request that cleared the loading dock.
type CompletedRequest struct {
	id           kernel.UUID
	requestID    int
	correctOrder []kernel.SKU
	orders       []OrderLine
	completedAt  time.Time
	guard        guard.ConstructorGuard
}

// NewCompletedRequest copies a Loaded or Finished request.
func NewCompletedRequest(id kernel.UUID, pr *request.PickingRequest, completedAt time.Time) (*CompletedRequest, error) {
	if err := pr.Validate(); err != nil {
		return nil, err
	}
	if !pr.Status().IsLoaded() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"request", fmt.Errorf("request %d is %s, not loaded", pr.ID(), pr.Status()))
	}

	lines := make([]OrderLine, 0, request.OrdersPerRequest)
	for _, o := range pr.Orders() {
		lines = append(lines, OrderLine{Color: o.Color(), Model: o.Model(), Front: o.FrontSKU(), Back: o.BackSKU()})
	}
	return RestoreCompletedRequest(id, pr.ID(), pr.CorrectOrder(), lines, completedAt)
}

// RestoreCompletedRequest rebuilds a record read from storage.
func RestoreCompletedRequest(
	id kernel.UUID,
	requestID int,
	correctOrder []kernel.SKU,
	orders []OrderLine,
	completedAt time.Time,
) (*CompletedRequest, error) {
	c := &CompletedRequest{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setRequestID(requestID),
		c.setCorrectOrder(correctOrder),
		c.setOrders(orders),
		c.setCompletedAt(completedAt),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *CompletedRequest) Validate() error {
	if c == nil {
		return ErrCompletedRequestIsNotConstructed
	}
	return c.guard.Validate(ErrCompletedRequestIsNotConstructed)
}

func (c *CompletedRequest) ID() kernel.UUID {
	return c.id
}

func (c *CompletedRequest) RequestID() int {
	return c.requestID
}

func (c *CompletedRequest) CorrectOrder() []kernel.SKU {
	return slices.Clone(c.correctOrder)
}

func (c *CompletedRequest) Orders() []OrderLine {
	return slices.Clone(c.orders)
}

func (c *CompletedRequest) CompletedAt() time.Time {
	return c.completedAt
}

func (c *CompletedRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	c.id = id
	return nil
}

func (c *CompletedRequest) setRequestID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("request id", fmt.Errorf("%d is not greater than 0", id))
	}
	c.requestID = id
	return nil
}

func (c *CompletedRequest) setCorrectOrder(skus []kernel.SKU) error {
	if len(skus) != request.ItemsPerRequest {
		return errs.NewValueIsInvalidErrorWithCause(
			"correct order", fmt.Errorf("%d items, want %d", len(skus), request.ItemsPerRequest))
	}
	c.correctOrder = slices.Clone(skus)
	return nil
}

func (c *CompletedRequest) setOrders(orders []OrderLine) error {
	if len(orders) != request.OrdersPerRequest {
		return errs.NewValueIsInvalidErrorWithCause(
			"orders", fmt.Errorf("%d orders, want %d", len(orders), request.OrdersPerRequest))
	}
	c.orders = slices.Clone(orders)
	return nil
}

func (c *CompletedRequest) setCompletedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("completed at")
	}
	c.completedAt = at.UTC()
	return nil
}
