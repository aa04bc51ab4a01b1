package request

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrOrderAlreadyBatched   = errors.New("order already belongs to a picking request")
)

// Order is one customer's van fascia pair. Everything but the mirrored status
// and the back-reference is immutable.
type Order struct {
	color     string
	model     string
	frontSKU  kernel.SKU
	backSKU   kernel.SKU
	status    Status
	requestID int
	guard     guard.ConstructorGuard
}

// NewOrder validates the order fields. The status starts Unknown until the
// order is batched into a request.
func NewOrder(color, model string, front, back kernel.SKU) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setText("color", &o.color, color),
		o.setText("model", &o.model, model),
		o.setSKU("front sku", &o.frontSKU, front),
		o.setSKU("back sku", &o.backSKU, back),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) Color() string {
	return o.color
}

func (o *Order) Model() string {
	return o.model
}

func (o *Order) FrontSKU() kernel.SKU {
	return o.frontSKU
}

func (o *Order) BackSKU() kernel.SKU {
	return o.backSKU
}

// Status mirrors the owning request, or Unknown before batching.
func (o *Order) Status() Status {
	return o.status
}

// RequestID returns the owning request id and whether the order is batched.
func (o *Order) RequestID() (int, bool) {
	return o.requestID, o.requestID != 0
}

// String renders the order-log line "color,model".
func (o *Order) String() string {
	return o.color + "," + o.model
}

func (o *Order) attach(requestID int) error {
	if o.requestID != 0 {
		return fmt.Errorf("%w: %s is in request %d", ErrOrderAlreadyBatched, o, o.requestID)
	}
	o.requestID = requestID
	return nil
}

func (o *Order) setText(name string, dst *string, v string) error {
	if v == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = v
	return nil
}

func (o *Order) setSKU(name string, dst *kernel.SKU, v kernel.SKU) error {
	if v == "" {
		return errs.NewValueIsRequiredError(name)
	}
	if v.Number() <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%q is not a positive number", v))
	}
	*dst = v
	return nil
}
