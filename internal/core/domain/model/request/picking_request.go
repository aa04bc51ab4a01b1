package request

import (
	"errors"
	"fmt"
	"slices"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

const (
	// OrdersPerRequest is the batch size.
	OrdersPerRequest = 4
	// ItemsPerRequest is the number of fascias, a front and a back per order.
	ItemsPerRequest = OrdersPerRequest * 2
)

var (
	ErrPickingRequestIsNotConstructed = errors.New("PickingRequest must be created via NewPickingRequest constructor")

	// ErrTraversalExhausted is an invariant failure: a worker was directed
	// past the last stop of the traversal.
	ErrTraversalExhausted = errors.New("traversal queue is empty")
)

// PickingRequest is the aggregate root for one batch of four orders.
type PickingRequest struct {
	id           int
	status       Status
	orders       []*Order
	correctOrder []kernel.SKU
	traversal    []kernel.LocationEntry
	guard        guard.ConstructorGuard
}

// NewPickingRequest batches exactly four orders under id and plans the
// initial traversal. The orders are attached to the request and start
// Waiting.
func NewPickingRequest(id int, orders []*Order, route []kernel.LocationEntry) (*PickingRequest, error) {
	pr := &PickingRequest{
		status: Waiting,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(pr.setID(id), pr.setOrders(orders)); err != nil {
		return nil, err
	}
	if err := pr.plan(route); err != nil {
		return nil, err
	}
	for _, o := range pr.orders {
		if err := o.attach(id); err != nil {
			return nil, err
		}
	}
	pr.mirrorStatus()

	return pr, nil
}

func (pr *PickingRequest) Validate() error {
	if pr == nil {
		return ErrPickingRequestIsNotConstructed
	}
	return pr.guard.Validate(ErrPickingRequestIsNotConstructed)
}

func (pr *PickingRequest) ID() int {
	return pr.id
}

func (pr *PickingRequest) Status() Status {
	return pr.status
}

// Orders returns the four orders in batch order.
func (pr *PickingRequest) Orders() []*Order {
	return slices.Clone(pr.orders)
}

// CorrectOrder returns the four front SKUs followed by the four back SKUs.
func (pr *PickingRequest) CorrectOrder() []kernel.SKU {
	return slices.Clone(pr.correctOrder)
}

// SKUs returns the eight SKUs in order-list order, front then back per order.
func (pr *PickingRequest) SKUs() []kernel.SKU {
	skus := make([]kernel.SKU, 0, ItemsPerRequest)
	for _, o := range pr.orders {
		skus = append(skus, o.FrontSKU(), o.BackSKU())
	}
	return skus
}

// Remaining is the number of stops left in the traversal queue.
func (pr *PickingRequest) Remaining() int {
	return len(pr.traversal)
}

// Traversal returns the stops not yet handed out.
func (pr *PickingRequest) Traversal() []kernel.LocationEntry {
	return slices.Clone(pr.traversal)
}

// NextStop pops the head of the traversal queue. The SKU and location queues
// of the request are drained together, so a stop always pairs an item with
// its slot.
func (pr *PickingRequest) NextStop() (kernel.LocationEntry, error) {
	if len(pr.traversal) == 0 {
		return kernel.LocationEntry{}, fmt.Errorf("request %d: %w", pr.id, ErrTraversalExhausted)
	}
	stop := pr.traversal[0]
	pr.traversal = pr.traversal[1:]
	return stop, nil
}

// NextSKU pops the next stop and returns its SKU.
func (pr *PickingRequest) NextSKU() (kernel.SKU, error) {
	stop, err := pr.NextStop()
	return stop.SKU, err
}

// MatchesCorrectOrder reports whether scans equal the correct order exactly.
func (pr *PickingRequest) MatchesCorrectOrder(scans []kernel.SKU) bool {
	return slices.Equal(scans, pr.correctOrder)
}

func (pr *PickingRequest) StartPicking() error {
	return pr.advance(Picking)
}

func (pr *PickingRequest) FinishPicking() error {
	return pr.advance(Picked)
}

func (pr *PickingRequest) StartSequencing() error {
	return pr.advance(Sequencing)
}

func (pr *PickingRequest) FinishSequencing() error {
	return pr.advance(Sequenced)
}

func (pr *PickingRequest) StartLoading() error {
	return pr.advance(Loading)
}

func (pr *PickingRequest) FinishLoading() error {
	return pr.advance(Loaded)
}

// Finish closes a Loaded request.
func (pr *PickingRequest) Finish() error {
	return pr.advance(Finished)
}

// Discard sends the request back to Waiting with a freshly planned route.
// The correct order is never recomputed.
func (pr *PickingRequest) Discard(route []kernel.LocationEntry) error {
	next, err := pr.status.Reset()
	if err != nil {
		return err
	}
	if err = pr.plan(route); err != nil {
		return err
	}
	pr.status = next
	pr.mirrorStatus()
	return nil
}

func (pr *PickingRequest) advance(want Status) error {
	next, err := pr.status.Advance(want)
	if err != nil {
		return fmt.Errorf("request %d: %w", pr.id, err)
	}
	pr.status = next
	pr.mirrorStatus()
	return nil
}

func (pr *PickingRequest) mirrorStatus() {
	for _, o := range pr.orders {
		o.status = pr.status
	}
}

// plan replaces the traversal queue after checking it covers exactly the
// request's eight SKUs.
func (pr *PickingRequest) plan(route []kernel.LocationEntry) error {
	if len(route) != ItemsPerRequest {
		return errs.NewValueIsInvalidErrorWithCause(
			"route", fmt.Errorf("%d stops, want %d", len(route), ItemsPerRequest))
	}

	want := pr.SKUs()
	got := make([]kernel.SKU, 0, len(route))
	for _, stop := range route {
		if err := stop.Location.Validate(); err != nil {
			return err
		}
		got = append(got, stop.SKU)
	}
	slices.Sort(want)
	slices.Sort(got)
	if !slices.Equal(want, got) {
		return errs.NewValueIsInvalidErrorWithCause(
			"route", fmt.Errorf("stops %v do not cover request items %v", got, want))
	}

	pr.traversal = slices.Clone(route)
	return nil
}

func (pr *PickingRequest) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	pr.id = id
	return nil
}

func (pr *PickingRequest) setOrders(orders []*Order) error {
	if len(orders) != OrdersPerRequest {
		return errs.NewValueIsInvalidErrorWithCause(
			"orders", fmt.Errorf("%d orders, want %d", len(orders), OrdersPerRequest))
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if other, batched := o.RequestID(); batched {
			return fmt.Errorf("%w: %s is in request %d", ErrOrderAlreadyBatched, o, other)
		}
	}

	pr.orders = slices.Clone(orders)
	pr.correctOrder = make([]kernel.SKU, 0, ItemsPerRequest)
	for _, o := range orders {
		pr.correctOrder = append(pr.correctOrder, o.FrontSKU())
	}
	for _, o := range orders {
		pr.correctOrder = append(pr.correctOrder, o.BackSKU())
	}
	return nil
}
