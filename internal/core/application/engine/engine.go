package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/request"
	"warehouse/internal/core/domain/model/worker"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/logging"
)

// ErrSequenceMismatch is returned when the blocking sequencer policy refuses
// a finish.
var ErrSequenceMismatch = errors.New("sequenced items do not match the correct order")

// Option customizes an AssignmentEngine.
type Option func(*AssignmentEngine)

// WithSequence replaces the request id generator, which starts at 1.
func WithSequence(seq request.Sequence) Option {
	return func(e *AssignmentEngine) {
		e.ids = seq
	}
}

// WithObserver reports engine activity to o.
func WithObserver(o Observer) Option {
	return func(e *AssignmentEngine) {
		e.observer = o
	}
}

// WithCompletedOrderSink forwards every loaded request to sink.
func WithCompletedOrderSink(sink ports.CompletedOrderSink) Option {
	return func(e *AssignmentEngine) {
		e.sinks = append(e.sinks, sink)
	}
}

// AssignmentEngine owns every request, worker and stock level. It is not
// safe for concurrent use.
type AssignmentEngine struct {
	logger       *slog.Logger
	policy       Policy
	translations ports.TranslationLookup
	optimizer    *services.RouteOptimizer
	dispatcher   services.RequestDispatcher
	sinks        []ports.CompletedOrderSink
	observer     Observer
	ids          request.Sequence

	book            *request.OrderBook
	history         []*request.PickingRequest
	pendingRequests []*request.PickingRequest
	completed       []*request.PickingRequest

	workers        *worker.Registry
	pendingWorkers []*worker.Worker

	ledger   *inventory.Ledger
	restocks *inventory.ReplenishmentQueue
}

// NewAssignmentEngine builds an engine over the initial stock.
func NewAssignmentEngine(
	logger *slog.Logger,
	policy Policy,
	translations ports.TranslationLookup,
	optimizer *services.RouteOptimizer,
	stock map[kernel.SKU]int,
	opts ...Option,
) (*AssignmentEngine, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if translations == nil {
		return nil, errs.NewValueIsRequiredError("translations")
	}
	if optimizer == nil {
		return nil, errs.NewValueIsRequiredError("route optimizer")
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	ledger, err := inventory.NewLedger(stock, policy.Inventory)
	if err != nil {
		return nil, err
	}

	e := &AssignmentEngine{
		logger:       logger.With("component", "assignment_engine"),
		policy:       policy,
		translations: translations,
		optimizer:    optimizer,
		dispatcher:   services.NewRequestDispatcher(),
		observer:     nopObserver{},
		ids:          request.NewCounter(1),
		book:         request.NewOrderBook(),
		workers:      worker.NewRegistry(),
		ledger:       ledger,
		restocks:     inventory.NewReplenishmentQueue(),
	}
	for _, opt := range opts {
		opt(e)
	}

	logging.Config(context.Background(), e.logger, "Assignment engine initialized",
		"skus", len(stock),
		"low_stock", policy.Inventory.LowStock,
		"sequencer_mismatch", policy.SequencerMismatch)
	return e, nil
}

// OnOrderReceived records an order. Every fourth order forms a picking
// request that is matched at once.
func (e *AssignmentEngine) OnOrderReceived(ctx context.Context, color, model string) error {
	defer e.publishDepths()

	front, back, err := e.translations.Translate(color, model)
	if err != nil {
		e.logger.WarnContext(ctx, "Order has no fascia translation", "color", color, "model", model, "error", err)
		return err
	}
	for _, sku := range []kernel.SKU{front, back} {
		if _, err = e.optimizer.Locate(sku); err != nil {
			e.logger.WarnContext(ctx, "Order fascia has no storage location", "color", color, "model", model, "sku", sku)
			return err
		}
	}

	o, err := request.NewOrder(color, model, front, back)
	if err != nil {
		e.logger.WarnContext(ctx, "Order is invalid", "color", color, "model", model, "error", err)
		return err
	}
	batch, err := e.book.Add(o)
	if err != nil {
		return err
	}
	e.logger.InfoContext(ctx, "Order received", "color", color, "model", model)

	if batch == nil {
		return nil
	}
	return e.createRequest(ctx, batch)
}

// OnWorkerReady registers a worker on first sight and offers it work when
// idle.
func (e *AssignmentEngine) OnWorkerReady(ctx context.Context, roleName, name string) error {
	defer e.publishDepths()

	role, err := worker.ParseRole(roleName)
	if err != nil {
		e.logger.WarnContext(ctx, "Worker role is not valid", "role", roleName, "worker", name)
		return err
	}

	if !e.workers.Has(name) {
		w, err := e.workers.Register(name, role)
		if err != nil {
			e.logger.WarnContext(ctx, "Worker cannot be registered", "role", roleName, "worker", name, "error", err)
			return err
		}
		e.logger.InfoContext(ctx, "Worker starting shift", "role", role, "worker", name)
		return e.offerWorker(ctx, w)
	}

	w, err := e.lookup(ctx, roleName, name)
	if err != nil {
		return err
	}
	if !w.IsIdle() {
		e.logger.WarnContext(ctx, "Worker has not completed current assigned work", "role", role, "worker", name)
		return fmt.Errorf("%w: %s %s", worker.ErrWorkerBusy, role, name)
	}
	if slices.Contains(e.pendingWorkers, w) {
		e.logger.InfoContext(ctx, "Worker is already waiting for work", "role", role, "worker", name)
		return nil
	}
	e.logger.InfoContext(ctx, "Worker starting shift", "role", role, "worker", name)
	return e.offerWorker(ctx, w)
}

// OnScan applies one scan. A picker's scan also takes the item from stock.
func (e *AssignmentEngine) OnScan(ctx context.Context, roleName, name, sku string) error {
	defer e.publishDepths()

	w, err := e.lookup(ctx, roleName, name)
	if err != nil {
		return err
	}
	item, err := e.parseSKU(ctx, w, sku)
	if err != nil {
		return err
	}

	// An item that cannot leave storage never reaches the picker's buffer.
	if w.Role() == worker.Picker && !w.IsIdle() {
		if err = e.checkStock(ctx, w, item); err != nil {
			return err
		}
	}

	res, err := w.Scan(item)
	if errors.Is(err, worker.ErrWorkerIdle) {
		e.logger.WarnContext(ctx, "Worker scanned without an assignment", "role", w.Role(), "worker", w.Name(), "sku", item)
		return err
	}
	if err != nil {
		e.logger.ErrorContext(ctx, "Scan failed", "role", w.Role(), "worker", w.Name(), "sku", item, "error", err)
		if w.Role() == worker.Picker && res.Recorded {
			return errors.Join(err, e.takeFromStock(ctx, w, item))
		}
		return err
	}
	e.reportScan(ctx, w, item, res)

	if w.Role() == worker.Picker {
		return e.takeFromStock(ctx, w, item)
	}
	return nil
}

// OnRescan undoes scanning work. Pickers put the item back, replenishers
// scan again and everyone else restarts the stage's scan sequence.
func (e *AssignmentEngine) OnRescan(ctx context.Context, roleName, name, sku string) error {
	defer e.publishDepths()

	w, err := e.lookup(ctx, roleName, name)
	if err != nil {
		return err
	}
	item, err := e.parseSKU(ctx, w, sku)
	if err != nil {
		return err
	}

	res, err := w.Rescan(item)
	if err != nil {
		e.logger.WarnContext(ctx, "Worker rescanned without an assignment", "role", w.Role(), "worker", w.Name())
		return err
	}

	switch res.Kind {
	case worker.PutBack:
		// Only items the scanner counted as taken go back on the shelf.
		switch {
		case res.HasDropped:
			item = res.Dropped
		case res.Unfrozen && !item.IsNone():
			// the over-scanned item
		default:
			e.logger.WarnContext(ctx, "Worker has no picked item to put back", "role", w.Role(), "worker", w.Name(), "sku", item)
			return nil
		}
		e.logger.WarnContext(ctx, "Worker put item back", "role", w.Role(), "worker", w.Name(), "sku", item)
		n, err := e.ledger.PutBack(item)
		if err != nil {
			e.logger.WarnContext(ctx, "Returned item is not stocked", "sku", item, "error", err)
			return err
		}
		e.logger.InfoContext(ctx, "One item returned to storage", "sku", item, "remaining", n)
	case worker.Repeat:
		e.logger.WarnContext(ctx, "Worker replenishes again", "role", w.Role(), "worker", w.Name(), "sku", item)
		e.reportScan(ctx, w, item, res.Scan)
	case worker.Reset:
		e.logger.WarnContext(ctx, "Worker rescans picking request",
			"role", w.Role(), "worker", w.Name(), "request", w.Request().ID())
	}
	return nil
}

// OnDiscard sends the worker's request back to Waiting with a fresh route
// and offers it to pickers ahead of every other waiting request. The worker
// is released and has to report ready again.
func (e *AssignmentEngine) OnDiscard(ctx context.Context, roleName, name string) error {
	defer e.publishDepths()

	w, err := e.lookup(ctx, roleName, name)
	if err != nil {
		return err
	}
	if !w.Role().WorksRequests() {
		e.logger.WarnContext(ctx, "Worker has no picking request to discard", "role", w.Role(), "worker", w.Name())
		return fmt.Errorf("%w: %s cannot discard", worker.ErrRoleHasNoStage, w.Role())
	}
	pr := w.Request()
	if pr == nil {
		e.logger.WarnContext(ctx, "Worker has no picking request to discard", "role", w.Role(), "worker", w.Name())
		return fmt.Errorf("%w: %s %s", worker.ErrWorkerIdle, w.Role(), w.Name())
	}

	route, err := e.optimizer.Optimize(pr.SKUs())
	if err != nil {
		e.logger.ErrorContext(ctx, "Route for discarded request failed", "request", pr.ID(), "error", err)
		return err
	}
	if err = pr.Discard(route); err != nil {
		e.logger.ErrorContext(ctx, "Discard failed", "request", pr.ID(), "error", err)
		return err
	}
	w.Release()
	e.logger.WarnContext(ctx, "Worker discards picking request", "role", w.Role(), "worker", w.Name(), "request", pr.ID())

	return e.offerRequest(ctx, pr, true)
}

// OnWorkerFinished closes the worker's current stage. Replenishers commit or
// requeue their SKU and move on to the next one; other workers hand the
// request to the next stage and are released.
func (e *AssignmentEngine) OnWorkerFinished(ctx context.Context, roleName, name string) error {
	defer e.publishDepths()

	w, err := e.lookup(ctx, roleName, name)
	if err != nil {
		return err
	}
	if w.Role() == worker.Replenisher {
		return e.finishRestock(ctx, w)
	}

	pr := w.Request()
	if pr == nil {
		e.logger.WarnContext(ctx, "Worker finished without an assignment", "role", w.Role(), "worker", w.Name())
		return fmt.Errorf("%w: %s %s", worker.ErrWorkerIdle, w.Role(), w.Name())
	}
	if w.Role() == worker.Sequencer && e.policy.SequencerMismatch == Blocking && !pr.MatchesCorrectOrder(w.Scans()) {
		e.logger.WarnContext(ctx, "System rejects sequencing, items do not match the correct order",
			"worker", w.Name(), "request", pr.ID(), "scanned", w.Scans(), "correct_order", pr.CorrectOrder())
		return fmt.Errorf("request %d: %w", pr.ID(), ErrSequenceMismatch)
	}

	if _, err = w.Finish(); err != nil {
		e.logger.ErrorContext(ctx, "Finish failed", "role", w.Role(), "worker", w.Name(), "request", pr.ID(), "error", err)
		return err
	}
	e.logger.InfoContext(ctx, "System confirms worker finished request",
		"role", w.Role(), "worker", w.Name(), "request", pr.ID(), "status", pr.Status())

	if pr.Status() == request.Loaded {
		return e.complete(ctx, pr)
	}
	return e.offerRequest(ctx, pr, false)
}

func (e *AssignmentEngine) createRequest(ctx context.Context, batch []*request.Order) error {
	skus := make([]kernel.SKU, 0, request.ItemsPerRequest)
	for _, o := range batch {
		skus = append(skus, o.FrontSKU(), o.BackSKU())
	}
	route, err := e.optimizer.Optimize(skus)
	if err != nil {
		e.logger.ErrorContext(ctx, "Route for new request failed", "error", err)
		return err
	}

	pr, err := request.NewPickingRequest(e.ids.Next(), batch, route)
	if err != nil {
		e.logger.ErrorContext(ctx, "Picking request cannot be created", "error", err)
		return err
	}
	e.history = append(e.history, pr)
	e.logger.InfoContext(ctx, "Picking request created", "request", pr.ID(), "correct_order", pr.CorrectOrder())

	return e.offerRequest(ctx, pr, false)
}

// offerRequest hands pr to the first compatible pending worker or queues it.
// Requests coming back from a discard jump the queue.
func (e *AssignmentEngine) offerRequest(ctx context.Context, pr *request.PickingRequest, priority bool) error {
	if i, ok := e.dispatcher.FindWorker(pr, e.pendingWorkers, e.history); ok {
		w := e.pendingWorkers[i]
		e.pendingWorkers = slices.Delete(e.pendingWorkers, i, i+1)
		return e.assign(ctx, w, pr)
	}

	if priority {
		e.pendingRequests = slices.Insert(e.pendingRequests, 0, pr)
	} else {
		e.pendingRequests = append(e.pendingRequests, pr)
	}
	e.logger.InfoContext(ctx, "Picking request waiting for a worker", "request", pr.ID(), "status", pr.Status())
	return nil
}

// offerWorker gives w the first request or SKU it can take, or queues it.
func (e *AssignmentEngine) offerWorker(ctx context.Context, w *worker.Worker) error {
	if w.Role() == worker.Replenisher {
		if sku, ok := e.restocks.Pop(); ok {
			return e.claim(ctx, w, sku)
		}
	} else if i, ok := e.dispatcher.FindRequest(w, e.pendingRequests, e.history); ok {
		pr := e.pendingRequests[i]
		e.pendingRequests = slices.Delete(e.pendingRequests, i, i+1)
		return e.assign(ctx, w, pr)
	}

	e.pendingWorkers = append(e.pendingWorkers, w)
	e.logger.InfoContext(ctx, "System sending wait status to worker", "role", w.Role(), "worker", w.Name())
	return nil
}

// rematch pairs queued requests with queued workers until no pair fits.
// Each match is removed by index after the search, then the search restarts.
func (e *AssignmentEngine) rematch(ctx context.Context) error {
	for {
		ri, wi := -1, -1
		for i, pr := range e.pendingRequests {
			if j, ok := e.dispatcher.FindWorker(pr, e.pendingWorkers, e.history); ok {
				ri, wi = i, j
				break
			}
		}
		if ri < 0 {
			return nil
		}

		pr, w := e.pendingRequests[ri], e.pendingWorkers[wi]
		e.pendingRequests = slices.Delete(e.pendingRequests, ri, ri+1)
		e.pendingWorkers = slices.Delete(e.pendingWorkers, wi, wi+1)
		if err := e.assign(ctx, w, pr); err != nil {
			return err
		}
	}
}

func (e *AssignmentEngine) assign(ctx context.Context, w *worker.Worker, pr *request.PickingRequest) error {
	dir, err := w.Assign(pr)
	if err != nil {
		e.logger.ErrorContext(ctx, "Assignment failed", "role", w.Role(), "worker", w.Name(), "request", pr.ID(), "error", err)
		return err
	}
	e.logger.InfoContext(ctx, "System sending request to worker",
		"role", w.Role(), "worker", w.Name(), "request", pr.ID(), "status", pr.Status())
	e.direct(ctx, w, dir)
	return nil
}

func (e *AssignmentEngine) claim(ctx context.Context, w *worker.Worker, sku kernel.SKU) error {
	dir, err := w.Claim(sku)
	if err != nil {
		e.logger.ErrorContext(ctx, "Restock claim failed", "worker", w.Name(), "sku", sku, "error", err)
		return err
	}
	if i := slices.Index(e.pendingWorkers, w); i >= 0 {
		e.pendingWorkers = slices.Delete(e.pendingWorkers, i, i+1)
	}
	e.logger.InfoContext(ctx, "System sending replenish request to worker", "worker", w.Name(), "sku", sku)
	e.direct(ctx, w, dir)
	return nil
}

// complete archives a Loaded request, closes it and retries loaders that
// were waiting for it.
func (e *AssignmentEngine) complete(ctx context.Context, pr *request.PickingRequest) error {
	e.completed = append(e.completed, pr)
	for _, sink := range e.sinks {
		if err := sink.Append(pr); err != nil {
			e.logger.ErrorContext(ctx, "Completed order sink failed", "request", pr.ID(), "error", err)
		}
	}
	if err := pr.Finish(); err != nil {
		e.logger.ErrorContext(ctx, "Request cannot be finished", "request", pr.ID(), "error", err)
		return err
	}
	e.observer.RequestCompleted(pr)
	e.logger.InfoContext(ctx, "Request completed", "request", pr.ID())

	return e.rematch(ctx)
}

func (e *AssignmentEngine) checkStock(ctx context.Context, w *worker.Worker, sku kernel.SKU) error {
	n, ok := e.ledger.Count(sku)
	if !ok {
		e.logger.WarnContext(ctx, "Picked item is not stocked", "role", w.Role(), "worker", w.Name(), "sku", sku)
		return errs.NewObjectNotFoundError("sku", sku)
	}
	if n == 0 {
		e.logger.WarnContext(ctx, "System sending wait request to worker, no fascias left in level",
			"role", w.Role(), "worker", w.Name(), "sku", sku)
		return fmt.Errorf("%w: sku %s", inventory.ErrOutOfStock, sku)
	}
	return nil
}

func (e *AssignmentEngine) takeFromStock(ctx context.Context, w *worker.Worker, sku kernel.SKU) error {
	res, err := e.ledger.Pick(sku)
	if errors.Is(err, inventory.ErrOutOfStock) {
		e.logger.WarnContext(ctx, "System sending wait request to worker, no fascias left in level",
			"role", w.Role(), "worker", w.Name(), "sku", sku)
		return err
	}
	if err != nil {
		e.logger.WarnContext(ctx, "Picked item is not stocked", "sku", sku, "error", err)
		return err
	}
	e.logger.InfoContext(ctx, "One item removed from storage", "sku", sku, "remaining", res.Remaining)

	if res.LowStock {
		e.observer.LowStock(sku)
		e.logger.InfoContext(ctx, "Storage low on stock, requesting replenishment", "sku", sku, "remaining", res.Remaining)
		if err = e.requestRestock(ctx, sku); err != nil {
			return err
		}
	}
	if res.Empty {
		e.logger.WarnContext(ctx, "System sending wait request to worker, no fascias left in level",
			"role", w.Role(), "worker", w.Name(), "sku", sku)
	}
	return nil
}

// requestRestock hands sku to an idle replenisher or queues it. Replenishers
// waiting in the pending queue are served first, oldest first. A SKU that a
// busy replenisher is already restocking is not queued again.
func (e *AssignmentEngine) requestRestock(ctx context.Context, sku kernel.SKU) error {
	if w, ok := e.waitingReplenisher(); ok {
		return e.claim(ctx, w, sku)
	}
	if e.workers.Restocking(sku) {
		e.logger.DebugContext(ctx, "SKU is already being replenished", "sku", sku)
		return nil
	}
	e.restocks.Push(sku)
	e.logger.InfoContext(ctx, "Replenish request queued", "sku", sku, "queued", e.restocks.Len())
	return nil
}

func (e *AssignmentEngine) waitingReplenisher() (*worker.Worker, bool) {
	for _, w := range e.pendingWorkers {
		if w.Role() == worker.Replenisher {
			return w, true
		}
	}
	return e.workers.IdleReplenisher()
}

func (e *AssignmentEngine) finishRestock(ctx context.Context, w *worker.Worker) error {
	sku, committed, err := w.FinishRestock()
	if err != nil {
		e.logger.WarnContext(ctx, "Worker finished without an assignment", "role", w.Role(), "worker", w.Name())
		return err
	}

	if committed {
		n, err := e.ledger.Replenish(sku)
		if err != nil {
			e.logger.ErrorContext(ctx, "Replenished SKU is not stocked", "sku", sku, "error", err)
			return err
		}
		e.logger.InfoContext(ctx, "System confirms SKU replenished", "sku", sku, "worker", w.Name(), "count", n)
	} else {
		e.restocks.Push(sku)
		e.logger.WarnContext(ctx, "System rejects SKU replenished", "sku", sku, "worker", w.Name())
	}
	e.observer.Restocked(sku, committed)

	if next, ok := e.restocks.Pop(); ok {
		return e.claim(ctx, w, next)
	}
	return nil
}

// lookup resolves an event's worker and checks the event names its role.
func (e *AssignmentEngine) lookup(ctx context.Context, roleName, name string) (*worker.Worker, error) {
	role, err := worker.ParseRole(roleName)
	if err != nil {
		e.logger.WarnContext(ctx, "Worker role is not valid", "role", roleName, "worker", name)
		return nil, err
	}
	w, err := e.workers.Get(name)
	if err != nil {
		e.logger.WarnContext(ctx, "Worker is unknown", "role", role, "worker", name)
		return nil, err
	}
	if w.Role() != role {
		e.logger.WarnContext(ctx, "Worker role does not match", "worker", name, "role", role, "registered_role", w.Role())
		return nil, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s is registered as %s", name, w.Role()))
	}
	return w, nil
}

func (e *AssignmentEngine) parseSKU(ctx context.Context, w *worker.Worker, s string) (kernel.SKU, error) {
	sku, err := kernel.ParseSKU(s)
	if err != nil {
		e.logger.WarnContext(ctx, "Scanned SKU is not valid", "role", w.Role(), "worker", w.Name(), "sku", s)
		return "", err
	}
	return sku, nil
}

func (e *AssignmentEngine) publishDepths() {
	e.observer.QueueDepths(len(e.pendingRequests), len(e.pendingWorkers), e.restocks.Len())
}
