package worker

import (
	"errors"
	"fmt"
	"slices"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/request"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker constructor")
	// ErrWorkerIdle is returned for events that need an assignment the worker
	// does not have.
	ErrWorkerIdle = errors.New("worker has no assignment")
	// ErrWorkerBusy is returned when work is offered to a worker that already
	// has some.
	ErrWorkerBusy = errors.New("worker has not completed current assigned work")
	// ErrRoleHasNoStage is returned when a request operation is attempted by a
	// role that does not work on requests, or a restock by one that does.
	ErrRoleHasNoStage = errors.New("operation is not supported by role")
)

// Worker is a named person with a barcode scanner. Workers are never removed
// once registered.
type Worker struct {
	name    string
	role    Role
	request *request.PickingRequest
	scans   []kernel.SKU
	// frozen is set by an over-scan and blocks the buffer until the worker is
	// reassigned or the buffer is reset.
	frozen bool
	// target is the SKU a replenisher is restocking, NoSKU when idle.
	target kernel.SKU
	// expected is the picker's current stop.
	expected    kernel.LocationEntry
	hasExpected bool
	guard       guard.ConstructorGuard
}

func NewWorker(name string, role Role) (*Worker, error) {
	w := &Worker{
		target: kernel.NoSKU,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(w.setName(name), w.setRole(role)); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Worker) Validate() error {
	if w == nil {
		return ErrWorkerIsNotConstructed
	}
	return w.guard.Validate(ErrWorkerIsNotConstructed)
}

func (w *Worker) Name() string {
	return w.name
}

func (w *Worker) Role() Role {
	return w.role
}

// Request returns the current assignment, nil when idle.
func (w *Worker) Request() *request.PickingRequest {
	return w.request
}

// Scans returns a copy of the scan buffer.
func (w *Worker) Scans() []kernel.SKU {
	return slices.Clone(w.scans)
}

func (w *Worker) IsFrozen() bool {
	return w.frozen
}

// Target returns the SKU a replenisher is restocking, NoSKU otherwise.
func (w *Worker) Target() kernel.SKU {
	return w.target
}

// Expected returns the stop a picker is heading to.
func (w *Worker) Expected() (kernel.LocationEntry, bool) {
	return w.expected, w.hasExpected
}

// IsIdle reports whether the worker can take new work.
func (w *Worker) IsIdle() bool {
	if w.role == Replenisher {
		return w.target.IsNone()
	}
	return w.request == nil
}

// Assign starts the role's stage on pr and hands it to the worker. The scan
// buffer starts empty.
func (w *Worker) Assign(pr *request.PickingRequest) (Direction, error) {
	if err := pr.Validate(); err != nil {
		return Direction{}, err
	}
	if !w.role.WorksRequests() {
		return Direction{}, fmt.Errorf("%w: %s cannot take request %d", ErrRoleHasNoStage, w.role, pr.ID())
	}
	if !w.IsIdle() {
		return Direction{}, fmt.Errorf("%w: %s %s", ErrWorkerBusy, w.role, w.name)
	}
	if err := w.role.Start(pr); err != nil {
		return Direction{}, err
	}

	w.request = pr
	w.resetBuffer()
	return behaviors()[w.role].direct(w)
}

// Finish completes the role's stage on the current request and releases the
// worker. The assignment is kept when the transition fails.
func (w *Worker) Finish() (*request.PickingRequest, error) {
	if !w.role.WorksRequests() {
		return nil, fmt.Errorf("%w: %s cannot finish a request", ErrRoleHasNoStage, w.role)
	}
	pr := w.request
	if pr == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrWorkerIdle, w.role, w.name)
	}
	if err := w.role.Complete(pr); err != nil {
		return nil, err
	}
	w.Release()
	return pr, nil
}

// Claim gives an idle replenisher a SKU to restock.
func (w *Worker) Claim(sku kernel.SKU) (Direction, error) {
	if w.role != Replenisher {
		return Direction{}, fmt.Errorf("%w: %s cannot restock", ErrRoleHasNoStage, w.role)
	}
	if sku == "" || sku.IsNone() {
		return Direction{}, errs.NewValueIsRequiredError("sku")
	}
	if !w.IsIdle() {
		return Direction{}, fmt.Errorf("%w: %s %s is restocking %s", ErrWorkerBusy, w.role, w.name, w.target)
	}

	w.target = sku
	w.resetBuffer()
	return behaviors()[w.role].direct(w)
}

// FinishRestock ends the replenisher's claim. The restock counts only when
// exactly one matching scan was recorded.
func (w *Worker) FinishRestock() (sku kernel.SKU, committed bool, err error) {
	if w.role != Replenisher {
		return "", false, fmt.Errorf("%w: %s cannot restock", ErrRoleHasNoStage, w.role)
	}
	if w.IsIdle() {
		return "", false, fmt.Errorf("%w: %s %s", ErrWorkerIdle, w.role, w.name)
	}

	sku, committed = w.target, len(w.scans) == 1
	w.Release()
	return sku, committed, nil
}

// Scan records one scanned item according to the role.
func (w *Worker) Scan(sku kernel.SKU) (ScanResult, error) {
	if w.IsIdle() {
		return ScanResult{}, fmt.Errorf("%w: %s %s", ErrWorkerIdle, w.role, w.name)
	}
	if w.frozen {
		return ScanResult{OverScan: true}, nil
	}
	return behaviors()[w.role].scan(w, sku)
}

// Rescan undoes scanning work according to the role.
func (w *Worker) Rescan(sku kernel.SKU) (RescanResult, error) {
	if w.IsIdle() {
		return RescanResult{}, fmt.Errorf("%w: %s %s", ErrWorkerIdle, w.role, w.name)
	}
	return behaviors()[w.role].rescan(w, sku)
}

// Release drops the current assignment or claim and clears the buffer.
func (w *Worker) Release() {
	w.request = nil
	w.target = kernel.NoSKU
	w.hasExpected = false
	w.expected = kernel.LocationEntry{}
	w.resetBuffer()
}

func (w *Worker) resetBuffer() {
	w.scans = nil
	w.frozen = false
}

// record appends sku unless the buffer is full, in which case the buffer
// freezes and false is returned.
func (w *Worker) record(sku kernel.SKU) bool {
	if len(w.scans) >= request.ItemsPerRequest {
		w.frozen = true
		return false
	}
	w.scans = append(w.scans, sku)
	return true
}

func (w *Worker) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}

func (w *Worker) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	w.role = role
	return nil
}
