package worker

import (
	"fmt"
	"slices"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// Registry keeps workers by name in registration order.
type Registry struct {
	byName map[string]*Worker
	order  []*Worker
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Worker)}
}

// Register creates a worker on first sight of name.
func (r *Registry) Register(name string, role Role) (*Worker, error) {
	if w, ok := r.byName[name]; ok {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"name", fmt.Errorf("%s is already registered as %s", name, w.Role()))
	}

	w, err := NewWorker(name, role)
	if err != nil {
		return nil, err
	}
	r.byName[name] = w
	r.order = append(r.order, w)
	return w, nil
}

// Get returns the worker named name, or an ObjectNotFoundError.
func (r *Registry) Get(name string) (*Worker, error) {
	w, ok := r.byName[name]
	if !ok {
		return nil, errs.NewObjectNotFoundError("worker", name)
	}
	return w, nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// IdleReplenisher returns the first idle replenisher in registration order.
func (r *Registry) IdleReplenisher() (*Worker, bool) {
	for _, w := range r.order {
		if w.Role() == Replenisher && w.IsIdle() {
			return w, true
		}
	}
	return nil, false
}

// Restocking reports whether a busy replenisher has claimed sku.
func (r *Registry) Restocking(sku kernel.SKU) bool {
	for _, w := range r.order {
		if w.Role() == Replenisher && !w.IsIdle() && w.Target() == sku {
			return true
		}
	}
	return false
}

// All returns the workers in registration order.
func (r *Registry) All() []*Worker {
	return slices.Clone(r.order)
}

func (r *Registry) Len() int {
	return len(r.order)
}
