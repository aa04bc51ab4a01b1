package commands

import (
	"errors"
	"strings"
)

var (
	ErrRoleIsRequired       = errors.New("role is required")
	ErrWorkerNameIsRequired = errors.New("worker name is required")
	ErrSKUIsRequired        = errors.New("sku is required")
)

// workerRef names the worker an event comes from. The role is kept as text
// so that the engine can log and reject roles it does not know.
type workerRef struct {
	role string
	name string
}

func (w workerRef) Role() string {
	return w.role
}

func (w workerRef) Name() string {
	return w.name
}

func (w *workerRef) set(role, name string) error {
	role, name = strings.TrimSpace(role), strings.TrimSpace(name)

	var err error
	if role == "" {
		err = errors.Join(err, ErrRoleIsRequired)
	}
	if name == "" {
		err = errors.Join(err, ErrWorkerNameIsRequired)
	}
	if err != nil {
		return err
	}

	w.role, w.name = role, name
	return nil
}
