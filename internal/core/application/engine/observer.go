package engine

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/request"
)

// Observer is told about engine activity worth counting.
type Observer interface {
	LowStock(sku kernel.SKU)
	Restocked(sku kernel.SKU, committed bool)
	RequestCompleted(pr *request.PickingRequest)
	QueueDepths(requests, workers, restocks int)
}

type nopObserver struct{}

func (nopObserver) LowStock(kernel.SKU)                      {}
func (nopObserver) Restocked(kernel.SKU, bool)               {}
func (nopObserver) RequestCompleted(*request.PickingRequest) {}
func (nopObserver) QueueDepths(int, int, int)                {}
