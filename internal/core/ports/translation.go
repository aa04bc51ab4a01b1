// Package ports defines the contracts between the warehouse core and the
// adapters around it: reference data lookups, sinks for finished work, and
// persistence of snapshots.
package ports

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/request"
)

// TranslationLookup resolves a van colour and model to its fascia SKUs.
type TranslationLookup interface {
	// Translate returns an ObjectNotFoundError for unknown combinations.
	Translate(color, model string) (front, back kernel.SKU, err error)
}

// CompletedOrderSink receives every request the moment it is Loaded, in
// completion order.
type CompletedOrderSink interface {
	Append(pr *request.PickingRequest) error
}
