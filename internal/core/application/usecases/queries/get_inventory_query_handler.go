package queries

import (
	"cmp"
	"context"
	"slices"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/domain/model/kernel"
)

// GetInventoryQueryHandler reads stock levels from the ledger in SKU order.
type GetInventoryQueryHandler struct {
	reader EngineReader
	table  *kernel.LocationTable
}

func NewGetInventoryQueryHandler(reader EngineReader, table *kernel.LocationTable) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{reader: reader, table: table}
}

func (h GetInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryQuery,
) ([]GetInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	levels := make([]GetInventoryQueryResponse, 0)
	err := h.reader.Query(ctx, func(e *engine.AssignmentEngine) {
		if query.ShortagesOnly() {
			for _, s := range e.Shortages() {
				levels = append(levels, h.level(s.SKU, s.Count))
			}
			return
		}
		for sku, n := range e.Inventory() {
			levels = append(levels, h.level(sku, n))
		}
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(levels, func(a, b GetInventoryQueryResponse) int {
		return cmp.Compare(kernel.SKU(a.SKU).Number(), kernel.SKU(b.SKU).Number())
	})
	return levels, nil
}

func (h GetInventoryQueryHandler) level(sku kernel.SKU, n int) GetInventoryQueryResponse {
	l := GetInventoryQueryResponse{SKU: sku.String(), Count: n}
	if loc, ok := h.table.Lookup(sku); ok {
		l.Location = loc.String()
	}
	return l
}
