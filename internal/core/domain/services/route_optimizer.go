package services

import (
	"slices"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// RouteOptimizer turns a set of SKUs into the stops a picker visits.
//
// The route visits SKUs in ascending numeric order. The warehouse numbers its
// slots so that this is a sensible walk, which keeps the optimizer a pure
// lookup over the injected table rather than a path search.
//
// Example usage:
//
//	optimizer, _ := services.NewRouteOptimizer(kernel.DefaultLocationTable())
//	route, err := optimizer.Optimize([]kernel.SKU{"37", "3", "9"})
//	// route[0] is SKU 3 at A,0,0,2
type RouteOptimizer struct {
	table *kernel.LocationTable
}

func NewRouteOptimizer(table *kernel.LocationTable) (*RouteOptimizer, error) {
	if table == nil {
		return nil, errs.NewValueIsRequiredError("location table")
	}
	return &RouteOptimizer{table: table}, nil
}

// Optimize returns one stop per SKU. An SKU missing from the table fails the
// whole route with an ObjectNotFoundError.
func (o *RouteOptimizer) Optimize(skus []kernel.SKU) ([]kernel.LocationEntry, error) {
	sorted := slices.Clone(skus)
	slices.SortStableFunc(sorted, compareSKU)

	route := make([]kernel.LocationEntry, 0, len(sorted))
	for _, sku := range sorted {
		loc, ok := o.table.Lookup(sku)
		if !ok {
			return nil, errs.NewObjectNotFoundError("sku", sku)
		}
		route = append(route, kernel.LocationEntry{Location: loc, SKU: sku})
	}
	return route, nil
}

// Locate returns the slot holding sku.
func (o *RouteOptimizer) Locate(sku kernel.SKU) (kernel.Location, error) {
	loc, ok := o.table.Lookup(sku)
	if !ok {
		return kernel.Location{}, errs.NewObjectNotFoundError("sku", sku)
	}
	return loc, nil
}

func compareSKU(a, b kernel.SKU) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
