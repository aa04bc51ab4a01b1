package request_test

import (
	"slices"
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/request"

	"github.com/stretchr/testify/require"
)

// pairs used throughout the package tests; they produce the correct order
// [37 9 21 3 38 10 22 4].
var scenarioPairs = [][2]kernel.SKU{{"37", "38"}, {"9", "10"}, {"21", "22"}, {"3", "4"}}

func newOrders(t *testing.T, pairs [][2]kernel.SKU) []*request.Order {
	t.Helper()
	orders := make([]*request.Order, 0, len(pairs))
	for _, p := range pairs {
		o, err := request.NewOrder("White", "SE", p[0], p[1])
		require.NoError(t, err)
		orders = append(orders, o)
	}
	return orders
}

// ascendingRoute mimics the route optimizer without importing it.
func ascendingRoute(t *testing.T, orders []*request.Order) []kernel.LocationEntry {
	t.Helper()
	table := kernel.DefaultLocationTable()

	skus := make([]kernel.SKU, 0, len(orders)*2)
	for _, o := range orders {
		skus = append(skus, o.FrontSKU(), o.BackSKU())
	}
	slices.SortFunc(skus, func(a, b kernel.SKU) int { return a.Number() - b.Number() })

	route := make([]kernel.LocationEntry, 0, len(skus))
	for _, sku := range skus {
		loc, ok := table.Lookup(sku)
		require.True(t, ok)
		route = append(route, kernel.LocationEntry{Location: loc, SKU: sku})
	}
	return route
}

func newScenarioRequest(t *testing.T, id int) *request.PickingRequest {
	t.Helper()
	orders := newOrders(t, scenarioPairs)
	pr, err := request.NewPickingRequest(id, orders, ascendingRoute(t, orders))
	require.NoError(t, err)
	return pr
}
