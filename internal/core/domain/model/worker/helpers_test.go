package worker_test

import (
	"slices"
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/request"

	"github.com/stretchr/testify/require"
)

// newRequest batches the orders (37,38) (9,10) (21,22) (3,4) with an
// ascending route, so the correct order is [37 9 21 3 38 10 22 4] and the
// traversal is [3 4 9 10 21 22 37 38].
func newRequest(t *testing.T, id int) *request.PickingRequest {
	t.Helper()
	table := kernel.DefaultLocationTable()

	pairs := [][2]kernel.SKU{{"37", "38"}, {"9", "10"}, {"21", "22"}, {"3", "4"}}
	orders := make([]*request.Order, 0, len(pairs))
	skus := make([]kernel.SKU, 0, len(pairs)*2)
	for _, p := range pairs {
		o, err := request.NewOrder("White", "S", p[0], p[1])
		require.NoError(t, err)
		orders = append(orders, o)
		skus = append(skus, p[0], p[1])
	}
	slices.SortFunc(skus, func(a, b kernel.SKU) int { return a.Number() - b.Number() })

	route := make([]kernel.LocationEntry, 0, len(skus))
	for _, sku := range skus {
		loc, ok := table.Lookup(sku)
		require.True(t, ok)
		route = append(route, kernel.LocationEntry{Location: loc, SKU: sku})
	}

	pr, err := request.NewPickingRequest(id, orders, route)
	require.NoError(t, err)
	return pr
}

var traversal = []kernel.SKU{"3", "4", "9", "10", "21", "22", "37", "38"}

func advanceTo(t *testing.T, pr *request.PickingRequest, st request.Status) {
	t.Helper()
	steps := []func() error{
		pr.StartPicking, pr.FinishPicking, pr.StartSequencing, pr.FinishSequencing,
		pr.StartLoading, pr.FinishLoading, pr.Finish,
	}
	for pr.Status() != st {
		require.NoError(t, steps[int(pr.Status())-int(request.Waiting)]())
	}
}
