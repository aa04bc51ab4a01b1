package queries_test

import (
	"context"
	"testing"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInventoryQueryHandler(t *testing.T) {
	r := newRunner(t, map[kernel.SKU]int{"10": 30, "2": 4, "99": 1})
	handler := queries.NewGetInventoryQueryHandler(r, kernel.DefaultLocationTable())

	t.Run("all levels in SKU order", func(t *testing.T) {
		levels, err := handler.Handle(t.Context(), queries.NewGetInventoryQuery(false))
		require.NoError(t, err)
		assert.Equal(t, []queries.GetInventoryQueryResponse{
			{SKU: "2", Location: "A,0,0,1", Count: 4},
			{SKU: "10", Location: "A,0,2,1", Count: 30},
			{SKU: "99", Count: 1},
		}, levels)
	})

	t.Run("shortages only", func(t *testing.T) {
		levels, err := handler.Handle(t.Context(), queries.NewGetInventoryQuery(true))
		require.NoError(t, err)
		require.Len(t, levels, 2)
		assert.Equal(t, "2", levels[0].SKU)
		assert.Equal(t, "99", levels[1].SKU)
	})

	t.Run("not constructed", func(t *testing.T) {
		_, err := handler.Handle(t.Context(), queries.GetInventoryQuery{})
		require.ErrorIs(t, err, queries.ErrGetInventoryQueryIsNotConstructed)
	})
}

func TestGetRequestsQueryHandler(t *testing.T) {
	stock := make(map[kernel.SKU]int)
	for _, sku := range kernel.DefaultLocationTable().SKUs() {
		stock[sku] = 30
	}
	r := newRunner(t, stock)
	orderBatch(t, r)
	orderBatch(t, r)
	submit(t, r, func(ctx context.Context, e *engine.AssignmentEngine) error {
		return e.OnWorkerReady(ctx, "Picker", "Alice")
	})
	handler := queries.NewGetRequestsQueryHandler(r)

	all, err := queries.NewGetRequestsQuery("")
	require.NoError(t, err)
	got, err := handler.Handle(t.Context(), all)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "Picking", got[0].Status)
	assert.Equal(t, []string{"37", "9", "21", "3", "38", "10", "22", "4"}, got[0].CorrectOrder)
	assert.Equal(t, 7, got[0].Remaining)
	assert.Equal(t, queries.OrderResponse{Color: "Red", Model: "SE", Front: "37", Back: "38"}, got[0].Orders[0])

	waiting, err := queries.NewGetRequestsQuery("Waiting")
	require.NoError(t, err)
	got, err = handler.Handle(t.Context(), waiting)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	_, err = queries.NewGetRequestsQuery("Shipped")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetWorkersQueryHandler(t *testing.T) {
	stock := map[kernel.SKU]int{"3": 30}
	r := newRunner(t, stock)
	submit(t, r, func(ctx context.Context, e *engine.AssignmentEngine) error {
		if err := e.OnWorkerReady(ctx, "Loader", "Lou"); err != nil {
			return err
		}
		return e.OnWorkerReady(ctx, "Replenisher", "Rob")
	})
	handler := queries.NewGetWorkersQueryHandler(r)

	got, err := handler.Handle(t.Context(), queries.NewGetWorkersQuery())

	require.NoError(t, err)
	assert.Equal(t, []queries.GetWorkersQueryResponse{
		{Name: "Lou", Role: "Loader", Idle: true, Waiting: true},
		{Name: "Rob", Role: "Replenisher", Idle: true, Waiting: true},
	}, got)
}
