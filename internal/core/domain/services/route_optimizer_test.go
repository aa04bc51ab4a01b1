package services_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteOptimizer_Optimize(t *testing.T) {
	optimizer, err := services.NewRouteOptimizer(kernel.DefaultLocationTable())
	require.NoError(t, err)

	t.Run("ascending numeric order", func(t *testing.T) {
		route, err := optimizer.Optimize([]kernel.SKU{"37", "38", "9", "10", "21", "22", "3", "4"})
		require.NoError(t, err)

		got := make([]kernel.SKU, 0, len(route))
		for _, stop := range route {
			got = append(got, stop.SKU)
		}
		assert.Equal(t, []kernel.SKU{"3", "4", "9", "10", "21", "22", "37", "38"}, got)
		assert.Equal(t, "A,0,0,2", route[0].Location.String())
		assert.Equal(t, "A,0,2,0", route[2].Location.String())
		assert.Equal(t, "A,0,2,1", route[3].Location.String())
	})

	t.Run("deterministic and does not touch the input", func(t *testing.T) {
		in := []kernel.SKU{"12", "2"}
		first, err := optimizer.Optimize(in)
		require.NoError(t, err)
		second, err := optimizer.Optimize(in)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, []kernel.SKU{"12", "2"}, in)
	})

	t.Run("unknown sku", func(t *testing.T) {
		_, err := optimizer.Optimize([]kernel.SKU{"3", "99"})
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "99")
	})

	t.Run("locate", func(t *testing.T) {
		loc, err := optimizer.Locate("48")
		require.NoError(t, err)
		assert.Equal(t, "B,1,2,3", loc.String())

		_, err = optimizer.Locate("0")
		require.Error(t, err)
	})
}

func TestNewRouteOptimizer_RequiresTable(t *testing.T) {
	_, err := services.NewRouteOptimizer(nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
