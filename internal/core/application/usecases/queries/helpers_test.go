package queries_test

import (
	"context"
	"testing"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/logging"

	"github.com/stretchr/testify/require"
)

type translations map[string][2]kernel.SKU

func (t translations) Translate(color, model string) (kernel.SKU, kernel.SKU, error) {
	p, ok := t[color+"/"+model]
	if !ok {
		return "", "", errs.NewObjectNotFoundError("translation", color+" "+model)
	}
	return p[0], p[1], nil
}

var catalog = translations{
	"Red/SE":   {"37", "38"},
	"Blue/SE":  {"9", "10"},
	"Green/SE": {"21", "22"},
	"White/SE": {"3", "4"},
}

func newRunner(t *testing.T, stock map[kernel.SKU]int) *engine.Runner {
	t.Helper()
	optimizer, err := services.NewRouteOptimizer(kernel.DefaultLocationTable())
	require.NoError(t, err)
	e, err := engine.NewAssignmentEngine(logging.Discard(), engine.DefaultPolicy(), catalog, optimizer, stock)
	require.NoError(t, err)

	r := engine.NewRunner(e, logging.Discard())
	t.Cleanup(r.Stop)
	return r
}

func submit(t *testing.T, r *engine.Runner, fn engine.CommandFunc) {
	t.Helper()
	require.NoError(t, r.Submit(t.Context(), "test", fn))
}

func orderBatch(t *testing.T, r *engine.Runner) {
	t.Helper()
	submit(t, r, func(ctx context.Context, e *engine.AssignmentEngine) error {
		for _, c := range []string{"Red", "Blue", "Green", "White"} {
			if err := e.OnOrderReceived(ctx, c, "SE"); err != nil {
				return err
			}
		}
		return nil
	})
}
