package commands_test

import (
	"context"
	"testing"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/report"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/logging"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEngineRunner struct{ mock.Mock }

func (m *MockEngineRunner) Submit(ctx context.Context, name string, fn engine.CommandFunc) error {
	args := m.Called(ctx, name, fn)
	return args.Error(0)
}

func (m *MockEngineRunner) Query(ctx context.Context, fn engine.QueryFunc) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

type MockInventorySnapshotRepository struct{ mock.Mock }

func (m *MockInventorySnapshotRepository) Add(ctx context.Context, s *report.InventorySnapshot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockInventorySnapshotRepository) Latest(ctx context.Context) (*report.InventorySnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.InventorySnapshot), args.Error(1)
}

type MockCompletedRequestRepository struct{ mock.Mock }

func (m *MockCompletedRequestRepository) Save(ctx context.Context, c *report.CompletedRequest) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompletedRequestRepository) Get(ctx context.Context, requestID int) (*report.CompletedRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.CompletedRequest), args.Error(1)
}

func (m *MockCompletedRequestRepository) List(ctx context.Context) ([]*report.CompletedRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*report.CompletedRequest), args.Error(1)
}

type MockSnapshotUoW struct{ mock.Mock }

func (m *MockSnapshotUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSnapshotUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSnapshotUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSnapshotUoW) InventorySnapshotRepository() ports.InventorySnapshotRepository {
	args := m.Called()
	return args.Get(0).(ports.InventorySnapshotRepository)
}

func (m *MockSnapshotUoW) CompletedRequestRepository() ports.CompletedRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.CompletedRequestRepository)
}

type MockSnapshotUoWFactory struct{ mock.Mock }

func (m *MockSnapshotUoWFactory) Create() commands.SnapshotUoW {
	args := m.Called()
	return args.Get(0).(commands.SnapshotUoW)
}

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

// newRunner starts a runner over an engine with every SKU at 30.
func newRunner(t *testing.T) *engine.Runner {
	t.Helper()
	table := kernel.DefaultLocationTable()
	optimizer, err := services.NewRouteOptimizer(table)
	require.NoError(t, err)

	stock := make(map[kernel.SKU]int)
	for _, sku := range table.SKUs() {
		stock[sku] = 30
	}
	e, err := engine.NewAssignmentEngine(logging.Discard(), engine.DefaultPolicy(), catalog, optimizer, stock)
	require.NoError(t, err)

	r := engine.NewRunner(e, logging.Discard())
	t.Cleanup(r.Stop)
	return r
}
