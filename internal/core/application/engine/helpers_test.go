package engine_test

import (
	"sync"
	"testing"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/request"
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
	"Red/SE":    {"37", "38"},
	"Blue/SE":   {"9", "10"},
	"Green/SE":  {"21", "22"},
	"White/SE":  {"3", "4"},
	"Black/SE":  {"1", "2"},
	"Grey/SE":   {"5", "6"},
	"Beige/SE":  {"7", "8"},
	"Silver/SE": {"11", "12"},
	"Ghost/SE":  {"99", "100"},
}

var (
	// firstBatch forms a request with correct order [37 9 21 3 38 10 22 4].
	firstBatch = []string{"Red", "Blue", "Green", "White"}
	// firstRoute is the ascending traversal of firstBatch.
	firstRoute  = []kernel.SKU{"3", "4", "9", "10", "21", "22", "37", "38"}
	secondBatch = []string{"Black", "Grey", "Beige", "Silver"}
)

func fullStock() map[kernel.SKU]int {
	stock := make(map[kernel.SKU]int)
	for _, sku := range kernel.DefaultLocationTable().SKUs() {
		stock[sku] = 30
	}
	return stock
}

type recordingSink struct {
	ids []int
}

func (s *recordingSink) Append(pr *request.PickingRequest) error {
	s.ids = append(s.ids, pr.ID())
	return nil
}

type recordingObserver struct {
	mu        sync.Mutex
	lowStock  []kernel.SKU
	restocked map[kernel.SKU][]bool
	completed []int
	depths    [3]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{restocked: make(map[kernel.SKU][]bool)}
}

func (o *recordingObserver) LowStock(sku kernel.SKU) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lowStock = append(o.lowStock, sku)
}

func (o *recordingObserver) Restocked(sku kernel.SKU, committed bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.restocked[sku] = append(o.restocked[sku], committed)
}

func (o *recordingObserver) RequestCompleted(pr *request.PickingRequest) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.completed = append(o.completed, pr.ID())
}

func (o *recordingObserver) QueueDepths(requests, workers, restocks int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.depths = [3]int{requests, workers, restocks}
}

func newEngine(t *testing.T, policy engine.Policy, stock map[kernel.SKU]int, opts ...engine.Option) *engine.AssignmentEngine {
	t.Helper()
	optimizer, err := services.NewRouteOptimizer(kernel.DefaultLocationTable())
	require.NoError(t, err)

	e, err := engine.NewAssignmentEngine(logging.Discard(), policy, catalog, optimizer, stock, opts...)
	require.NoError(t, err)
	return e
}

func order(t *testing.T, e *engine.AssignmentEngine, colors ...string) {
	t.Helper()
	for _, c := range colors {
		require.NoError(t, e.OnOrderReceived(t.Context(), c, "SE"))
	}
}

func ready(t *testing.T, e *engine.AssignmentEngine, role, name string) {
	t.Helper()
	require.NoError(t, e.OnWorkerReady(t.Context(), role, name))
}

func scanAll(t *testing.T, e *engine.AssignmentEngine, role, name string, skus []kernel.SKU) {
	t.Helper()
	for _, sku := range skus {
		require.NoError(t, e.OnScan(t.Context(), role, name, sku.String()))
	}
}

func finish(t *testing.T, e *engine.AssignmentEngine, role, name string) {
	t.Helper()
	require.NoError(t, e.OnWorkerFinished(t.Context(), role, name))
}

func status(t *testing.T, e *engine.AssignmentEngine, id int) request.Status {
	t.Helper()
	pr, err := e.Request(id)
	require.NoError(t, err)
	return pr.Status()
}

func ids(prs []*request.PickingRequest) []int {
	out := make([]int, 0, len(prs))
	for _, pr := range prs {
		out = append(out, pr.ID())
	}
	return out
}
