package engine_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/domain/model/request"
	"warehouse/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCommands struct {
	mu    sync.Mutex
	names []string
	errs  []error
}

func (r *recordingCommands) CommandHandled(name string, err error, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, name)
	r.errs = append(r.errs, err)
}

func newRunner(t *testing.T, opts ...engine.RunnerOption) *engine.Runner {
	t.Helper()
	r := engine.NewRunner(newEngine(t, engine.DefaultPolicy(), fullStock()), logging.Discard(), opts...)
	t.Cleanup(r.Stop)
	return r
}

func TestRunner_SubmitAndQuery(t *testing.T) {
	cmds := &recordingCommands{}
	r := newRunner(t, engine.WithCommandObserver(cmds))
	ctx := t.Context()

	for _, c := range firstBatch {
		err := r.Submit(ctx, "order", func(ctx context.Context, e *engine.AssignmentEngine) error {
			return e.OnOrderReceived(ctx, c, "SE")
		})
		require.NoError(t, err)
	}
	err := r.Submit(ctx, "order", func(ctx context.Context, e *engine.AssignmentEngine) error {
		return e.OnOrderReceived(ctx, "Purple", "SE")
	})
	require.Error(t, err)

	var waiting []int
	require.NoError(t, r.Query(ctx, func(e *engine.AssignmentEngine) {
		waiting = ids(e.RequestsByStatus(request.Waiting))
	}))
	assert.Equal(t, []int{1}, waiting)

	assert.Equal(t, []string{"order", "order", "order", "order", "order", "query"}, cmds.names)
	assert.Error(t, cmds.errs[4])
}

func TestRunner_ConcurrentSubmits(t *testing.T) {
	r := newRunner(t)
	ctx := t.Context()

	colors := append(slices.Clone(firstBatch), secondBatch...)

	var wg sync.WaitGroup
	for _, c := range colors {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.Submit(ctx, "order", func(ctx context.Context, e *engine.AssignmentEngine) error {
				return e.OnOrderReceived(ctx, c, "SE")
			}))
		}()
	}
	wg.Wait()

	var n, orders int
	require.NoError(t, r.Query(ctx, func(e *engine.AssignmentEngine) {
		n = len(e.Requests())
		orders = len(e.Orders())
	}))
	assert.Equal(t, 2, n)
	assert.Equal(t, 8, orders)
}

func TestRunner_Panic(t *testing.T) {
	r := newRunner(t)

	err := r.Submit(t.Context(), "boom", func(context.Context, *engine.AssignmentEngine) error {
		panic("boom")
	})
	require.Error(t, err)

	require.NoError(t, r.Query(t.Context(), func(*engine.AssignmentEngine) {}))
}

func TestRunner_Stopped(t *testing.T) {
	r := newRunner(t)
	r.Stop()
	r.Stop()

	err := r.Submit(t.Context(), "order", func(context.Context, *engine.AssignmentEngine) error {
		return nil
	})
	require.ErrorIs(t, err, engine.ErrRunnerStopped)
}

func TestRunner_CanceledContext(t *testing.T) {
	r := newRunner(t)
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_ = r.Submit(context.Background(), "block", func(context.Context, *engine.AssignmentEngine) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	err := r.Submit(ctx, "order", func(context.Context, *engine.AssignmentEngine) error {
		return nil
	})
	require.True(t, errors.Is(err, context.Canceled))
	close(release)
}
