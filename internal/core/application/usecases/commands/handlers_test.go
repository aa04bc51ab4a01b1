package commands_test

import (
	"context"
	"errors"
	"testing"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/request"
	"warehouse/internal/core/domain/model/worker"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReceiveOrderCommandHandler_SubmitsToRunner(t *testing.T) {
	// Arrange
	ctx := t.Context()
	runner := new(MockEngineRunner)
	runner.On("Submit", ctx, "order", mock.AnythingOfType("engine.CommandFunc")).Return(nil).Once()

	cmd, err := commands.NewReceiveOrderCommand("Red", "SE")
	require.NoError(t, err)
	handler := commands.NewReceiveOrderCommandHandler(runner)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	runner.AssertExpectations(t)
}

func TestCommandHandlers_RejectUnconstructedCommands(t *testing.T) {
	ctx := t.Context()
	runner := new(MockEngineRunner)

	ready := commands.NewWorkerReadyCommandHandler(runner)
	require.ErrorIs(t, ready.Handle(ctx, commands.WorkerReadyCommand{}), commands.ErrWorkerReadyCommandIsNotConstructed)

	scan := commands.NewScanCommandHandler(runner)
	require.ErrorIs(t, scan.Handle(ctx, commands.ScanCommand{}), commands.ErrScanCommandIsNotConstructed)

	rescan := commands.NewRescanCommandHandler(runner)
	require.ErrorIs(t, rescan.Handle(ctx, commands.RescanCommand{}), commands.ErrRescanCommandIsNotConstructed)

	discard := commands.NewDiscardCommandHandler(runner)
	require.ErrorIs(t, discard.Handle(ctx, commands.DiscardCommand{}), commands.ErrDiscardCommandIsNotConstructed)

	finish := commands.NewFinishWorkCommandHandler(runner)
	require.ErrorIs(t, finish.Handle(ctx, commands.FinishWorkCommand{}), commands.ErrFinishWorkCommandIsNotConstructed)

	runner.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestScanCommandHandler_PropagatesRunnerError(t *testing.T) {
	ctx := t.Context()
	runner := new(MockEngineRunner)
	runner.On("Submit", ctx, "scan", mock.Anything).Return(engine.ErrRunnerStopped).Once()

	cmd, err := commands.NewScanCommand("Picker", "Alice", "3")
	require.NoError(t, err)
	handler := commands.NewScanCommandHandler(runner)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, engine.ErrRunnerStopped)
	runner.AssertExpectations(t)
}

// workerEvents drives a real runner through the command handlers.
type workerEvents struct {
	t       *testing.T
	ctx     context.Context
	order   commands.ReceiveOrderCommandHandler
	ready   commands.WorkerReadyCommandHandler
	scan    commands.ScanCommandHandler
	rescan  commands.RescanCommandHandler
	discard commands.DiscardCommandHandler
	finish  commands.FinishWorkCommandHandler
}

func newWorkerEvents(t *testing.T, runner commands.EngineRunner) *workerEvents {
	return &workerEvents{
		t:       t,
		ctx:     t.Context(),
		order:   commands.NewReceiveOrderCommandHandler(runner),
		ready:   commands.NewWorkerReadyCommandHandler(runner),
		scan:    commands.NewScanCommandHandler(runner),
		rescan:  commands.NewRescanCommandHandler(runner),
		discard: commands.NewDiscardCommandHandler(runner),
		finish:  commands.NewFinishWorkCommandHandler(runner),
	}
}

func (w *workerEvents) Order(color string) error {
	cmd, err := commands.NewReceiveOrderCommand(color, "SE")
	require.NoError(w.t, err)
	return w.order.Handle(w.ctx, cmd)
}

func (w *workerEvents) Ready(role, name string) error {
	cmd, err := commands.NewWorkerReadyCommand(role, name)
	require.NoError(w.t, err)
	return w.ready.Handle(w.ctx, cmd)
}

func (w *workerEvents) Scan(role, name, sku string) error {
	cmd, err := commands.NewScanCommand(role, name, sku)
	require.NoError(w.t, err)
	return w.scan.Handle(w.ctx, cmd)
}

func (w *workerEvents) Rescan(role, name, sku string) error {
	cmd, err := commands.NewRescanCommand(role, name, sku)
	require.NoError(w.t, err)
	return w.rescan.Handle(w.ctx, cmd)
}

func (w *workerEvents) Discard(role, name string) error {
	cmd, err := commands.NewDiscardCommand(role, name)
	require.NoError(w.t, err)
	return w.discard.Handle(w.ctx, cmd)
}

func (w *workerEvents) Finish(role, name string) error {
	cmd, err := commands.NewFinishWorkCommand(role, name)
	require.NoError(w.t, err)
	return w.finish.Handle(w.ctx, cmd)
}

// completeRequest runs one request through every stage.
func (w *workerEvents) completeRequest() {
	for _, c := range []string{"Red", "Blue", "Green", "White"} {
		require.NoError(w.t, w.Order(c))
	}
	require.NoError(w.t, w.Ready("Picker", "Alice"))
	require.NoError(w.t, w.Finish("Picker", "Alice"))
	require.NoError(w.t, w.Ready("Sequencer", "Sue"))
	for _, sku := range []string{"37", "9", "21", "3", "38", "10", "22", "4"} {
		require.NoError(w.t, w.Scan("Sequencer", "Sue", sku))
	}
	require.NoError(w.t, w.Finish("Sequencer", "Sue"))
	require.NoError(w.t, w.Ready("Loader", "Lou"))
	require.NoError(w.t, w.Finish("Loader", "Lou"))
}

func TestWorkerEventHandlers_WithEngine(t *testing.T) {
	runner := newRunner(t)
	events := newWorkerEvents(t, runner)

	events.completeRequest()

	var completed []*request.PickingRequest
	require.NoError(t, runner.Query(t.Context(), func(e *engine.AssignmentEngine) {
		completed = e.Completed()
	}))
	require.Len(t, completed, 1)
	assert.Equal(t, 1, completed[0].ID())

	t.Run("engine errors reach the caller", func(t *testing.T) {
		require.ErrorIs(t, events.Order("Purple"), errs.ErrObjectNotFound)
		require.ErrorIs(t, events.Ready("Driver", "Dan"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, events.Scan("Picker", "Zoe", "3"), errs.ErrObjectNotFound)
		require.ErrorIs(t, events.Discard("Picker", "Alice"), worker.ErrWorkerIdle)
		require.True(t, errors.Is(events.Finish("Loader", "Lou"), worker.ErrWorkerIdle))
	})

	t.Run("rescan without sku resets the buffer", func(t *testing.T) {
		for _, c := range []string{"Red", "Blue", "Green", "White"} {
			require.NoError(t, events.Order(c))
		}
		require.NoError(t, events.Ready("Picker", "Alice"))
		require.NoError(t, events.Finish("Picker", "Alice"))
		require.NoError(t, events.Ready("Sequencer", "Sue"))
		require.NoError(t, events.Scan("Sequencer", "Sue", "4"))
		require.NoError(t, events.Rescan("Sequencer", "Sue", ""))

		scans := -1
		require.NoError(t, runner.Query(t.Context(), func(e *engine.AssignmentEngine) {
			if w, err := e.Worker("Sue"); err == nil {
				scans = len(w.Scans())
			}
		}))
		assert.Zero(t, scans)
	})
}
