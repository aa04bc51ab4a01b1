package commands_test

import (
	"errors"
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveSnapshotCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	runner := newRunner(t)
	newWorkerEvents(t, runner).completeRequest()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cmd, err := commands.NewSaveSnapshotCommand(at)
	require.NoError(t, err)

	snapshots := new(MockInventorySnapshotRepository)
	completed := new(MockCompletedRequestRepository)
	uow := new(MockSnapshotUoW)
	factory := new(MockSnapshotUoWFactory)

	isSnapshot := mock.MatchedBy(func(s *report.InventorySnapshot) bool {
		n, ok := s.Count("3")
		return ok && n == 30 && s.TakenAt().Equal(at) && len(s.Levels()) == 48
	})
	isRequestOne := mock.MatchedBy(func(c *report.CompletedRequest) bool {
		return c.RequestID() == 1 && len(c.Orders()) == 4
	})

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventorySnapshotRepository").Return(snapshots).Once(),
		snapshots.On("Add", ctx, isSnapshot).Return(nil).Once(),
		uow.On("CompletedRequestRepository").Return(completed).Once(),
		completed.On("Save", ctx, isRequestOne).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSaveSnapshotCommandHandler(runner, factory, kernel.DefaultLocationTable())

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	snapshots.AssertExpectations(t)
	completed.AssertExpectations(t)
}

func TestSaveSnapshotCommandHandler_Handle_AddFails(t *testing.T) {
	ctx := t.Context()
	runner := newRunner(t)
	cmd, err := commands.NewSaveSnapshotCommand(time.Now())
	require.NoError(t, err)

	dbErr := errors.New("connection reset")
	snapshots := new(MockInventorySnapshotRepository)
	uow := new(MockSnapshotUoW)
	factory := new(MockSnapshotUoWFactory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventorySnapshotRepository").Return(snapshots).Once(),
		snapshots.On("Add", ctx, mock.Anything).Return(dbErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSaveSnapshotCommandHandler(runner, factory, kernel.DefaultLocationTable())

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, dbErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestSaveSnapshotCommandHandler_Handle_BeginFails(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSaveSnapshotCommand(time.Now())
	require.NoError(t, err)

	uow := new(MockSnapshotUoW)
	uow.On("Begin", ctx).Return(errors.New("no database")).Once()
	factory := new(MockSnapshotUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSaveSnapshotCommandHandler(newRunner(t), factory, kernel.DefaultLocationTable())

	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, "no database", err.Error())
	uow.AssertExpectations(t)
}

func TestSaveSnapshotCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockSnapshotUoWFactory)
	handler := commands.NewSaveSnapshotCommandHandler(new(MockEngineRunner), factory, kernel.DefaultLocationTable())

	err := handler.Handle(t.Context(), commands.SaveSnapshotCommand{})

	require.ErrorIs(t, err, commands.ErrSaveSnapshotCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
