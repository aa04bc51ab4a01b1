package commands_test

import (
	"errors"
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReceiveOrderCommand(t *testing.T) {
	cmd, err := commands.NewReceiveOrderCommand(" Red ", "SE")
	require.NoError(t, err)
	assert.Equal(t, "Red", cmd.Color())
	assert.Equal(t, "SE", cmd.Model())
	require.NoError(t, cmd.Validate())

	_, err = commands.NewReceiveOrderCommand("", "")
	require.ErrorIs(t, err, commands.ErrColorIsRequired)
	require.ErrorIs(t, err, commands.ErrModelIsRequired)

	var zero commands.ReceiveOrderCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrReceiveOrderCommandIsNotConstructed)
}

func TestNewWorkerReadyCommand(t *testing.T) {
	cmd, err := commands.NewWorkerReadyCommand("Picker", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Picker", cmd.Role())
	assert.Equal(t, "Alice", cmd.Name())

	_, err = commands.NewWorkerReadyCommand("", "Alice")
	require.ErrorIs(t, err, commands.ErrRoleIsRequired)
	_, err = commands.NewWorkerReadyCommand("Picker", " ")
	require.ErrorIs(t, err, commands.ErrWorkerNameIsRequired)

	var zero commands.WorkerReadyCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrWorkerReadyCommandIsNotConstructed)
}

func TestNewScanCommand(t *testing.T) {
	cmd, err := commands.NewScanCommand("Loader", "Lou", "37")
	require.NoError(t, err)
	assert.Equal(t, "37", cmd.SKU())

	_, err = commands.NewScanCommand("Loader", "", "")
	require.ErrorIs(t, err, commands.ErrWorkerNameIsRequired)
	require.ErrorIs(t, err, commands.ErrSKUIsRequired)
}

func TestNewRescanCommand(t *testing.T) {
	cmd, err := commands.NewRescanCommand("Sequencer", "Sue", "")
	require.NoError(t, err)
	assert.Equal(t, "0", cmd.SKU())

	cmd, err = commands.NewRescanCommand("Picker", "Alice", "4")
	require.NoError(t, err)
	assert.Equal(t, "4", cmd.SKU())
}

func TestNewDiscardAndFinishCommands(t *testing.T) {
	d, err := commands.NewDiscardCommand("Picker", "Alice")
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	f, err := commands.NewFinishWorkCommand("Picker", "Alice")
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	_, err = commands.NewFinishWorkCommand("", "")
	require.True(t, errors.Is(err, commands.ErrRoleIsRequired) && errors.Is(err, commands.ErrWorkerNameIsRequired))

	var zero commands.DiscardCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrDiscardCommandIsNotConstructed)
}

func TestNewSaveSnapshotCommand(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	cmd, err := commands.NewSaveSnapshotCommand(at)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, cmd.TakenAt().Location())
	assert.True(t, at.Equal(cmd.TakenAt()))

	_, err = commands.NewSaveSnapshotCommand(time.Time{})
	require.ErrorIs(t, err, commands.ErrTakenAtIsRequired)
}
