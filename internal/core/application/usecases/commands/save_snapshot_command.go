package commands

import (
	"errors"
	"time"

	"warehouse/internal/pkg/guard"
)

var (
	ErrSaveSnapshotCommandIsNotConstructed = errors.New(
		"SaveSnapshotCommand must be created via NewSaveSnapshotCommand constructor",
	)
	ErrTakenAtIsRequired = errors.New("snapshot time is required")
)

// SaveSnapshotCommand persists the current stock levels together with every
// request loaded so far.
//
// Example:
//
//	cmd, err := NewSaveSnapshotCommand(time.Now())
//	if err != nil {
//	    return err
//	}
//
//	handler := NewSaveSnapshotCommandHandler(runner, uowFactory, table)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("snapshot failed: %w", err)
//	}
type SaveSnapshotCommand struct { //nolint:recvcheck //using for validation
	takenAt time.Time

	guard guard.ConstructorGuard
}

func NewSaveSnapshotCommand(takenAt time.Time) (SaveSnapshotCommand, error) {
	command := SaveSnapshotCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTakenAt(takenAt); err != nil {
		return SaveSnapshotCommand{}, err
	}

	return command, nil
}

func (c SaveSnapshotCommand) Validate() error {
	return c.guard.Validate(ErrSaveSnapshotCommandIsNotConstructed)
}

// TakenAt is the snapshot time in UTC.
func (c SaveSnapshotCommand) TakenAt() time.Time {
	return c.takenAt
}

func (c *SaveSnapshotCommand) setTakenAt(at time.Time) error {
	if at.IsZero() {
		return ErrTakenAtIsRequired
	}

	c.takenAt = at.UTC()
	return nil
}
