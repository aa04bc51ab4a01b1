package kernel

import (
	"fmt"

	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsZero is returned for the zero UUID, which never names a stored
// record.
var ErrUUIDIsZero = errs.NewValueIsRequiredError("record id")

// UUID keys rows written by the snapshot job: inventory snapshots and
// completed requests. Picking requests keep their sequential ids.
type UUID struct {
	id uuid.UUID
}

func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// ParseUUID accepts any form uuid.Parse understands.
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("record id", fmt.Errorf("%q: %w", s, err))
	}
	return RestoreUUID(id)
}

// RestoreUUID wraps a key read back from a DTO.
func RestoreUUID(id uuid.UUID) (UUID, error) {
	if id == uuid.Nil {
		return UUID{}, ErrUUIDIsZero
	}
	return UUID{id: id}, nil
}

// Value is the column value stored by the postgres adapters.
func (u UUID) Value() uuid.UUID {
	return u.id
}

func (u UUID) String() string {
	return u.id.String()
}

func (u UUID) Equal(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsZero
	}
	return nil
}
