package kernel_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID_KeysAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := kernel.NewUUID()
		require.NoError(t, id.Validate())
		assert.False(t, seen[id.String()], "duplicate key %s", id)
		seen[id.String()] = true
	}
}

func TestParseUUID(t *testing.T) {
	stored := kernel.NewUUID()

	tests := map[string]struct {
		in      string
		wantErr error
	}{
		"key written by the snapshot job": {in: stored.String()},
		"urn form":                        {in: "urn:uuid:" + stored.String()},
		"zero key":                        {in: uuid.Nil.String(), wantErr: kernel.ErrUUIDIsZero},
		"truncated":                       {in: stored.String()[:20], wantErr: errs.ErrValueIsInvalid},
		"empty":                           {in: "", wantErr: errs.ErrValueIsInvalid},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			id, err := kernel.ParseUUID(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, id.Equal(stored))
		})
	}
}

func TestRestoreUUID(t *testing.T) {
	id := kernel.NewUUID()

	restored, err := kernel.RestoreUUID(id.Value())
	require.NoError(t, err)
	assert.True(t, restored.Equal(id))

	_, err = kernel.RestoreUUID(uuid.Nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero kernel.UUID
	assert.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsZero)
}
