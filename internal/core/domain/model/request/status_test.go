package request_test

import (
	"testing"

	"warehouse/internal/core/domain/model/request"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Waiting", request.Waiting.String())
	assert.Equal(t, "Sequenced", request.Sequenced.String())
	assert.Equal(t, "Finished", request.Finished.String())
	assert.Equal(t, "Unknown", request.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	st, err := request.ParseStatus("Loading")
	require.NoError(t, err)
	assert.Equal(t, request.Loading, st)

	_, err = request.ParseStatus("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = request.ParseStatus("Packed")
	require.Error(t, err)
}

func TestStatus_Advance(t *testing.T) {
	chain := []request.Status{
		request.Waiting, request.Picking, request.Picked, request.Sequencing,
		request.Sequenced, request.Loading, request.Loaded, request.Finished,
	}

	t.Run("every stage moves to its successor", func(t *testing.T) {
		for i := 0; i < len(chain)-1; i++ {
			next, err := chain[i].Advance(chain[i+1])
			require.NoError(t, err)
			assert.Equal(t, chain[i+1], next)
		}
	})

	t.Run("stages cannot be skipped", func(t *testing.T) {
		for i := 0; i < len(chain)-2; i++ {
			_, err := chain[i].Advance(chain[i+2])
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "%s -> %s", chain[i], chain[i+2])
		}
	})

	t.Run("finished has no successor", func(t *testing.T) {
		_, err := request.Finished.Advance(request.Waiting)
		require.Error(t, err)
	})

	t.Run("unknown cannot advance", func(t *testing.T) {
		_, err := request.Unknown.Advance(request.Waiting)
		require.Error(t, err)
	})
}

func TestStatus_Reset(t *testing.T) {
	for _, st := range []request.Status{request.Waiting, request.Picking, request.Sequencing, request.Loading, request.Sequenced} {
		next, err := st.Reset()
		require.NoError(t, err, st.String())
		assert.Equal(t, request.Waiting, next)
	}

	_, err := request.Finished.Reset()
	require.Error(t, err)

	_, err = request.Unknown.Reset()
	require.Error(t, err)
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, request.Finished.IsTerminal())
	assert.False(t, request.Loaded.IsTerminal())
	assert.True(t, request.Picking.InProgress())
	assert.False(t, request.Picked.InProgress())
	assert.True(t, request.Loaded.IsLoaded())
	assert.True(t, request.Finished.IsLoaded())
	assert.False(t, request.Loading.IsLoaded())
}
