//go:build unit

package table_test

import (
	"testing"

	"tableside/internal/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := table.NewTable(7, 4)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, int64(0), actual.ID())
		assert.Equal(t, 7, actual.Number())
		assert.Equal(t, 4, actual.Capacity())
	})

	testCases := []struct {
		name     string
		number   int
		capacity int
		errIs    error
	}{
		{name: "zero number", number: 0, capacity: 4, errIs: table.ErrInvalidNumber},
		{name: "negative number", number: -3, capacity: 4, errIs: table.ErrInvalidNumber},
		{name: "zero capacity", number: 1, capacity: 0, errIs: table.ErrInvalidCapacity},
		{name: "negative capacity", number: 1, capacity: -2, errIs: table.ErrInvalidCapacity},
		{name: "minimum valid", number: 1, capacity: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := table.NewTable(tc.number, tc.capacity)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestTable_WithID(t *testing.T) {
	original, err := table.NewTable(2, 6)
	require.NoError(t, err)

	withID := original.WithID(42)

	assert.Equal(t, int64(42), withID.ID())
	assert.Equal(t, original.Number(), withID.Number())
	assert.Equal(t, original.Capacity(), withID.Capacity())
	assert.Equal(t, int64(0), original.ID(), "original must stay untouched")
}
