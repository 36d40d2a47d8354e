//go:build unit

package order_test

import (
	"testing"
	"time"

	"tableside/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestNewOrder(t *testing.T) {
	installation := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	departure := timePtr(installation.Add(2 * time.Hour))
	createdAt := time.Date(2023, 12, 31, 9, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := order.NewOrder("BK-1", 3, installation, departure, createdAt)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "BK-1", actual.Reference())
		assert.Equal(t, int64(3), actual.TableID())
		assert.Equal(t, installation, actual.Stay().Installation())
		assert.Equal(t, departure, actual.Stay().Departure())
		assert.Equal(t, createdAt, actual.CreatedAt())
	})

	t.Run("empty reference gets generated", func(t *testing.T) {
		actual, err := order.NewOrder("", 3, installation, nil, createdAt)
		require.NoError(t, err)
		assert.NotEmpty(t, actual.Reference())
	})

	testCases := []struct {
		name         string
		tableID      int64
		installation time.Time
		departure    *time.Time
		errIs        error
	}{
		{name: "missing table id", tableID: 0, installation: installation, errIs: order.ErrMissingTableID},
		{name: "missing installation", tableID: 3, installation: time.Time{}, errIs: order.ErrMissingInstallation},
		{name: "departure before installation", tableID: 3, installation: installation, departure: timePtr(installation.Add(-time.Hour)), errIs: order.ErrInvalidStay},
		{name: "departure equals installation", tableID: 3, installation: installation, departure: timePtr(installation), errIs: order.ErrInvalidStay},
		{name: "open ended stay", tableID: 3, installation: installation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := order.NewOrder("ref", tc.tableID, tc.installation, tc.departure, createdAt)
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

func TestStay_Blocks(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)

	bounded, err := order.NewStay(t1, timePtr(t2))
	require.NoError(t, err)

	t.Run("bounded stay", func(t *testing.T) {
		testCases := []struct {
			name    string
			instant time.Time
			blocked bool
		}{
			{name: "strictly inside", instant: t1.Add(time.Hour), blocked: true},
			{name: "just after installation", instant: t1.Add(time.Nanosecond), blocked: true},
			{name: "just before departure", instant: t2.Add(-time.Nanosecond), blocked: true},
			{name: "exactly at installation", instant: t1, blocked: false},
			{name: "exactly at departure", instant: t2, blocked: false},
			{name: "before the stay", instant: t1.Add(-time.Minute), blocked: false},
			{name: "after the stay", instant: t2.Add(time.Minute), blocked: false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.blocked, bounded.Blocks(tc.instant))
			})
		}
	})

	t.Run("open ended stay blocks indefinitely", func(t *testing.T) {
		open, err := order.NewStay(t1, nil)
		require.NoError(t, err)

		assert.False(t, open.Blocks(t1))
		assert.False(t, open.Blocks(t1.Add(-time.Minute)))
		assert.True(t, open.Blocks(t1.Add(time.Minute)))
		assert.True(t, open.Blocks(t1.AddDate(10, 0, 0)))
	})
}
