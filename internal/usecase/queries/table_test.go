//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tableside/internal/infra"
	"tableside/internal/usecase/queries"
	"tableside/tests/common/fake"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	uow := fake.NewUnitOfWork()
	seeded := uow.SeedTable(4, 6)
	sut := queries.NewTableQueries(uow)

	t.Run("reads are idempotent", func(t *testing.T) {
		first, err := sut.GetByID(ctx, seeded.ID())
		require.NoError(t, err)
		second, err := sut.GetByID(ctx, seeded.ID())
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(first, second))
		assert.Equal(t, 4, first.Number)
		assert.Equal(t, 6, first.Capacity)
	})

	t.Run("unknown id", func(t *testing.T) {
		view, err := sut.GetByID(ctx, 999)
		require.Error(t, err)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestTableQueries_List(t *testing.T) {
	ctx := context.Background()

	uow := fake.NewUnitOfWork()
	uow.SeedTable(5, 2)
	uow.SeedTable(1, 4)
	uow.SeedTable(3, 8)
	sut := queries.NewTableQueries(uow)

	rows, err := sut.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	numbers := make([]int, len(rows))
	for i, row := range rows {
		numbers[i] = row.Number
	}
	assert.Equal(t, []int{1, 3, 5}, numbers, "listing is ascending by table number")
}

func TestTableQueries_ListAvailableAt(t *testing.T) {
	ctx := context.Background()

	uow := fake.NewUnitOfWork()
	t1 := uow.SeedTable(1, 4)
	t2 := uow.SeedTable(2, 2)
	t3 := uow.SeedTable(3, 6)

	lunch := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	lunchEnd := lunch.Add(2 * time.Hour)
	uow.SeedOrder(t1.ID(), lunch, &lunchEnd)
	uow.SeedOrder(t3.ID(), lunch.Add(time.Hour), nil)

	sut := queries.NewTableQueries(uow)

	t.Run("only unoccupied tables are listed", func(t *testing.T) {
		rows, err := sut.ListAvailableAt(ctx, lunch.Add(90*time.Minute))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, t2.ID(), rows[0].ID)
	})

	t.Run("agrees with the per-table check at every instant", func(t *testing.T) {
		instants := []time.Time{
			lunch.Add(-time.Hour),
			lunch,
			lunch.Add(30 * time.Minute),
			lunch.Add(time.Hour),
			lunchEnd,
			lunchEnd.Add(24 * time.Hour),
		}

		for _, at := range instants {
			rows, err := sut.ListAvailableAt(ctx, at)
			require.NoError(t, err)

			listed := make(map[int64]bool, len(rows))
			for _, row := range rows {
				listed[row.ID] = true
			}

			for _, id := range []int64{t1.ID(), t2.ID(), t3.ID()} {
				available, err := uow.Tables().IsAvailableAt(ctx, id, at)
				require.NoError(t, err)
				assert.Equal(t, available, listed[id],
					"table %d at %s: listing and per-table check disagree", id, at)
			}
		}
	})
}

func TestOrderQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	uow := fake.NewUnitOfWork()
	seededTable := uow.SeedTable(1, 4)
	installation := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)
	seeded := uow.SeedOrder(seededTable.ID(), installation, nil)
	sut := queries.NewOrderQueries(uow)

	t.Run("basic success case", func(t *testing.T) {
		view, err := sut.GetByID(ctx, seeded.ID())
		require.NoError(t, err)

		assert.Equal(t, seeded.ID(), view.ID)
		assert.Equal(t, seededTable.ID(), view.TableID)
		assert.Equal(t, installation, view.Installation)
		assert.Nil(t, view.Departure)
	})

	t.Run("unknown id", func(t *testing.T) {
		view, err := sut.GetByID(ctx, 999)
		require.Error(t, err)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
