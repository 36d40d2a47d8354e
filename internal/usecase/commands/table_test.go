//go:build unit

package commands_test

import (
	"context"
	"testing"

	"tableside/internal/domain/table"
	"tableside/internal/usecase/commands"
	"tableside/internal/usecase/queries"
	"tableside/tests/common/builder"
	"tableside/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveTable(t *testing.T) {
	ctx := context.Background()

	t.Run("new table gets a sequence id", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		sut := commands.NewTableCommands(uow)

		input := builder.NewTableBuilder().
			With(func(b *builder.TableBuilder) {
				b.Number = 7
				b.Capacity = 2
			}).
			BuildInput()

		view, err := sut.SaveTable(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, view)

		assert.NotZero(t, view.ID)
		assert.Equal(t, 7, view.Number)
		assert.Equal(t, 2, view.Capacity)
	})

	t.Run("present id upserts in place", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		seeded := uow.SeedTable(7, 2)
		sut := commands.NewTableCommands(uow)

		input := builder.NewTableBuilder().
			With(func(b *builder.TableBuilder) {
				b.ID = seeded.ID()
				b.Number = 7
				b.Capacity = 6
			}).
			BuildInput()

		view, err := sut.SaveTable(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID(), view.ID)
		assert.Equal(t, 6, view.Capacity)

		// A retry of the same request changes nothing.
		again, err := sut.SaveTable(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, view, again)

		rows, err := queries.NewTableQueries(uow).List(ctx)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("validation failures", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		sut := commands.NewTableCommands(uow)

		testCases := []struct {
			name   string
			mutate func(*builder.TableBuilder)
			errIs  error
		}{
			{
				name:   "non positive number",
				mutate: func(b *builder.TableBuilder) { b.Number = 0 },
				errIs:  table.ErrInvalidNumber,
			},
			{
				name:   "non positive capacity",
				mutate: func(b *builder.TableBuilder) { b.Capacity = -1 },
				errIs:  table.ErrInvalidCapacity,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				input := builder.NewTableBuilder().With(tc.mutate).BuildInput()

				view, err := sut.SaveTable(ctx, input)
				require.Error(t, err)
				assert.Nil(t, view)
				assert.ErrorIs(t, err, commands.ErrSaveTableFailed)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}
