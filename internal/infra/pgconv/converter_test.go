//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"tableside/internal/infra/pgconv"
	"tableside/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	fk := &pgconn.PgError{Code: "23503"}
	exclusion := &pgconn.PgError{Code: "23P01"}

	assert.True(t, pgconv.IsUniqueViolation(unique))
	assert.True(t, pgconv.IsUniqueViolation(errs.Wrap(unique, "insert failed")))
	assert.False(t, pgconv.IsUniqueViolation(fk))

	assert.True(t, pgconv.IsForeignKeyViolation(fk))
	assert.True(t, pgconv.IsExclusionViolation(exclusion))
	assert.False(t, pgconv.IsExclusionViolation(unique))

	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(errs.Wrap(pgx.ErrNoRows, "scan failed")))
	assert.False(t, pgconv.IsNoRows(errs.New("other")))
	assert.False(t, pgconv.IsNoRows(nil))
}

func TestTimestamptzFromPtr(t *testing.T) {
	assert.False(t, pgconv.TimestamptzFromPtr(nil).Valid)
	assert.Nil(t, pgconv.PtrFromTimestamptz(pgconv.TimestamptzFromPtr(nil)))

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	got := pgconv.PtrFromTimestamptz(pgconv.TimestamptzFromPtr(&now))
	require.NotNil(t, got)
	assert.True(t, got.Equal(now))
}

func TestDateFromPtr(t *testing.T) {
	assert.False(t, pgconv.DateFromPtr(nil).Valid)
	assert.Nil(t, pgconv.PtrFromDate(pgconv.DateFromPtr(nil)))

	hired := time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC)
	got := pgconv.PtrFromDate(pgconv.DateFromPtr(&hired))
	require.NotNil(t, got)
	assert.True(t, got.Equal(hired))
}
