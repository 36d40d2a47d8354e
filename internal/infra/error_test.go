//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"tableside/internal/infra"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("kind defaults to db failure", func(t *testing.T) {
		err := infra.WrapRepoErr("insert failed", errs.New("timeout"))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Contains(t, err.Error(), "DB_FAILURE")
		assert.Contains(t, err.Error(), "insert failed")
		assert.Contains(t, err.Error(), "timeout")
	})

	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("no such row", nil, infra.KindNotFound)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("cause stays reachable through unwrap", func(t *testing.T) {
		cause := errs.New("broken pipe")
		err := infra.WrapRepoErr("query failed", cause)

		require.True(t, errors.Is(err, cause))
	})

	t.Run("is kind on foreign errors", func(t *testing.T) {
		assert.False(t, infra.IsKind(errs.New("plain"), infra.KindNotFound))
		assert.False(t, infra.IsKind(nil, infra.KindNotFound))
	})
}
