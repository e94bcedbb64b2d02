//go:build unit

package repository_test

import (
	"context"
	"testing"

	"skybook/internal/domain/payment"
	"skybook/internal/infra"
	"skybook/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceRepository_Debit(t *testing.T) {
	ctx := context.Background()
	instrumentID := uuid.New()

	t.Run("one row updated means the debit landed", func(t *testing.T) {
		dbtx := &fakeDBTX{tag: pgconn.NewCommandTag("UPDATE 1")}
		repo := repository.NewBalanceRepository(dbtx)

		err := repo.Debit(ctx, instrumentID, payment.MustMoney(200_000))
		require.NoError(t, err)
		assert.Contains(t, dbtx.execSQL, "balance_cents >= $2")
		assert.Equal(t, []any{instrumentID, int64(200_000)}, dbtx.execArgs)
	})

	t.Run("zero rows means the balance no longer covers the amount", func(t *testing.T) {
		dbtx := &fakeDBTX{tag: pgconn.NewCommandTag("UPDATE 0")}
		repo := repository.NewBalanceRepository(dbtx)

		err := repo.Debit(ctx, instrumentID, payment.MustMoney(200_000))
		assert.True(t, infra.IsKind(err, infra.KindInsufficientFunds))
	})

	t.Run("driver failure maps to db failure", func(t *testing.T) {
		dbtx := &fakeDBTX{err: assert.AnError}
		repo := repository.NewBalanceRepository(dbtx)

		err := repo.Debit(ctx, instrumentID, payment.MustMoney(1))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
