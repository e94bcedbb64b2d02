//go:build unit

package repository_test

import (
	"context"
	"testing"

	"skybook/internal/infra"
	"skybook/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketRepository_MarkPaid(t *testing.T) {
	ctx := context.Background()
	ticketID := uuid.New()

	t.Run("pending ticket flips", func(t *testing.T) {
		dbtx := &fakeDBTX{tag: pgconn.NewCommandTag("UPDATE 1")}
		repo := repository.NewTicketRepository(dbtx)

		require.NoError(t, repo.MarkPaid(ctx, ticketID))
		assert.Contains(t, dbtx.execSQL, "status = 'pending'")
	})

	t.Run("zero rows means the ticket was no longer pending", func(t *testing.T) {
		dbtx := &fakeDBTX{tag: pgconn.NewCommandTag("UPDATE 0")}
		repo := repository.NewTicketRepository(dbtx)

		err := repo.MarkPaid(ctx, ticketID)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}

func TestCartRepository_Remove(t *testing.T) {
	ctx := context.Background()
	ticketID := uuid.New()

	t.Run("removes the entry", func(t *testing.T) {
		dbtx := &fakeDBTX{tag: pgconn.NewCommandTag("DELETE 1")}
		repo := repository.NewCartRepository(dbtx)

		require.NoError(t, repo.Remove(ctx, ticketID))
	})

	t.Run("absent entry is not an error", func(t *testing.T) {
		dbtx := &fakeDBTX{tag: pgconn.NewCommandTag("DELETE 0")}
		repo := repository.NewCartRepository(dbtx)

		require.NoError(t, repo.Remove(ctx, ticketID))
	})
}
