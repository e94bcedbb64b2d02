//go:build unit

package payment_test

import (
	"testing"
	"time"

	"skybook/internal/domain/payment"
	"skybook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument_Authorize(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("covers the amount", func(t *testing.T) {
		inst, err := builder.NewInstrumentBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NoError(t, inst.Authorize(payment.MustMoney(500_000), now))
	})

	t.Run("balance below amount", func(t *testing.T) {
		b := builder.NewInstrumentBuilder()
		b.BalanceCents = 100_000
		inst, err := b.BuildDomain()
		require.NoError(t, err)

		err = inst.Authorize(payment.MustMoney(300_000), now)
		assert.ErrorIs(t, err, payment.ErrInsufficientBalance)
	})

	t.Run("expired instrument rejected before funds check", func(t *testing.T) {
		b := builder.NewInstrumentBuilder()
		b.ExpiresAt = now.Add(-time.Hour)
		inst, err := b.BuildDomain()
		require.NoError(t, err)

		err = inst.Authorize(payment.MustMoney(1), now)
		assert.ErrorIs(t, err, payment.ErrInstrumentExpired)
	})

	t.Run("expiry boundary is inclusive", func(t *testing.T) {
		b := builder.NewInstrumentBuilder()
		b.ExpiresAt = now
		inst, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NoError(t, inst.Authorize(payment.MustMoney(1), now))
	})
}

func TestInstrument_Ownership(t *testing.T) {
	b := builder.NewInstrumentBuilder()
	inst, err := b.BuildDomain()
	require.NoError(t, err)

	assert.True(t, inst.IsOwnedBy(b.OwnerID))
	assert.False(t, inst.IsOwnedBy(uuid.New()))
}

func TestInstrument_InvalidMethod(t *testing.T) {
	b := builder.NewInstrumentBuilder()
	b.Kind = "cash"
	_, err := b.BuildDomain()
	assert.ErrorIs(t, err, payment.ErrInvalidMethod)
}

func TestMoney(t *testing.T) {
	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := payment.NewMoney(-1)
		assert.Error(t, err)
	})

	t.Run("multiply", func(t *testing.T) {
		m := payment.MustMoney(150_000)
		assert.Equal(t, int64(300_000), m.MultiplyBy(2).Cents())
	})

	t.Run("comparison", func(t *testing.T) {
		assert.True(t, payment.MustMoney(100).LessThan(payment.MustMoney(101)))
		assert.False(t, payment.MustMoney(101).LessThan(payment.MustMoney(101)))
	})

	t.Run("add", func(t *testing.T) {
		sum := payment.MustMoney(100).Add(payment.MustMoney(250))
		assert.Equal(t, int64(350), sum.Cents())
	})
}

func TestNewRecord(t *testing.T) {
	ownerID := uuid.New()
	ticketID := uuid.New()
	paidAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("settled record", func(t *testing.T) {
		rec, err := payment.NewRecord(ownerID, ticketID, payment.MustMoney(100_000), payment.MethodCredit, paidAt)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, rec.ID())
		assert.Equal(t, ownerID, rec.OwnerID())
		assert.Equal(t, ticketID, rec.TicketID())
		assert.Equal(t, int64(100_000), rec.Amount().Cents())
		assert.Equal(t, payment.RecordStatusPaid, rec.Status())
		assert.Equal(t, paidAt, rec.PaidAt())
	})

	t.Run("invalid method rejected", func(t *testing.T) {
		_, err := payment.NewRecord(ownerID, ticketID, payment.MustMoney(1), payment.Method("barter"), paidAt)
		assert.ErrorIs(t, err, payment.ErrInvalidMethod)
	})
}
