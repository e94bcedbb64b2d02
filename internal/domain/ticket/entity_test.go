//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"skybook/internal/domain/ticket"
	"skybook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.TicketBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewTicketBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
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

func TestTicket(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewTicketBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.FlightID, actual.FlightID())
		assert.Equal(t, ticket.FareEconomy, actual.FareClass())
		assert.Equal(t, ticket.TripOneWay, actual.TripKind())
		assert.Equal(t, ticket.StatusPending, actual.Status())
		assert.True(t, actual.IsPending())
		assert.False(t, actual.IsPairable())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unknown fare class",
				mutate: func(b *builder.TicketBuilder) { b.FareClass = "first" },
				errIs:  ticket.ErrInvalidFareClass,
			},
			{
				name:   "unknown trip kind",
				mutate: func(b *builder.TicketBuilder) { b.TripKind = "open_jaw" },
				errIs:  ticket.ErrInvalidTripKind,
			},
			{
				name:   "unknown status",
				mutate: func(b *builder.TicketBuilder) { b.Status = "refunded" },
				errIs:  ticket.ErrInvalidStatus,
			},
			{
				name:   "round trip without pairing key",
				mutate: func(b *builder.TicketBuilder) { b.TripKind = "round_trip" },
				errIs:  ticket.ErrMissingPairingKey,
			},
			{
				name:   "round trip with pairing key",
				mutate: func(b *builder.TicketBuilder) { b.AsRoundTrip("HND-CDG-2026-04") },
			},
			{
				name:   "one way with stray pairing key is allowed",
				mutate: func(b *builder.TicketBuilder) { b.PairingKey = "HND-CDG-2026-04" },
			},
		})
	})

	t.Run("pairable only when round trip", func(t *testing.T) {
		oneWay, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)
		assert.False(t, oneWay.IsPairable())

		roundTrip, err := builder.NewTicketBuilder().AsRoundTrip("key-1").BuildDomain()
		require.NoError(t, err)
		assert.True(t, roundTrip.IsPairable())
	})
}

func TestTicket_MarkPaid(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	t.Run("pending ticket transitions to paid", func(t *testing.T) {
		tkt, err := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, tkt.MarkPaid(now))
		assert.Equal(t, ticket.StatusPaid, tkt.Status())
		assert.Equal(t, now, tkt.UpdatedAt())
		assert.False(t, tkt.IsPending())
	})

	t.Run("paid ticket cannot be paid again", func(t *testing.T) {
		b := builder.NewTicketBuilder()
		b.Status = "paid"
		tkt, err := b.BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, tkt.MarkPaid(now), ticket.ErrNotPending)
	})

	t.Run("cancelled ticket cannot be paid", func(t *testing.T) {
		b := builder.NewTicketBuilder()
		b.Status = "cancelled"
		tkt, err := b.BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, tkt.MarkPaid(now), ticket.ErrNotPending)
	})
}
