//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func CreateTestCustomer(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO customers (id, email) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING",
		customerID, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM customers WHERE email = $1", email).Scan(&customerID)
	}

	return customerID
}

func CreateTestFlight(t *testing.T, db DBLike, economyCents, vipCents int64) uuid.UUID {
	t.Helper()

	flightID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO flights (id, origin, destination, economy_price_cents, vip_price_cents, departs_at)
		 VALUES ($1, 'HND', 'CDG', $2, $3, $4)`,
		flightID, economyCents, vipCents, time.Now().Add(30*24*time.Hour))
	require.NoError(t, err)

	return flightID
}

func CreateTestInstrument(t *testing.T, db DBLike, ownerID uuid.UUID, kind string, balanceCents int64) uuid.UUID {
	t.Helper()

	instrumentID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO payment_instruments (id, owner_id, kind, balance_cents, expires_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		instrumentID, ownerID, kind, balanceCents, time.Now().Add(365*24*time.Hour))
	require.NoError(t, err)

	return instrumentID
}

type TicketOptions struct {
	FareClass  string
	TripKind   string
	PairingKey *string
	Status     string
}

func CreateTestTicket(t *testing.T, db DBLike, flightID uuid.UUID, opts TicketOptions) uuid.UUID {
	t.Helper()

	if opts.FareClass == "" {
		opts.FareClass = "economy"
	}
	if opts.TripKind == "" {
		opts.TripKind = "one_way"
	}
	if opts.Status == "" {
		opts.Status = "pending"
	}

	ticketID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO tickets (id, flight_id, fare_class, trip_kind, pairing_key, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		ticketID, flightID, opts.FareClass, opts.TripKind, opts.PairingKey, opts.Status)
	require.NoError(t, err)

	return ticketID
}

func AddToCart(t *testing.T, db DBLike, customerID, ticketID uuid.UUID, createdAt time.Time) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO cart_entries (id, customer_id, ticket_id, created_at) VALUES ($1, $2, $3, $4)",
		uuid.New(), customerID, ticketID, createdAt)
	require.NoError(t, err)
}

func InstrumentBalance(t *testing.T, db DBLike, instrumentID uuid.UUID) int64 {
	t.Helper()

	var balance int64
	err := db.QueryRow(context.Background(),
		"SELECT balance_cents FROM payment_instruments WHERE id = $1", instrumentID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func TicketStatus(t *testing.T, db DBLike, ticketID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM tickets WHERE id = $1", ticketID).Scan(&status)
	require.NoError(t, err)
	return status
}

func PaymentAmount(t *testing.T, db DBLike, ticketID uuid.UUID) int64 {
	t.Helper()

	var amount int64
	err := db.QueryRow(context.Background(),
		"SELECT amount_cents FROM payments WHERE ticket_id = $1", ticketID).Scan(&amount)
	require.NoError(t, err)
	return amount
}

func PaymentCount(t *testing.T, db DBLike, ticketID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM payments WHERE ticket_id = $1", ticketID).Scan(&count)
	require.NoError(t, err)
	return count
}

func CartContains(t *testing.T, db DBLike, ticketID uuid.UUID) bool {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM cart_entries WHERE ticket_id = $1", ticketID).Scan(&count)
	require.NoError(t, err)
	return count > 0
}
