package shared

import (
	"context"

	"skybook/internal/domain/payment"
	"skybook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Balances() BalanceRepository
	Tickets() TicketRepository
	Payments() PaymentRepository
	Cart() CartRepository
	// Reads runs command reads on the transaction connection, so quote-time
	// decisions can be re-verified under the commit boundary.
	Reads() CommandReads
}

type CommandReads interface {
	TicketByID(ctx context.Context, id uuid.UUID) (*TicketSnapshot, error)
	FlightByID(ctx context.Context, id uuid.UUID) (*FlightSnapshot, error)
	InstrumentByID(ctx context.Context, id uuid.UUID) (*InstrumentSnapshot, error)
	// PairCandidates lists pending round-trip tickets sharing pairingKey that
	// still sit in the cart, the purchased leg included when it is carted.
	PairCandidates(ctx context.Context, pairingKey string) ([]PairCandidate, error)
}

// BalanceRepository guards the non-negative balance invariant at mutation time:
// Debit must fail closed when the stored balance no longer covers the amount.
type BalanceRepository interface {
	Debit(ctx context.Context, instrumentID uuid.UUID, amount payment.Money) error
}

type TicketRepository interface {
	// MarkPaid flips pending→paid conditionally; a concurrent purchase of the
	// same ticket surfaces as a conflict, never as a double flip.
	MarkPaid(ctx context.Context, ticketID uuid.UUID) error
}

type PaymentRepository interface {
	Record(ctx context.Context, rec *payment.Record) error
}

type CartRepository interface {
	// Remove is idempotent; removing an absent entry is not an error.
	Remove(ctx context.Context, ticketID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, db db.DBTX, kind, topic string, payload []byte) error
}
