package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInstrumentExpired   = errors.New("payment instrument expired")
	ErrInvalidMethod       = errors.New("invalid payment method")
)

// Instrument is a stored card-like payment method with a spendable balance.
// The balance held here is a snapshot; the authoritative non-negative check
// happens again at debit time inside the purchase transaction.
type Instrument struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	method    Method
	balance   Money
	expiresAt time.Time
}

func ReconstructInstrument(id, ownerID uuid.UUID, method Method, balance Money, expiresAt time.Time) (*Instrument, error) {
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	return &Instrument{
		id:        id,
		ownerID:   ownerID,
		method:    method,
		balance:   balance,
		expiresAt: expiresAt,
	}, nil
}

func (i *Instrument) ID() uuid.UUID        { return i.id }
func (i *Instrument) OwnerID() uuid.UUID   { return i.ownerID }
func (i *Instrument) Method() Method       { return i.method }
func (i *Instrument) Balance() Money       { return i.balance }
func (i *Instrument) ExpiresAt() time.Time { return i.expiresAt }

func (i *Instrument) IsOwnedBy(customerID uuid.UUID) bool {
	return i.ownerID == customerID
}

func (i *Instrument) IsExpired(now time.Time) bool {
	return now.After(i.expiresAt)
}

// Authorize checks that the instrument can cover the amount at quote time.
func (i *Instrument) Authorize(amount Money, now time.Time) error {
	if i.IsExpired(now) {
		return ErrInstrumentExpired
	}
	if i.balance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	return nil
}

const RecordStatusPaid = "paid"

// Record is one immutable ledger entry: one record per ticket settled.
type Record struct {
	id       uuid.UUID
	ownerID  uuid.UUID
	ticketID uuid.UUID
	amount   Money
	method   Method
	status   string
	paidAt   time.Time
}

func NewRecord(ownerID, ticketID uuid.UUID, amount Money, method Method, paidAt time.Time) (*Record, error) {
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	return &Record{
		id:       uuid.New(),
		ownerID:  ownerID,
		ticketID: ticketID,
		amount:   amount,
		method:   method,
		status:   RecordStatusPaid,
		paidAt:   paidAt,
	}, nil
}

func (r *Record) ID() uuid.UUID       { return r.id }
func (r *Record) OwnerID() uuid.UUID  { return r.ownerID }
func (r *Record) TicketID() uuid.UUID { return r.ticketID }
func (r *Record) Amount() Money       { return r.amount }
func (r *Record) Method() Method      { return r.method }
func (r *Record) Status() string      { return r.status }
func (r *Record) PaidAt() time.Time   { return r.paidAt }
