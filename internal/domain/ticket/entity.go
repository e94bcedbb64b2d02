package ticket

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid ticket status")
	ErrInvalidFareClass  = errors.New("invalid fare class")
	ErrInvalidTripKind   = errors.New("invalid trip kind")
	ErrNotPending        = errors.New("ticket is not pending")
	ErrMissingPairingKey = errors.New("round trip ticket requires a pairing key")
)

// Ticket is one passenger's seat on one flight leg. Tickets are created by the
// reservation layer; this core only transitions them pending→paid.
type Ticket struct {
	id         uuid.UUID
	flightID   uuid.UUID
	fareClass  FareClass
	tripKind   TripKind
	pairingKey string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructTicket(
	id, flightID uuid.UUID,
	fareClass FareClass,
	tripKind TripKind,
	pairingKey string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if !fareClass.IsValid() {
		return nil, ErrInvalidFareClass
	}
	if !tripKind.IsValid() {
		return nil, ErrInvalidTripKind
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if tripKind == TripRoundTrip && pairingKey == "" {
		return nil, ErrMissingPairingKey
	}
	return &Ticket{
		id:         id,
		flightID:   flightID,
		fareClass:  fareClass,
		tripKind:   tripKind,
		pairingKey: pairingKey,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (t *Ticket) ID() uuid.UUID        { return t.id }
func (t *Ticket) FlightID() uuid.UUID  { return t.flightID }
func (t *Ticket) FareClass() FareClass { return t.fareClass }
func (t *Ticket) TripKind() TripKind   { return t.tripKind }
func (t *Ticket) PairingKey() string   { return t.pairingKey }
func (t *Ticket) Status() Status       { return t.status }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

func (t *Ticket) IsPending() bool {
	return t.status == StatusPending
}

// IsPairable reports whether the ticket participates in round-trip bundling.
func (t *Ticket) IsPairable() bool {
	return t.tripKind == TripRoundTrip
}

// MarkPaid transitions pending→paid. Any other starting status is rejected so
// duplicate purchase submissions fail before touching the store.
func (t *Ticket) MarkPaid(now time.Time) error {
	if t.status != StatusPending {
		return ErrNotPending
	}
	t.status = StatusPaid
	t.updatedAt = now
	return nil
}
