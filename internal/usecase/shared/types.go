package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type TicketSnapshot struct {
	ID         uuid.UUID
	FlightID   uuid.UUID
	FareClass  string
	TripKind   string
	PairingKey *string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type FlightSnapshot struct {
	ID                uuid.UUID
	Origin            string
	Destination       string
	EconomyPriceCents int64
	VIPPriceCents     int64
	DepartsAt         time.Time
}

type InstrumentSnapshot struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Kind         string
	BalanceCents int64
	ExpiresAt    time.Time
}

// PairCandidate is one pending round-trip leg still sitting in the cart.
// FlightID and FareClass are carried so the outbound leg can be priced
// without a second ticket read.
type PairCandidate struct {
	TicketID      uuid.UUID
	FlightID      uuid.UUID
	FareClass     string
	CartCreatedAt time.Time
}
