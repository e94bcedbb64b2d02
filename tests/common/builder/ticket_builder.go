//go:build unit || e2e

package builder

import (
	"time"

	domticket "skybook/internal/domain/ticket"
	reqdto "skybook/internal/handler/dto/request"
	"skybook/internal/usecase/queries"
	"skybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type TicketBuilder struct {
	ID          uuid.UUID
	FlightID    uuid.UUID
	Origin      string
	Destination string
	FareClass   string
	TripKind    string
	PairingKey  string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewTicketBuilder() *TicketBuilder {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	return &TicketBuilder{
		ID:          uuid.New(),
		FlightID:    uuid.New(),
		Origin:      "HND",
		Destination: "CDG",
		FareClass:   "economy",
		TripKind:    "one_way",
		PairingKey:  "",
		Status:      "pending",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(b)
	return b
}

func (b *TicketBuilder) AsRoundTrip(pairingKey string) *TicketBuilder {
	b.TripKind = "round_trip"
	b.PairingKey = pairingKey
	return b
}

// Build methods
func (b *TicketBuilder) BuildDomain() (*domticket.Ticket, error) {
	return domticket.ReconstructTicket(
		b.ID,
		b.FlightID,
		domticket.FareClass(b.FareClass),
		domticket.TripKind(b.TripKind),
		b.PairingKey,
		domticket.Status(b.Status),
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *TicketBuilder) BuildSnapshot() *shared.TicketSnapshot {
	var pairingKey *string
	if b.PairingKey != "" {
		key := b.PairingKey
		pairingKey = &key
	}
	return &shared.TicketSnapshot{
		ID:         b.ID,
		FlightID:   b.FlightID,
		FareClass:  b.FareClass,
		TripKind:   b.TripKind,
		PairingKey: pairingKey,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *TicketBuilder) BuildView() *queries.TicketView {
	var pairingKey *string
	if b.PairingKey != "" {
		key := b.PairingKey
		pairingKey = &key
	}
	return &queries.TicketView{
		ID:          b.ID,
		FlightID:    b.FlightID,
		Origin:      b.Origin,
		Destination: b.Destination,
		FareClass:   b.FareClass,
		TripKind:    b.TripKind,
		PairingKey:  pairingKey,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *TicketBuilder) BuildPurchaseRequestDTO(instrumentID uuid.UUID) reqdto.PurchaseRequest {
	return reqdto.PurchaseRequest{
		TicketID:     b.ID,
		InstrumentID: instrumentID,
	}
}
