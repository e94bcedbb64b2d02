package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type TicketView struct {
	ID          uuid.UUID `json:"id"`
	FlightID    uuid.UUID `json:"flight_id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	FareClass   string    `json:"fare_class"`
	TripKind    string    `json:"trip_kind"`
	PairingKey  *string   `json:"pairing_key,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PaymentListItem struct {
	ID          uuid.UUID `json:"id"`
	TicketID    uuid.UUID `json:"ticket_id"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	PaidAt      time.Time `json:"paid_at"`
}
