package response

import (
	"time"

	"github.com/google/uuid"

	"skybook/internal/usecase/queries"
)

type TicketResponse struct {
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

func FromTicketView(view *queries.TicketView) *TicketResponse {
	return &TicketResponse{
		ID:          view.ID,
		FlightID:    view.FlightID,
		Origin:      view.Origin,
		Destination: view.Destination,
		FareClass:   view.FareClass,
		TripKind:    view.TripKind,
		PairingKey:  view.PairingKey,
		Status:      view.Status,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}

type PaymentResponse struct {
	ID          uuid.UUID `json:"id"`
	TicketID    uuid.UUID `json:"ticket_id"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	PaidAt      time.Time `json:"paid_at"`
}

func FromPaymentListItem(item *queries.PaymentListItem) *PaymentResponse {
	return &PaymentResponse{
		ID:          item.ID,
		TicketID:    item.TicketID,
		AmountCents: item.AmountCents,
		Method:      item.Method,
		Status:      item.Status,
		PaidAt:      item.PaidAt,
	}
}
