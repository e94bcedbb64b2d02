package request

import (
	"github.com/google/uuid"
)

type PurchaseRequest struct {
	TicketID     uuid.UUID `json:"ticket_id" binding:"required"`
	InstrumentID uuid.UUID `json:"instrument_id" binding:"required"`
}
