package response

import (
	"github.com/google/uuid"

	"skybook/internal/usecase/commands"
)

type PurchaseResponse struct {
	PrimaryTicketID    uuid.UUID  `json:"primary_ticket_id"`
	CompanionTicketID  *uuid.UUID `json:"companion_ticket_id,omitempty"`
	AmountChargedCents int64      `json:"amount_charged_cents"`
}

func FromPurchaseResult(result *commands.PurchaseResult) *PurchaseResponse {
	return &PurchaseResponse{
		PrimaryTicketID:    result.PrimaryTicketID,
		CompanionTicketID:  result.CompanionTicketID,
		AmountChargedCents: result.AmountChargedCents,
	}
}
