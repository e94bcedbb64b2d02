package api

import (
	"errors"
	"net/http"

	reqdto "skybook/internal/handler/dto/request"
	resdto "skybook/internal/handler/dto/response"
	"skybook/internal/handler/middleware"
	"skybook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	purchaseUseCase commands.PurchaseCommands
}

func NewPurchaseHandler(purchaseUseCase commands.PurchaseCommands) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUseCase: purchaseUseCase,
	}
}

// @Summary Purchase a ticket
// @Description Charge the payment instrument and settle the ticket, including any round-trip companion still in the cart
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseRequest true "Purchase request"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /purchases [post]
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PurchaseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.PurchaseParams{
		CustomerID:   customerID,
		TicketID:     req.TicketID,
		InstrumentID: req.InstrumentID,
	}

	result, err := h.purchaseUseCase.Purchase(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ticket not found",
			})
		case errors.Is(err, commands.ErrFlightNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Flight not found",
			})
		case errors.Is(err, commands.ErrInstrumentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment instrument not found",
			})
		case errors.Is(err, commands.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Insufficient funds",
			})
		case errors.Is(err, commands.ErrTicketAlreadyPaid):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Ticket has already been paid",
			})
		case errors.Is(err, commands.ErrInstrumentExpired):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Payment instrument has expired",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPurchaseResult(result))
}
