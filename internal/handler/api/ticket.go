package api

import (
	"net/http"

	resdto "skybook/internal/handler/dto/response"
	"skybook/internal/handler/middleware"
	"skybook/internal/infra"
	"skybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TicketHandler struct {
	ticketQueries  queries.TicketQueries
	paymentQueries queries.PaymentQueries
}

func NewTicketHandler(ticketQueries queries.TicketQueries, paymentQueries queries.PaymentQueries) *TicketHandler {
	return &TicketHandler{
		ticketQueries:  ticketQueries,
		paymentQueries: paymentQueries,
	}
}

// @Summary Get ticket
// @Description Get ticket by ID with its flight details
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ticket ID format",
		})
		return
	}

	view, err := h.ticketQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ticket not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}

// @Summary List payments
// @Description List the current customer's payment records, newest first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentResponse
// @Failure 401 {object} map[string]string
// @Router /payments [get]
func (h *TicketHandler) ListPayments(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.paymentQueries.ListByOwner(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PaymentResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromPaymentListItem(item)
	}

	c.JSON(http.StatusOK, response)
}
