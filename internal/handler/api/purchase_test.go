//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"skybook/internal/handler/api"
	resdto "skybook/internal/handler/dto/response"
	"skybook/internal/usecase/commands"
	"skybook/tests/common/builder"
	"skybook/tests/common/httptest"
	commandsmock "skybook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseCommands
	handler      *api.PurchaseHandler
	customerID   uuid.UUID
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockCommands)
	s.customerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("customer_id", s.customerID)
		c.Next()
	}

	s.router.POST("/purchases", authMiddleware, s.handler.Purchase)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

func (s *PurchaseHandlerTestSuite) TestPurchase() {
	url := "/purchases"
	reqBody := builder.NewTicketBuilder().BuildPurchaseRequestDTO(uuid.New())

	s.Run("success: returns 201 Created with the charged amount", func() {
		companionID := uuid.New()
		expected := &commands.PurchaseResult{
			AmountChargedCents: 200_000,
			PrimaryTicketID:    reqBody.TicketID,
			CompanionTicketID:  &companionID,
		}
		s.mockCommands.EXPECT().
			Purchase(gomock.Any(), commands.PurchaseParams{
				CustomerID:   s.customerID,
				TicketID:     reqBody.TicketID,
				InstrumentID: reqBody.InstrumentID,
			}).
			Return(expected, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(200_000), body.AmountChargedCents)
		s.Equal(reqBody.TicketID, body.PrimaryTicketID)
		s.Require().NotNil(body.CompanionTicketID)
		s.Equal(companionID, *body.CompanionTicketID)
	})

	s.Run("error: 401 without bearer token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"ticket_id": "not-a-uuid"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: use case errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "ticket not found", err: commands.ErrTicketNotFound, expectCode: http.StatusNotFound},
			{name: "flight not found", err: commands.ErrFlightNotFound, expectCode: http.StatusNotFound},
			{name: "instrument not found", err: commands.ErrInstrumentNotFound, expectCode: http.StatusNotFound},
			{name: "insufficient funds", err: commands.ErrInsufficientFunds, expectCode: http.StatusPaymentRequired},
			{name: "already paid", err: commands.ErrTicketAlreadyPaid, expectCode: http.StatusConflict},
			{name: "expired instrument", err: commands.ErrInstrumentExpired, expectCode: http.StatusUnprocessableEntity},
			{name: "transaction failed", err: commands.ErrPurchaseFailed, expectCode: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Purchase(gomock.Any(), gomock.Any()).
					Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}
