//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"skybook/internal/handler/api"
	resdto "skybook/internal/handler/dto/response"
	"skybook/internal/infra"
	"skybook/internal/usecase/queries"
	"skybook/tests/common/builder"
	"skybook/tests/common/httptest"
	queriesmock "skybook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TicketHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockTickets *queriesmock.MockTicketQueries
	mockPayments *queriesmock.MockPaymentQueries
	handler     *api.TicketHandler
	customerID  uuid.UUID
}

func (s *TicketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTickets = queriesmock.NewMockTicketQueries(s.mockCtrl)
	s.mockPayments = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewTicketHandler(s.mockTickets, s.mockPayments)
	s.customerID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		c.Set("customer_id", s.customerID)
		c.Next()
	}

	s.router.GET("/tickets/:id", authMiddleware, s.handler.GetTicket)
	s.router.GET("/payments", authMiddleware, s.handler.ListPayments)
}

func (s *TicketHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTicketHandlerSuite(t *testing.T) {
	suite.Run(t, new(TicketHandlerTestSuite))
}

func (s *TicketHandlerTestSuite) TestGetTicket() {
	view := builder.NewTicketBuilder().BuildView()

	s.Run("success: returns the joined ticket view", func() {
		s.mockTickets.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets/"+view.ID.String(), nil, "token")

		var body resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("HND", body.Origin)
		s.Equal("CDG", body.Destination)
		s.Equal("pending", body.Status)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 for missing ticket", func() {
		id := uuid.New()
		s.mockTickets.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("no rows", errors.New("no rows in result set"), infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tickets/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *TicketHandlerTestSuite) TestListPayments() {
	s.Run("success: lists the customer's payments", func() {
		items := []*queries.PaymentListItem{
			{ID: uuid.New(), TicketID: uuid.New(), AmountCents: 100_000, Method: "credit", Status: "paid"},
			{ID: uuid.New(), TicketID: uuid.New(), AmountCents: 300_000, Method: "debit", Status: "paid"},
		}
		s.mockPayments.EXPECT().ListByOwner(gomock.Any(), s.customerID).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments", nil, "token")

		var body []resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(int64(100_000), body[0].AmountCents)
	})

	s.Run("success: empty list for a customer with no payments", func() {
		s.mockPayments.EXPECT().ListByOwner(gomock.Any(), s.customerID).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
