//go:build e2e

package purchase_test

import (
	"net/http"
	"testing"
	"time"

	reqdto "skybook/internal/handler/dto/request"
	resdto "skybook/internal/handler/dto/response"
	"skybook/internal/pkg/jwt"
	"skybook/tests/common/dbtest"
	"skybook/tests/common/httptest"
	"skybook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const purchaseURL = "/api/purchases"

type purchaseSuite struct {
	e2e.SharedSuite
	jwtService *jwt.Service
}

func TestPurchaseSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(purchaseSuite))
}

func (s *purchaseSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtService = jwt.NewService(s.Config.JWT.Secret)
}

func (s *purchaseSuite) tokenFor(customerID uuid.UUID) string {
	token, err := s.jwtService.GenerateToken(customerID, time.Hour)
	s.Require().NoError(err)
	return token
}

func (s *purchaseSuite) TestOneWayPurchase() {
	t := s.T()
	customerID := dbtest.CreateTestCustomer(t, s.Pool, "oneway@example.com")
	flightID := dbtest.CreateTestFlight(t, s.Pool, 100_000, 300_000)
	ticketID := dbtest.CreateTestTicket(t, s.Pool, flightID, dbtest.TicketOptions{FareClass: "vip"})
	instrumentID := dbtest.CreateTestInstrument(t, s.Pool, customerID, "credit", 500_000)
	dbtest.AddToCart(t, s.Pool, customerID, ticketID, time.Now())

	req := reqdto.PurchaseRequest{TicketID: ticketID, InstrumentID: instrumentID}
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, req, s.tokenFor(customerID))

	var body resdto.PurchaseResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &body)
	s.Equal(int64(300_000), body.AmountChargedCents)
	s.Nil(body.CompanionTicketID)

	s.Equal(int64(200_000), dbtest.InstrumentBalance(t, s.Pool, instrumentID))
	s.Equal("paid", dbtest.TicketStatus(t, s.Pool, ticketID))
	s.Equal(1, dbtest.PaymentCount(t, s.Pool, ticketID))
	s.False(dbtest.CartContains(t, s.Pool, ticketID))
}

func (s *purchaseSuite) TestRoundTripPurchaseSettlesBothLegs() {
	t := s.T()
	customerID := dbtest.CreateTestCustomer(t, s.Pool, "roundtrip@example.com")
	flightID := dbtest.CreateTestFlight(t, s.Pool, 100_000, 300_000)

	pairingKey := "rt-" + uuid.NewString()
	outboundID := dbtest.CreateTestTicket(t, s.Pool, flightID, dbtest.TicketOptions{
		TripKind: "round_trip", PairingKey: &pairingKey,
	})
	returnID := dbtest.CreateTestTicket(t, s.Pool, flightID, dbtest.TicketOptions{
		TripKind: "round_trip", PairingKey: &pairingKey,
	})
	instrumentID := dbtest.CreateTestInstrument(t, s.Pool, customerID, "debit", 500_000)

	base := time.Now().Add(-time.Hour)
	dbtest.AddToCart(t, s.Pool, customerID, outboundID, base)
	dbtest.AddToCart(t, s.Pool, customerID, returnID, base.Add(time.Minute))

	req := reqdto.PurchaseRequest{TicketID: outboundID, InstrumentID: instrumentID}
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, req, s.tokenFor(customerID))

	var body resdto.PurchaseResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &body)
	s.Equal(int64(200_000), body.AmountChargedCents)
	s.Require().NotNil(body.CompanionTicketID)
	s.Equal(returnID, *body.CompanionTicketID)

	s.Equal(int64(300_000), dbtest.InstrumentBalance(t, s.Pool, instrumentID))
	s.Equal("paid", dbtest.TicketStatus(t, s.Pool, outboundID))
	s.Equal("paid", dbtest.TicketStatus(t, s.Pool, returnID))
	s.Equal(1, dbtest.PaymentCount(t, s.Pool, outboundID))
	s.Equal(1, dbtest.PaymentCount(t, s.Pool, returnID))
	s.False(dbtest.CartContains(t, s.Pool, outboundID))
	s.False(dbtest.CartContains(t, s.Pool, returnID))
}

func (s *purchaseSuite) TestRoundTripChargesOutboundPriceFromEitherLeg() {
	t := s.T()
	customerID := dbtest.CreateTestCustomer(t, s.Pool, "asymmetric@example.com")
	outboundFlight := dbtest.CreateTestFlight(t, s.Pool, 100_000, 300_000)
	returnFlight := dbtest.CreateTestFlight(t, s.Pool, 250_000, 600_000)

	pairingKey := "rt-" + uuid.NewString()
	outboundID := dbtest.CreateTestTicket(t, s.Pool, outboundFlight, dbtest.TicketOptions{
		TripKind: "round_trip", PairingKey: &pairingKey,
	})
	returnID := dbtest.CreateTestTicket(t, s.Pool, returnFlight, dbtest.TicketOptions{
		TripKind: "round_trip", PairingKey: &pairingKey,
	})
	instrumentID := dbtest.CreateTestInstrument(t, s.Pool, customerID, "credit", 500_000)

	base := time.Now().Add(-time.Hour)
	dbtest.AddToCart(t, s.Pool, customerID, outboundID, base)
	dbtest.AddToCart(t, s.Pool, customerID, returnID, base.Add(time.Minute))

	// Purchasing the later-reserved return leg must still settle both legs at
	// the outbound flight's fare, not the return flight's.
	req := reqdto.PurchaseRequest{TicketID: returnID, InstrumentID: instrumentID}
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, req, s.tokenFor(customerID))

	var body resdto.PurchaseResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &body)
	s.Equal(int64(200_000), body.AmountChargedCents)
	s.Require().NotNil(body.CompanionTicketID)
	s.Equal(outboundID, *body.CompanionTicketID)

	s.Equal(int64(300_000), dbtest.InstrumentBalance(t, s.Pool, instrumentID))
	s.Equal(int64(100_000), dbtest.PaymentAmount(t, s.Pool, outboundID))
	s.Equal(int64(100_000), dbtest.PaymentAmount(t, s.Pool, returnID))
	s.Equal("paid", dbtest.TicketStatus(t, s.Pool, outboundID))
	s.Equal("paid", dbtest.TicketStatus(t, s.Pool, returnID))
}

func (s *purchaseSuite) TestInsufficientFundsLeavesStateUntouched() {
	t := s.T()
	customerID := dbtest.CreateTestCustomer(t, s.Pool, "broke@example.com")
	flightID := dbtest.CreateTestFlight(t, s.Pool, 100_000, 300_000)
	ticketID := dbtest.CreateTestTicket(t, s.Pool, flightID, dbtest.TicketOptions{FareClass: "vip"})
	instrumentID := dbtest.CreateTestInstrument(t, s.Pool, customerID, "credit", 100_000)
	dbtest.AddToCart(t, s.Pool, customerID, ticketID, time.Now())

	req := reqdto.PurchaseRequest{TicketID: ticketID, InstrumentID: instrumentID}
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, req, s.tokenFor(customerID))
	httptest.AssertErrorResponse(t, rec, http.StatusPaymentRequired, "Insufficient funds")

	s.Equal(int64(100_000), dbtest.InstrumentBalance(t, s.Pool, instrumentID))
	s.Equal("pending", dbtest.TicketStatus(t, s.Pool, ticketID))
	s.Equal(0, dbtest.PaymentCount(t, s.Pool, ticketID))
	s.True(dbtest.CartContains(t, s.Pool, ticketID))
}

func (s *purchaseSuite) TestRepeatedPurchaseConflicts() {
	t := s.T()
	customerID := dbtest.CreateTestCustomer(t, s.Pool, "repeat@example.com")
	flightID := dbtest.CreateTestFlight(t, s.Pool, 100_000, 300_000)
	ticketID := dbtest.CreateTestTicket(t, s.Pool, flightID, dbtest.TicketOptions{})
	instrumentID := dbtest.CreateTestInstrument(t, s.Pool, customerID, "credit", 500_000)
	dbtest.AddToCart(t, s.Pool, customerID, ticketID, time.Now())

	req := reqdto.PurchaseRequest{TicketID: ticketID, InstrumentID: instrumentID}
	token := s.tokenFor(customerID)

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, req, token)
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, req, token)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "")

	// The first charge is the only one.
	s.Equal(int64(400_000), dbtest.InstrumentBalance(t, s.Pool, instrumentID))
	s.Equal(1, dbtest.PaymentCount(t, s.Pool, ticketID))
}

func (s *purchaseSuite) TestForeignInstrumentLooksMissing() {
	t := s.T()
	buyerID := dbtest.CreateTestCustomer(t, s.Pool, "buyer@example.com")
	otherID := dbtest.CreateTestCustomer(t, s.Pool, "other@example.com")
	flightID := dbtest.CreateTestFlight(t, s.Pool, 100_000, 300_000)
	ticketID := dbtest.CreateTestTicket(t, s.Pool, flightID, dbtest.TicketOptions{})
	foreignInstrument := dbtest.CreateTestInstrument(t, s.Pool, otherID, "credit", 500_000)
	dbtest.AddToCart(t, s.Pool, buyerID, ticketID, time.Now())

	req := reqdto.PurchaseRequest{TicketID: ticketID, InstrumentID: foreignInstrument}
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, req, s.tokenFor(buyerID))
	httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "")
}

func (s *purchaseSuite) TestMissingTicket() {
	t := s.T()
	customerID := dbtest.CreateTestCustomer(t, s.Pool, "noticket@example.com")
	instrumentID := dbtest.CreateTestInstrument(t, s.Pool, customerID, "credit", 500_000)

	req := reqdto.PurchaseRequest{TicketID: uuid.New(), InstrumentID: instrumentID}
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, req, s.tokenFor(customerID))
	httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Ticket not found")
}

func (s *purchaseSuite) TestUnauthenticatedRequestRejected() {
	t := s.T()
	req := reqdto.PurchaseRequest{TicketID: uuid.New(), InstrumentID: uuid.New()}
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, req, "")
	httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "")
}
