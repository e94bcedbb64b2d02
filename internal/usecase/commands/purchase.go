package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"skybook/internal/domain/flight"
	"skybook/internal/domain/payment"
	"skybook/internal/domain/ticket"
	"skybook/internal/infra"
	"skybook/internal/infra/db"
	"skybook/internal/pkg/clock"
	"skybook/internal/pkg/errs"
	"skybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound     = errs.New("ticket not found")
	ErrFlightNotFound     = errs.New("flight not found")
	ErrInstrumentNotFound = errs.New("payment instrument not found")
	ErrInsufficientFunds  = errs.New("insufficient funds")
	ErrTicketAlreadyPaid  = errs.New("ticket already paid")
	ErrInstrumentExpired  = errs.New("payment instrument expired")
	ErrPurchaseFailed     = errs.New("purchase transaction failed")
)

type PurchaseParams struct {
	CustomerID   uuid.UUID
	TicketID     uuid.UUID
	InstrumentID uuid.UUID
}

type PurchaseResult struct {
	AmountChargedCents int64
	PrimaryTicketID    uuid.UUID
	CompanionTicketID  *uuid.UUID
}

type PurchaseCommands interface {
	Purchase(ctx context.Context, params PurchaseParams) (*PurchaseResult, error)
}

type purchaseUseCaseImpl struct {
	uow              shared.UnitOfWork
	notificationRepo shared.NotificationRepository
	clock            clock.Clock
}

func NewPurchaseUseCase(uow shared.UnitOfWork, notificationRepo shared.NotificationRepository, clk clock.Clock) PurchaseCommands {
	return &purchaseUseCaseImpl{
		uow:              uow,
		notificationRepo: notificationRepo,
		clock:            clk,
	}
}

// purchaseQuote carries the priced state of one attempt between the read-only
// phases and the commit. Quoting and validating never mutate anything, so a
// failed attempt can be retried by the caller at no cost.
type purchaseQuote struct {
	primary     *ticket.Ticket
	companionID *uuid.UUID
	unitPrice   payment.Money
	total       payment.Money
	method      payment.Method
}

func (uc *purchaseUseCaseImpl) Purchase(ctx context.Context, params PurchaseParams) (*PurchaseResult, error) {
	quote, err := uc.buildQuote(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := uc.validateInstrument(ctx, params, quote); err != nil {
		return nil, err
	}

	if err := uc.commitPurchase(ctx, params, quote); err != nil {
		return nil, err
	}

	result := &PurchaseResult{
		AmountChargedCents: quote.total.Cents(),
		PrimaryTicketID:    quote.primary.ID(),
		CompanionTicketID:  quote.companionID,
	}

	uc.notifyPurchaseCompleted(ctx, params.CustomerID, result)

	return result, nil
}

// buildQuote: load ticket and flight, price the leg, resolve the round-trip
// companion. A paired purchase charges the outbound leg's unit price twice,
// not the sum of both legs' independently computed prices; the leg with the
// older cart entry sets the price, so the total is the same whichever leg of
// the pair is submitted.
func (uc *purchaseUseCaseImpl) buildQuote(ctx context.Context, params PurchaseParams) (*purchaseQuote, error) {
	reads := uc.uow.CommandReads()

	tktSnap, err := reads.TicketByID(ctx, params.TicketID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, errs.Mark(err, ErrPurchaseFailed)
	}

	tkt, err := reconstructTicket(tktSnap)
	if err != nil {
		return nil, errs.Mark(err, ErrPurchaseFailed)
	}

	if !tkt.IsPending() {
		return nil, ErrTicketAlreadyPaid
	}

	fltSnap, err := reads.FlightByID(ctx, tkt.FlightID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, errs.Mark(err, ErrPurchaseFailed)
	}

	unitPrice, err := reconstructFlight(fltSnap).PriceFor(tkt.FareClass())
	if err != nil {
		return nil, errs.Mark(err, ErrPurchaseFailed)
	}

	pair, err := resolvePairing(ctx, reads, tkt)
	if err != nil {
		return nil, errs.Mark(err, ErrPurchaseFailed)
	}

	quote := &purchaseQuote{
		primary:   tkt,
		unitPrice: unitPrice,
		total:     unitPrice,
	}
	if pair == nil {
		return quote, nil
	}

	if pair.companionIsOutbound {
		outboundPrice, err := outboundUnitPrice(ctx, reads, pair.companion)
		if err != nil {
			return nil, err
		}
		quote.unitPrice = outboundPrice
	}

	companionID := pair.companion.TicketID
	quote.companionID = &companionID
	quote.total = quote.unitPrice.MultiplyBy(2)

	return quote, nil
}

// outboundUnitPrice prices the companion's leg when the companion is the
// outbound: its own flight's fare for its own fare class.
func outboundUnitPrice(ctx context.Context, reads shared.CommandReads, leg shared.PairCandidate) (payment.Money, error) {
	fltSnap, err := reads.FlightByID(ctx, leg.FlightID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return payment.Money{}, ErrFlightNotFound
		}
		return payment.Money{}, errs.Mark(err, ErrPurchaseFailed)
	}

	price, err := reconstructFlight(fltSnap).PriceFor(ticket.FareClass(leg.FareClass))
	if err != nil {
		return payment.Money{}, errs.Mark(err, ErrPurchaseFailed)
	}
	return price, nil
}

// validateInstrument is still side-effect free: ownership, expiry and funds
// are checked against a snapshot; the debit re-checks funds inside the
// transaction.
func (uc *purchaseUseCaseImpl) validateInstrument(ctx context.Context, params PurchaseParams, quote *purchaseQuote) error {
	instSnap, err := uc.uow.CommandReads().InstrumentByID(ctx, params.InstrumentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInstrumentNotFound
		}
		return errs.Mark(err, ErrPurchaseFailed)
	}

	balance, err := payment.NewMoney(instSnap.BalanceCents)
	if err != nil {
		return errs.Mark(err, ErrPurchaseFailed)
	}

	inst, err := payment.ReconstructInstrument(
		instSnap.ID,
		instSnap.OwnerID,
		payment.Method(instSnap.Kind),
		balance,
		instSnap.ExpiresAt,
	)
	if err != nil {
		return errs.Mark(err, ErrPurchaseFailed)
	}

	// Another customer's instrument is indistinguishable from a missing one.
	if !inst.IsOwnedBy(params.CustomerID) {
		return ErrInstrumentNotFound
	}

	if err := inst.Authorize(quote.total, uc.clock.Now()); err != nil {
		switch {
		case errors.Is(err, payment.ErrInstrumentExpired):
			return ErrInstrumentExpired
		case errors.Is(err, payment.ErrInsufficientBalance):
			return ErrInsufficientFunds
		default:
			return errs.Mark(err, ErrPurchaseFailed)
		}
	}

	quote.method = inst.Method()
	return nil
}

// commitPurchase runs the all-or-nothing step: one debit for the whole total,
// then record/flip/unreserve per charged ticket. Any failure rolls the
// transaction back, leaving balance, statuses and cart exactly as found.
func (uc *purchaseUseCaseImpl) commitPurchase(ctx context.Context, params PurchaseParams, quote *purchaseQuote) error {
	chargedTickets := []uuid.UUID{quote.primary.ID()}
	if quote.companionID != nil {
		chargedTickets = append(chargedTickets, *quote.companionID)
	}

	paidAt := uc.clock.Now()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if quote.companionID != nil {
			if err := ensureCompanionStillCarted(ctx, tx.Reads(), quote.primary.PairingKey(), *quote.companionID); err != nil {
				return err
			}
		}

		if err := tx.Balances().Debit(ctx, params.InstrumentID, quote.total); err != nil {
			if infra.IsKind(err, infra.KindInsufficientFunds) {
				return ErrInsufficientFunds
			}
			return err
		}

		for _, ticketID := range chargedTickets {
			rec, err := payment.NewRecord(params.CustomerID, ticketID, quote.unitPrice, quote.method, paidAt)
			if err != nil {
				return err
			}

			if err := tx.Payments().Record(ctx, rec); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return ErrTicketAlreadyPaid
				}
				return err
			}

			if err := tx.Tickets().MarkPaid(ctx, ticketID); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return ErrTicketAlreadyPaid
				}
				return err
			}

			if err := tx.Cart().Remove(ctx, ticketID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if isPurchaseRejection(err) {
			return err
		}
		return errs.Mark(err, ErrPurchaseFailed)
	}

	return nil
}

// notifyPurchaseCompleted enqueues the confirmation email job after the
// transaction committed. Delivery is best-effort and must never fail the
// purchase that already settled.
func (uc *purchaseUseCaseImpl) notifyPurchaseCompleted(ctx context.Context, customerID uuid.UUID, result *PurchaseResult) {
	payload, err := json.Marshal(map[string]any{
		"type":                 "ticket_purchased",
		"customer_id":          customerID,
		"primary_ticket_id":    result.PrimaryTicketID,
		"companion_ticket_id":  result.CompanionTicketID,
		"amount_charged_cents": result.AmountChargedCents,
	})
	if err != nil {
		slog.Warn("failed to marshal purchase notification", "error", err.Error())
		return
	}

	err = uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return uc.notificationRepo.CreateJob(ctx, dbtx, "email", "ticket_purchased", payload)
	})
	if err != nil {
		slog.Warn("failed to enqueue purchase notification",
			"customer_id", customerID.String(),
			"ticket_id", result.PrimaryTicketID.String(),
			"error", err.Error())
	}
}

func reconstructFlight(snap *shared.FlightSnapshot) *flight.Flight {
	return flight.ReconstructFlight(
		snap.ID,
		snap.Origin,
		snap.Destination,
		payment.MustMoney(snap.EconomyPriceCents),
		payment.MustMoney(snap.VIPPriceCents),
		snap.DepartsAt,
	)
}

func reconstructTicket(snap *shared.TicketSnapshot) (*ticket.Ticket, error) {
	pairingKey := ""
	if snap.PairingKey != nil {
		pairingKey = *snap.PairingKey
	}
	return ticket.ReconstructTicket(
		snap.ID,
		snap.FlightID,
		ticket.FareClass(snap.FareClass),
		ticket.TripKind(snap.TripKind),
		pairingKey,
		ticket.Status(snap.Status),
		snap.CreatedAt,
		snap.UpdatedAt,
	)
}

func isPurchaseRejection(err error) bool {
	for _, target := range []error{
		ErrTicketNotFound,
		ErrFlightNotFound,
		ErrInstrumentNotFound,
		ErrInsufficientFunds,
		ErrTicketAlreadyPaid,
		ErrInstrumentExpired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
