package commands

import (
	"context"

	"skybook/internal/domain/ticket"
	"skybook/internal/usecase/shared"

	"github.com/google/uuid"
)

// pairing is a settled two-leg bundle: the companion charged alongside the
// purchased leg, and whether the companion is the outbound leg whose unit
// price both payment records settle at.
type pairing struct {
	companion           shared.PairCandidate
	companionIsOutbound bool
}

// resolvePairing finds the other leg of a round-trip itinerary: the pending
// ticket sharing the pairing key that is still in the cart. One-way tickets
// and round-trip tickets without a waiting companion resolve to nil, which is
// a valid terminal outcome, not an error.
func resolvePairing(ctx context.Context, reads shared.CommandReads, tkt *ticket.Ticket) (*pairing, error) {
	if !tkt.IsPairable() {
		return nil, nil
	}

	legs, err := reads.PairCandidates(ctx, tkt.PairingKey())
	if err != nil {
		return nil, err
	}

	var self *shared.PairCandidate
	others := make([]shared.PairCandidate, 0, len(legs))
	for _, leg := range legs {
		if leg.TicketID == tkt.ID() {
			leg := leg
			self = &leg
			continue
		}
		others = append(others, leg)
	}

	companion := SelectCompanion(others)
	if companion == nil {
		return nil, nil
	}

	return &pairing{
		companion:           *companion,
		companionIsOutbound: companionIsOutbound(companion, self),
	}, nil
}

// SelectCompanion picks the authoritative companion from pending cart entries:
// the oldest reservation wins. Ticket id ascending breaks exact created_at
// ties so resolution stays deterministic regardless of store ordering.
func SelectCompanion(candidates []shared.PairCandidate) *shared.PairCandidate {
	if len(candidates) == 0 {
		return nil
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.CartCreatedAt.Before(best.CartCreatedAt) {
			best = c
			continue
		}
		if c.CartCreatedAt.Equal(best.CartCreatedAt) && c.TicketID.String() < best.TicketID.String() {
			best = c
		}
	}
	return &best
}

// companionIsOutbound reports whether the companion was reserved before the
// purchased leg. The older cart entry is the outbound leg; exact ties fall
// back to ticket id ascending, the same ordering companion selection uses.
// A purchased leg with no cart entry of its own has no reservation time to
// compare, so the companion counts as the outbound.
func companionIsOutbound(companion, self *shared.PairCandidate) bool {
	if self == nil {
		return true
	}
	if companion.CartCreatedAt.Before(self.CartCreatedAt) {
		return true
	}
	return companion.CartCreatedAt.Equal(self.CartCreatedAt) &&
		companion.TicketID.String() < self.TicketID.String()
}

// ensureCompanionStillCarted re-reads the pair on the transaction connection.
// A companion that left the cart between quoting and commit would otherwise
// settle on a stale quote; the bundle aborts as a conflict instead.
func ensureCompanionStillCarted(ctx context.Context, reads shared.CommandReads, pairingKey string, companionID uuid.UUID) error {
	legs, err := reads.PairCandidates(ctx, pairingKey)
	if err != nil {
		return err
	}
	for _, leg := range legs {
		if leg.TicketID == companionID {
			return nil
		}
	}
	return ErrTicketAlreadyPaid
}
