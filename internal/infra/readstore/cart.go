package readstore

import (
	"context"

	"skybook/internal/infra"
	"skybook/internal/infra/db"
	"skybook/internal/usecase/shared"
)

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(dbtx db.DBTX) *CartReadStore {
	return &CartReadStore{db: dbtx}
}

// FindPairCandidates returns pending round-trip tickets in the cart sharing
// pairingKey, oldest cart entry first, the purchased leg's own entry among
// them. The ordering here and the in-memory selection in the purchase
// command must agree: earliest created_at wins, ticket id breaks ties.
func (r *CartReadStore) FindPairCandidates(ctx context.Context, pairingKey string) ([]shared.PairCandidate, error) {
	const sql = `
		SELECT t.id, t.flight_id, t.fare_class, c.created_at
		FROM tickets t
		JOIN cart_entries c ON c.ticket_id = t.id
		WHERE t.pairing_key = $1
		  AND t.trip_kind = 'round_trip'
		  AND t.status = 'pending'
		ORDER BY c.created_at, t.id
	`

	rows, err := r.db.Query(ctx, sql, pairingKey)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query pair candidates", err)
	}
	defer rows.Close()

	var candidates []shared.PairCandidate
	for rows.Next() {
		var c shared.PairCandidate
		if err := rows.Scan(&c.TicketID, &c.FlightID, &c.FareClass, &c.CartCreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pair candidate", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pair candidates", err)
	}

	return candidates, nil
}
