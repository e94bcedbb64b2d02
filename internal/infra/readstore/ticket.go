package readstore

import (
	"context"

	"skybook/internal/infra"
	"skybook/internal/infra/db"
	"skybook/internal/pkg/pgconv"
	"skybook/internal/usecase/queries"
	"skybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TicketReadStore struct {
	db db.DBTX
}

func NewTicketReadStore(dbtx db.DBTX) *TicketReadStore {
	return &TicketReadStore{db: dbtx}
}

func (r *TicketReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.TicketSnapshot, error) {
	const sql = `
		SELECT id, flight_id, fare_class, trip_kind, pairing_key, status, created_at, updated_at
		FROM tickets
		WHERE id = $1
	`

	var (
		snap       shared.TicketSnapshot
		pairingKey pgtype.Text
	)
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&snap.ID, &snap.FlightID, &snap.FareClass, &snap.TripKind,
		&pairingKey, &snap.Status, &snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket by ID", err)
	}

	snap.PairingKey = pgconv.StringPtrFromPgtype(pairingKey)
	return &snap, nil
}

func (r *TicketReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.TicketView, error) {
	const sql = `
		SELECT t.id, t.flight_id, f.origin, f.destination,
		       t.fare_class, t.trip_kind, t.pairing_key, t.status,
		       t.created_at, t.updated_at
		FROM tickets t
		JOIN flights f ON f.id = t.flight_id
		WHERE t.id = $1
	`

	var (
		view       queries.TicketView
		pairingKey pgtype.Text
	)
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&view.ID, &view.FlightID, &view.Origin, &view.Destination,
		&view.FareClass, &view.TripKind, &pairingKey, &view.Status,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find ticket view by ID", err)
	}

	view.PairingKey = pgconv.StringPtrFromPgtype(pairingKey)
	return &view, nil
}
