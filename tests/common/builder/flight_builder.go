//go:build unit || e2e

package builder

import (
	"time"

	domflight "skybook/internal/domain/flight"
	"skybook/internal/domain/payment"
	"skybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type FlightBuilder struct {
	ID                uuid.UUID
	Origin            string
	Destination       string
	EconomyPriceCents int64
	VIPPriceCents     int64
	DepartsAt         time.Time
}

func NewFlightBuilder() *FlightBuilder {
	return &FlightBuilder{
		ID:                uuid.New(),
		Origin:            "HND",
		Destination:       "CDG",
		EconomyPriceCents: 100_000,
		VIPPriceCents:     300_000,
		DepartsAt:         time.Date(2026, 4, 1, 8, 30, 0, 0, time.UTC),
	}
}

func (b *FlightBuilder) With(mutate func(*FlightBuilder)) *FlightBuilder {
	mutate(b)
	return b
}

func (b *FlightBuilder) BuildDomain() *domflight.Flight {
	return domflight.ReconstructFlight(
		b.ID,
		b.Origin,
		b.Destination,
		payment.MustMoney(b.EconomyPriceCents),
		payment.MustMoney(b.VIPPriceCents),
		b.DepartsAt,
	)
}

func (b *FlightBuilder) BuildSnapshot() *shared.FlightSnapshot {
	return &shared.FlightSnapshot{
		ID:                b.ID,
		Origin:            b.Origin,
		Destination:       b.Destination,
		EconomyPriceCents: b.EconomyPriceCents,
		VIPPriceCents:     b.VIPPriceCents,
		DepartsAt:         b.DepartsAt,
	}
}
