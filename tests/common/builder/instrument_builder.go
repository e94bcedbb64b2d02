//go:build unit || e2e

package builder

import (
	"time"

	"skybook/internal/domain/payment"
	"skybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type InstrumentBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Kind         string
	BalanceCents int64
	ExpiresAt    time.Time
}

func NewInstrumentBuilder() *InstrumentBuilder {
	return &InstrumentBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Kind:         "credit",
		BalanceCents: 500_000,
		ExpiresAt:    time.Date(2027, 12, 31, 23, 59, 59, 0, time.UTC),
	}
}

func (b *InstrumentBuilder) With(mutate func(*InstrumentBuilder)) *InstrumentBuilder {
	mutate(b)
	return b
}

func (b *InstrumentBuilder) BuildDomain() (*payment.Instrument, error) {
	balance, err := payment.NewMoney(b.BalanceCents)
	if err != nil {
		return nil, err
	}
	return payment.ReconstructInstrument(b.ID, b.OwnerID, payment.Method(b.Kind), balance, b.ExpiresAt)
}

func (b *InstrumentBuilder) BuildSnapshot() *shared.InstrumentSnapshot {
	return &shared.InstrumentSnapshot{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		Kind:         b.Kind,
		BalanceCents: b.BalanceCents,
		ExpiresAt:    b.ExpiresAt,
	}
}
