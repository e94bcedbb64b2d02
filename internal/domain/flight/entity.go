package flight

import (
	"errors"
	"time"

	"skybook/internal/domain/payment"
	"skybook/internal/domain/ticket"

	"github.com/google/uuid"
)

var ErrUnknownFareClass = errors.New("unknown fare class")

// Flight is read-only catalog data to the purchase core.
type Flight struct {
	id           uuid.UUID
	origin       string
	destination  string
	economyPrice payment.Money
	vipPrice     payment.Money
	departsAt    time.Time
}

func ReconstructFlight(id uuid.UUID, origin, destination string, economyPrice, vipPrice payment.Money, departsAt time.Time) *Flight {
	return &Flight{
		id:           id,
		origin:       origin,
		destination:  destination,
		economyPrice: economyPrice,
		vipPrice:     vipPrice,
		departsAt:    departsAt,
	}
}

func (f *Flight) ID() uuid.UUID               { return f.id }
func (f *Flight) Origin() string              { return f.origin }
func (f *Flight) Destination() string         { return f.destination }
func (f *Flight) EconomyPrice() payment.Money { return f.economyPrice }
func (f *Flight) VIPPrice() payment.Money     { return f.vipPrice }
func (f *Flight) DepartsAt() time.Time        { return f.departsAt }

// PriceFor returns the unit price of one leg for the given fare class.
func (f *Flight) PriceFor(class ticket.FareClass) (payment.Money, error) {
	switch class {
	case ticket.FareVIP:
		return f.vipPrice, nil
	case ticket.FareEconomy:
		return f.economyPrice, nil
	default:
		return payment.Money{}, ErrUnknownFareClass
	}
}
