//go:build unit

package flight_test

import (
	"testing"

	"skybook/internal/domain/flight"
	"skybook/internal/domain/ticket"
	"skybook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlight_PriceFor(t *testing.T) {
	flt := builder.NewFlightBuilder().BuildDomain()

	t.Run("economy fare", func(t *testing.T) {
		price, err := flt.PriceFor(ticket.FareEconomy)
		require.NoError(t, err)
		assert.Equal(t, int64(100_000), price.Cents())
	})

	t.Run("vip fare", func(t *testing.T) {
		price, err := flt.PriceFor(ticket.FareVIP)
		require.NoError(t, err)
		assert.Equal(t, int64(300_000), price.Cents())
	})

	t.Run("unknown fare class", func(t *testing.T) {
		_, err := flt.PriceFor(ticket.FareClass("first"))
		assert.ErrorIs(t, err, flight.ErrUnknownFareClass)
	})
}
