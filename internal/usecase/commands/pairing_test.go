//go:build unit

package commands_test

import (
	"testing"
	"time"

	"skybook/internal/usecase/commands"
	"skybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCompanion(t *testing.T) {
	base := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("no candidates", func(t *testing.T) {
		assert.Nil(t, commands.SelectCompanion(nil))
		assert.Nil(t, commands.SelectCompanion([]shared.PairCandidate{}))
	})

	t.Run("single candidate wins", func(t *testing.T) {
		only := shared.PairCandidate{TicketID: uuid.New(), CartCreatedAt: base}
		chosen := commands.SelectCompanion([]shared.PairCandidate{only})
		require.NotNil(t, chosen)
		assert.Equal(t, only.TicketID, chosen.TicketID)
	})

	t.Run("earliest cart entry wins", func(t *testing.T) {
		oldest := shared.PairCandidate{TicketID: uuid.New(), CartCreatedAt: base}
		middle := shared.PairCandidate{TicketID: uuid.New(), CartCreatedAt: base.Add(time.Minute)}
		newest := shared.PairCandidate{TicketID: uuid.New(), CartCreatedAt: base.Add(time.Hour)}

		chosen := commands.SelectCompanion([]shared.PairCandidate{newest, oldest, middle})
		require.NotNil(t, chosen)
		assert.Equal(t, oldest.TicketID, chosen.TicketID)
	})

	t.Run("created_at ties break by ticket id ascending", func(t *testing.T) {
		idLow := uuid.MustParse("00000000-0000-0000-0000-000000000001")
		idHigh := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")
		a := shared.PairCandidate{TicketID: idHigh, CartCreatedAt: base}
		b := shared.PairCandidate{TicketID: idLow, CartCreatedAt: base}

		chosen := commands.SelectCompanion([]shared.PairCandidate{a, b})
		require.NotNil(t, chosen)
		assert.Equal(t, idLow, chosen.TicketID)

		// Input order must not matter.
		chosen = commands.SelectCompanion([]shared.PairCandidate{b, a})
		require.NotNil(t, chosen)
		assert.Equal(t, idLow, chosen.TicketID)
	})
}
