package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolManager_SymbolChoices(t *testing.T) {
	manager := NewSymbolManager(map[entity.PlayerID]entity.Symbol{1: "X", 2: "O"})

	t.Run("Returns the single symbol of a player", func(t *testing.T) {
		// When: asking for player 2's choices
		choices, err := manager.SymbolChoices(2)

		// Then: only O is allowed
		require.NoError(t, err)
		assert.Equal(t, []entity.Symbol{"O"}, choices)
	})

	t.Run("Unknown player is an invalid argument", func(t *testing.T) {
		for _, player := range []entity.PlayerID{0, 3, -1} {
			// When: asking for a player that was never assigned a symbol
			choices, err := manager.SymbolChoices(player)

			// Then: ErrInvalidArgument is returned
			require.ErrorIs(t, err, apperror.ErrInvalidArgument)
			assert.Nil(t, choices)
		}
	})
}

func TestVariant(t *testing.T) {
	variant := Variant()

	assert.Equal(t, VariantName, variant.Name)
	assert.NotNil(t, variant.NewWinConditionChecker)
	assert.NotNil(t, variant.NewSymbolManager)
}
