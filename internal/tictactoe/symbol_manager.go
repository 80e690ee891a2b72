package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/entity"
	"github.com/rocketscienceinc/gridgame/internal/gridgame"
)

// SymbolManager gives every player exactly one symbol.
type SymbolManager struct {
	playerToSymbol map[entity.PlayerID]entity.Symbol
}

func NewSymbolManager(playerSymbols map[entity.PlayerID]entity.Symbol) gridgame.SymbolManager {
	return &SymbolManager{
		playerToSymbol: playerSymbols,
	}
}

func (that *SymbolManager) SymbolChoices(player entity.PlayerID) ([]entity.Symbol, error) {
	symbol, ok := that.playerToSymbol[player]
	if !ok {
		return nil, fmt.Errorf("%w: invalid player: %d", apperror.ErrInvalidArgument, player)
	}

	return []entity.Symbol{symbol}, nil
}
