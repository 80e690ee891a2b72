package gridgame

import (
	"iter"

	"github.com/rocketscienceinc/gridgame/internal/entity"
)

// FieldView is the read-only part of the Field that rule strategies get.
// It reflects every move committed by the Model.
type FieldView interface {
	GridSize() int
	ValidCoords() iter.Seq[int]
	SymbolAt(cell entity.Cell) (entity.Symbol, bool)
	AreAllEqualToBasis(basis entity.Symbol, group []entity.Cell) bool
}

// WinConditionChecker decides whether some player has won on the current field.
type WinConditionChecker interface {
	CheckWinner() (entity.PlayerID, bool)
}

// SymbolManager answers which symbols a player may place.
type SymbolManager interface {
	SymbolChoices(player entity.PlayerID) ([]entity.Symbol, error)
}

type (
	WinConditionCheckerFactory func(field FieldView, symbolToPlayer map[entity.Symbol]entity.PlayerID) WinConditionChecker
	SymbolManagerFactory       func(playerSymbols map[entity.PlayerID]entity.Symbol) SymbolManager
)

// Variant is a named pair of rule constructors. The Model calls them once at setup.
type Variant struct {
	Name                   string
	NewWinConditionChecker WinConditionCheckerFactory
	NewSymbolManager       SymbolManagerFactory
}
