package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/gridgame/internal/entity"
	"github.com/rocketscienceinc/gridgame/internal/gridgame"
)

const VariantName = "tictactoe"

// Variant - classic N x N line matching with one symbol per player.
func Variant() gridgame.Variant {
	return gridgame.Variant{
		Name:                   VariantName,
		NewWinConditionChecker: NewWinConditionChecker,
		NewSymbolManager:       NewSymbolManager,
	}
}

// WinConditionChecker finds a row, column or diagonal filled with a single symbol.
type WinConditionChecker struct {
	field          gridgame.FieldView
	symbolToPlayer map[entity.Symbol]entity.PlayerID
}

func NewWinConditionChecker(field gridgame.FieldView, symbolToPlayer map[entity.Symbol]entity.PlayerID) gridgame.WinConditionChecker {
	return &WinConditionChecker{
		field:          field,
		symbolToPlayer: symbolToPlayer,
	}
}

// CheckWinner - scans rows, then columns, then the two diagonals; the first full group wins.
// A winning symbol that maps to no player is a setup bug and panics.
func (that *WinConditionChecker) CheckWinner() (entity.PlayerID, bool) {
	for _, groups := range [][][]entity.Cell{that.rows(), that.columns(), that.diagonals()} {
		for _, group := range groups {
			basis, ok := that.field.SymbolAt(group[0])
			if !ok || !that.field.AreAllEqualToBasis(basis, group) {
				continue
			}

			winner, ok := that.symbolToPlayer[basis]
			if !ok {
				panic(fmt.Sprintf("winning symbol %q in cell group %v has no associated player", basis, group))
			}

			return winner, true
		}
	}

	return 0, false
}

func (that *WinConditionChecker) rows() [][]entity.Cell {
	groups := make([][]entity.Cell, 0, that.field.GridSize())
	for row := range that.field.ValidCoords() {
		group := make([]entity.Cell, 0, that.field.GridSize())
		for k := range that.field.ValidCoords() {
			group = append(group, entity.NewCell(row, k))
		}
		groups = append(groups, group)
	}

	return groups
}

func (that *WinConditionChecker) columns() [][]entity.Cell {
	groups := make([][]entity.Cell, 0, that.field.GridSize())
	for col := range that.field.ValidCoords() {
		group := make([]entity.Cell, 0, that.field.GridSize())
		for k := range that.field.ValidCoords() {
			group = append(group, entity.NewCell(k, col))
		}
		groups = append(groups, group)
	}

	return groups
}

func (that *WinConditionChecker) diagonals() [][]entity.Cell {
	size := that.field.GridSize()
	mainDiagonal := make([]entity.Cell, 0, size)
	antiDiagonal := make([]entity.Cell, 0, size)

	for k := range that.field.ValidCoords() {
		mainDiagonal = append(mainDiagonal, entity.NewCell(k, k))
		antiDiagonal = append(antiDiagonal, entity.NewCell(k, size-k+1))
	}

	return [][]entity.Cell{mainDiagonal, antiDiagonal}
}
