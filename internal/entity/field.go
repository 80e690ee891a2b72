package entity

import (
	"iter"
	"maps"
)

// Field holds the grid and the symbols placed on it. Unoccupied cells are absent from the map.
//
// Field does no validation of its own: callers check bounds and occupancy before PlaceSymbol.
type Field struct {
	gridSize int
	occupied map[Cell]Symbol
}

func NewField(gridSize int) *Field {
	return &Field{
		gridSize: gridSize,
		occupied: make(map[Cell]Symbol, gridSize*gridSize),
	}
}

func (that *Field) GridSize() int {
	return that.gridSize
}

// ValidCoords - yields 1..GridSize. Each call returns a fresh sequence.
func (that *Field) ValidCoords() iter.Seq[int] {
	return func(yield func(int) bool) {
		for k := 1; k <= that.gridSize; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

func (that *Field) IsWithinBounds(cell Cell) bool {
	return cell.Row >= 1 && cell.Row <= that.gridSize &&
		cell.Col >= 1 && cell.Col <= that.gridSize
}

func (that *Field) SymbolAt(cell Cell) (Symbol, bool) {
	symbol, ok := that.occupied[cell]
	return symbol, ok
}

func (that *Field) PlaceSymbol(symbol Symbol, cell Cell) {
	that.occupied[cell] = symbol
}

func (that *Field) HasUnoccupiedCell() bool {
	return len(that.occupied) < that.gridSize*that.gridSize
}

// AreAllEqualToBasis - reports whether every cell of group holds exactly basis.
func (that *Field) AreAllEqualToBasis(basis Symbol, group []Cell) bool {
	for _, cell := range group {
		if symbol, ok := that.occupied[cell]; !ok || symbol != basis {
			return false
		}
	}

	return true
}

// OccupiedCells - returns a copy of the occupancy map, so callers can't mutate the grid.
func (that *Field) OccupiedCells() map[Cell]Symbol {
	return maps.Clone(that.occupied)
}
