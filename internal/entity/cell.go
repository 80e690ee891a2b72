package entity

import "fmt"

// Symbol is the token a player puts into a cell.
type Symbol string

// PlayerID identifies a player. Players are numbered from 1 up to the player count.
type PlayerID int

// Cell is a 1-indexed (row, column) position on the grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCell(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}
