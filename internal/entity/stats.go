package entity

import (
	"maps"
	"slices"
)

// Result is the outcome of one finished game. Symbol is empty for a draw.
type Result struct {
	Variant string `json:"variant"`
	Winner  Symbol `json:"winner,omitempty"`
}

func (that Result) IsDraw() bool {
	return that.Winner == ""
}

// Stats are all-time outcome tallies for a variant.
type Stats struct {
	Variant string           `json:"variant"`
	Games   int64            `json:"games"`
	Draws   int64            `json:"draws"`
	Wins    map[Symbol]int64 `json:"wins"`
}

func (that *Stats) SortedSymbols() []Symbol {
	return slices.Sorted(maps.Keys(that.Wins))
}
