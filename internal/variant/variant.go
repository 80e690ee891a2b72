package variant

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/config"
	"github.com/rocketscienceinc/gridgame/internal/entity"
	"github.com/rocketscienceinc/gridgame/internal/gridgame"
	"github.com/rocketscienceinc/gridgame/internal/tictactoe"
)

const (
	TicTacToe = tictactoe.VariantName
	Wild      = "wild"
	Notakto   = "notakto"
	Pick15    = "pick15"
)

// Names - every recognized variant identifier, implemented or not.
func Names() []string {
	return []string{TicTacToe, Notakto, Wild, Pick15}
}

// Lookup - resolves a variant identifier to its rules.
func Lookup(name string) (gridgame.Variant, error) {
	switch name {
	case TicTacToe:
		return tictactoe.Variant(), nil
	case Wild, Notakto, Pick15:
		return gridgame.Variant{}, fmt.Errorf("%w: %w: %s variant is not yet implemented",
			apperror.ErrInvalidArgument, apperror.ErrNotImplemented, name)
	default:
		return gridgame.Variant{}, fmt.Errorf("%w: %q (expected one of %s)",
			apperror.ErrUnknownVariant, name, strings.Join(Names(), ", "))
	}
}

// NewModel - builds a game from the configured variant, grid and players.
func NewModel(conf config.Game) (*gridgame.Model, error) {
	rules, err := Lookup(conf.Variant)
	if err != nil {
		return nil, err
	}

	symbols := make([]entity.Symbol, 0, len(conf.Symbols))
	for _, symbol := range conf.Symbols {
		symbols = append(symbols, entity.Symbol(strings.TrimSpace(symbol)))
	}

	model, err := gridgame.New(conf.Size, conf.PlayerCount, symbols, rules)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s game: %w", conf.Variant, err)
	}

	return model, nil
}
