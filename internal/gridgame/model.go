package gridgame

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/entity"
)

const firstPlayer entity.PlayerID = 1

// Model runs one game: it owns the field, tracks whose turn it is and validates moves.
// It is not safe for concurrent use; a game is driven by a single caller.
type Model struct {
	variant       string
	field         *entity.Field
	playerCount   int
	currentPlayer entity.PlayerID

	winConditionChecker WinConditionChecker
	symbolManager       SymbolManager
}

// New - creates a game. Player k gets playerSymbols[k-1].
func New(gridSize, playerCount int, playerSymbols []entity.Symbol, variant Variant) (*Model, error) {
	if err := validate(gridSize, playerCount, playerSymbols, variant); err != nil {
		return nil, err
	}

	symbolToPlayer := make(map[entity.Symbol]entity.PlayerID, playerCount)
	playerToSymbol := make(map[entity.PlayerID]entity.Symbol, playerCount)
	for i, symbol := range playerSymbols {
		player := entity.PlayerID(i + 1)
		symbolToPlayer[symbol] = player
		playerToSymbol[player] = symbol
	}

	field := entity.NewField(gridSize)

	return &Model{
		variant:       variant.Name,
		field:         field,
		playerCount:   playerCount,
		currentPlayer: firstPlayer,

		winConditionChecker: variant.NewWinConditionChecker(field, symbolToPlayer),
		symbolManager:       variant.NewSymbolManager(playerToSymbol),
	}, nil
}

func validate(gridSize, playerCount int, playerSymbols []entity.Symbol, variant Variant) error {
	if playerCount <= 1 {
		return fmt.Errorf("%w: must have at least two players (found %d)", apperror.ErrInvalidArgument, playerCount)
	}

	seen := make(map[entity.Symbol]struct{}, len(playerSymbols))
	for _, symbol := range playerSymbols {
		if _, ok := seen[symbol]; ok {
			return fmt.Errorf("%w: player symbols must be unique (was %v)", apperror.ErrInvalidArgument, playerSymbols)
		}
		seen[symbol] = struct{}{}
	}

	if len(playerSymbols) != playerCount {
		return fmt.Errorf("%w: player symbols must be exactly %d (was %v)", apperror.ErrInvalidArgument, playerCount, playerSymbols)
	}

	if gridSize < 1 {
		return fmt.Errorf("%w: grid size must be positive (was %d)", apperror.ErrInvalidArgument, gridSize)
	}

	if slices.Contains(playerSymbols, "") {
		return fmt.Errorf("%w: player symbols must not be empty", apperror.ErrInvalidArgument)
	}

	if variant.NewWinConditionChecker == nil || variant.NewSymbolManager == nil {
		return fmt.Errorf("%w: variant %q has no rules", apperror.ErrInvalidArgument, variant.Name)
	}

	return nil
}

func (that *Model) Variant() string {
	return that.variant
}

func (that *Model) GridSize() int {
	return that.field.GridSize()
}

func (that *Model) PlayerCount() int {
	return that.playerCount
}

func (that *Model) CurrentPlayer() entity.PlayerID {
	return that.currentPlayer
}

// NextPlayer - the player after the current one, wrapping to the first. Does not change state.
func (that *Model) NextPlayer() entity.PlayerID {
	if int(that.currentPlayer) == that.playerCount {
		return firstPlayer
	}

	return that.currentPlayer + 1
}

// Winner - asks the checker on every call, so it always matches the field.
func (that *Model) Winner() (entity.PlayerID, bool) {
	return that.winConditionChecker.CheckWinner()
}

func (that *Model) IsGameOver() bool {
	if _, ok := that.Winner(); ok {
		return true
	}

	return !that.field.HasUnoccupiedCell()
}

func (that *Model) State() entity.GameState {
	if _, ok := that.Winner(); ok {
		return entity.StateWon
	}

	if !that.field.HasUnoccupiedCell() {
		return entity.StateDrawn
	}

	return entity.StateInProgress
}

func (that *Model) OccupiedCells() map[entity.Cell]entity.Symbol {
	return that.field.OccupiedCells()
}

func (that *Model) SymbolChoices(player entity.PlayerID) ([]entity.Symbol, error) {
	choices, err := that.symbolManager.SymbolChoices(player)
	if err != nil {
		return nil, fmt.Errorf("failed to get symbol choices: %w", err)
	}

	return choices, nil
}

// PlaceSymbol - validates and commits a move for the current player.
// The first failing check decides the feedback; nothing is written unless it is FeedbackValid.
// A winning move does not advance the turn.
func (that *Model) PlaceSymbol(symbol entity.Symbol, cell entity.Cell) entity.Feedback {
	if that.IsGameOver() {
		return entity.FeedbackGameOver
	}

	choices, err := that.symbolManager.SymbolChoices(that.currentPlayer)
	if err != nil {
		panic(fmt.Sprintf("current player %d has no symbol choices: %v", that.currentPlayer, err))
	}

	if !slices.Contains(choices, symbol) {
		return entity.FeedbackInvalidSymbol
	}

	if !that.field.IsWithinBounds(cell) {
		return entity.FeedbackOutOfBounds
	}

	if _, ok := that.field.SymbolAt(cell); ok {
		return entity.FeedbackOccupied
	}

	that.field.PlaceSymbol(symbol, cell)

	if _, ok := that.Winner(); ok {
		return entity.FeedbackValid
	}

	that.currentPlayer = that.NextPlayer()

	return entity.FeedbackValid
}
