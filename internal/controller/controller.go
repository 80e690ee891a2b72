package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/entity"
)

var ErrQuit = errors.New("player quit")

var quitCommands = []string{"quit", "exit", "q"}

type game interface {
	Variant() string
	GridSize() int
	PlayerCount() int
	CurrentPlayer() entity.PlayerID
	SymbolChoices(player entity.PlayerID) ([]entity.Symbol, error)
	PlaceSymbol(symbol entity.Symbol, cell entity.Cell) entity.Feedback
	Winner() (entity.PlayerID, bool)
	IsGameOver() bool
	OccupiedCells() map[entity.Cell]entity.Symbol
}

type view interface {
	Board(gridSize int, occupied map[entity.Cell]entity.Symbol, owners map[entity.Symbol]entity.PlayerID)
	Prompt(player entity.PlayerID, choices []entity.Symbol)
	Feedback(feedback entity.Feedback, cell entity.Cell, gridSize int)
	InvalidInput(reason string)
	Result(winner entity.PlayerID, won bool)
}

type statsRecorder interface {
	RecordResult(ctx context.Context, result entity.Result) error
}

type observer interface {
	ObserveMove(feedback entity.Feedback)
	ObserveResult(result entity.Result)
}

// Controller reads moves from an input stream and feeds them to the game until it ends.
type Controller struct {
	logger *slog.Logger
	game   game
	view   view
	input  io.Reader

	stats    statsRecorder
	observer observer
}

type Option func(*Controller)

func WithStats(stats statsRecorder) Option {
	return func(c *Controller) {
		c.stats = stats
	}
}

func WithObserver(observer observer) Option {
	return func(c *Controller) {
		c.observer = observer
	}
}

func New(logger *slog.Logger, game game, view view, input io.Reader, opts ...Option) *Controller {
	c := &Controller{
		logger: logger.With("component", "controller"),
		game:   game,
		view:   view,
		input:  input,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run - plays the game to the end. Rejected moves and malformed lines are reported and re-prompted.
// It returns apperror.ErrInputClosed when input ends early, ErrQuit on a quit command
// and ctx.Err() when ctx is canceled.
func (that *Controller) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run", "variant", that.game.Variant())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	owners, err := that.symbolOwners()
	if err != nil {
		return err
	}

	lines, readErr := that.readLines(ctx)

	for !that.game.IsGameOver() {
		that.view.Board(that.game.GridSize(), that.game.OccupiedCells(), owners)

		player := that.game.CurrentPlayer()
		choices, err := that.game.SymbolChoices(player)
		if err != nil {
			return fmt.Errorf("failed to get symbol choices: %w", err)
		}

		that.view.Prompt(player, choices)

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				if err = <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return apperror.ErrInputClosed
			}
			line = l
		}

		symbol, cell, err := parseMove(line, choices)
		if errors.Is(err, ErrQuit) {
			log.Info("player quit", "player", player)
			return ErrQuit
		}
		if err != nil {
			that.view.InvalidInput(err.Error())
			continue
		}

		feedback := that.game.PlaceSymbol(symbol, cell)
		log.Debug("move", "player", player, "symbol", symbol, "cell", cell.String(), "feedback", feedback.String())

		if that.observer != nil {
			that.observer.ObserveMove(feedback)
		}

		that.view.Feedback(feedback, cell, that.game.GridSize())
	}

	that.view.Board(that.game.GridSize(), that.game.OccupiedCells(), owners)

	winner, won := that.game.Winner()
	that.view.Result(winner, won)

	result, err := that.result(winner, won)
	if err != nil {
		return err
	}

	log.Info("game over", "winner", string(result.Winner), "draw", result.IsDraw())

	that.finish(ctx, result)

	return nil
}

// readLines - scans input in the background so a blocked read never holds up cancellation.
// readErr gets exactly one value, sent before lines is closed.
func (that *Controller) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func (that *Controller) symbolOwners() (map[entity.Symbol]entity.PlayerID, error) {
	owners := make(map[entity.Symbol]entity.PlayerID, that.game.PlayerCount())

	for player := entity.PlayerID(1); int(player) <= that.game.PlayerCount(); player++ {
		choices, err := that.game.SymbolChoices(player)
		if err != nil {
			return nil, fmt.Errorf("failed to get symbol choices: %w", err)
		}

		for _, symbol := range choices {
			owners[symbol] = player
		}
	}

	return owners, nil
}

func (that *Controller) result(winner entity.PlayerID, won bool) (entity.Result, error) {
	result := entity.Result{Variant: that.game.Variant()}
	if !won {
		return result, nil
	}

	choices, err := that.game.SymbolChoices(winner)
	if err != nil {
		return result, fmt.Errorf("failed to get winner symbol: %w", err)
	}

	result.Winner = choices[0]

	return result, nil
}

// finish - stats are best effort; a storage failure doesn't fail a finished game.
func (that *Controller) finish(ctx context.Context, result entity.Result) {
	log := that.logger.With("method", "finish")

	if that.observer != nil {
		that.observer.ObserveResult(result)
	}

	if that.stats == nil {
		return
	}

	if err := that.stats.RecordResult(ctx, result); err != nil {
		log.Error("failed to record result", "error", err)
	}
}

// parseMove - reads "row col" or "row col symbol". The symbol may be left out when there is only one choice.
func parseMove(line string, choices []entity.Symbol) (entity.Symbol, entity.Cell, error) {
	fields := strings.Fields(line)

	if len(fields) == 1 {
		for _, command := range quitCommands {
			if strings.EqualFold(fields[0], command) {
				return "", entity.Cell{}, ErrQuit
			}
		}
	}

	var symbol entity.Symbol
	switch len(fields) {
	case 2:
		if len(choices) != 1 {
			return "", entity.Cell{}, errors.New("choose one of your symbols")
		}
		symbol = choices[0]
	case 3:
		symbol = entity.Symbol(fields[2])
	default:
		return "", entity.Cell{}, errors.New("expected row and column")
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return "", entity.Cell{}, fmt.Errorf("row %q is not a number", fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", entity.Cell{}, fmt.Errorf("column %q is not a number", fields[1])
	}

	return symbol, entity.NewCell(row, col), nil
}
