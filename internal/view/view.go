package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/gridgame/internal/entity"
)

const emptyCell = "."

// palette colors symbols by player, cycling when there are more players than colors.
var palette = []string{"#60a5fa", "#f87171", "#34d399", "#fbbf24", "#c084fc", "#f472b6"}

// View renders the game to a terminal.
type View struct {
	out *termenv.Output
}

type Option func(*View)

// WithProfile forces a color profile, e.g. termenv.Ascii for plain text.
func WithProfile(profile termenv.Profile) Option {
	return func(v *View) {
		v.out = termenv.NewOutput(v.out.Writer(), termenv.WithProfile(profile))
	}
}

func New(w io.Writer, opts ...Option) *View {
	v := &View{
		out: termenv.NewOutput(w),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Board - draws the grid with 1-indexed row and column headers.
func (that *View) Board(gridSize int, occupied map[entity.Cell]entity.Symbol, owners map[entity.Symbol]entity.PlayerID) {
	width := len(strconv.Itoa(gridSize))
	for _, symbol := range occupied {
		width = max(width, len(symbol))
	}

	var b strings.Builder

	b.WriteString(strings.Repeat(" ", width+1))
	for col := 1; col <= gridSize; col++ {
		fmt.Fprintf(&b, " %*d", width, col)
	}
	b.WriteString("\n")

	for row := 1; row <= gridSize; row++ {
		fmt.Fprintf(&b, "%*d ", width, row)
		for col := 1; col <= gridSize; col++ {
			b.WriteString(" ")

			symbol, ok := occupied[entity.NewCell(row, col)]
			if !ok {
				fmt.Fprintf(&b, "%*s", width, emptyCell)
				continue
			}

			b.WriteString(strings.Repeat(" ", width-len(symbol)))
			b.WriteString(that.styled(symbol, owners[symbol]))
		}
		b.WriteString("\n")
	}

	that.print(b.String())
}

func (that *View) Prompt(player entity.PlayerID, choices []entity.Symbol) {
	symbols := make([]string, 0, len(choices))
	for _, symbol := range choices {
		symbols = append(symbols, string(symbol))
	}

	if len(choices) == 1 {
		that.print(fmt.Sprintf("Player %d (%s), enter row and column: ", player, symbols[0]))
		return
	}

	that.print(fmt.Sprintf("Player %d, enter row, column and symbol [%s]: ", player, strings.Join(symbols, "/")))
}

// Feedback - explains why a move was rejected. Valid moves print nothing.
func (that *View) Feedback(feedback entity.Feedback, cell entity.Cell, gridSize int) {
	switch feedback {
	case entity.FeedbackValid:
		return
	case entity.FeedbackGameOver:
		that.warn("The game is already over.")
	case entity.FeedbackInvalidSymbol:
		that.warn("You can't place that symbol.")
	case entity.FeedbackOutOfBounds:
		that.warn(fmt.Sprintf("Cell %s is outside the %dx%d grid.", cell, gridSize, gridSize))
	case entity.FeedbackOccupied:
		that.warn(fmt.Sprintf("Cell %s is already occupied.", cell))
	default:
		that.warn(fmt.Sprintf("Unexpected feedback %q.", feedback))
	}
}

func (that *View) InvalidInput(reason string) {
	that.warn("Invalid input: " + reason)
}

func (that *View) Result(winner entity.PlayerID, won bool) {
	if !won {
		that.print(that.out.String("It's a draw!").Bold().String() + "\n")
		return
	}

	that.print(that.out.String(fmt.Sprintf("Player %d wins!", winner)).Bold().String() + "\n")
}

// Stats - prints all-time outcome tallies for a variant.
func (that *View) Stats(stats *entity.Stats) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %d games, %d draws\n", stats.Variant, stats.Games, stats.Draws)
	for _, symbol := range stats.SortedSymbols() {
		fmt.Fprintf(&b, "  %s won %d\n", symbol, stats.Wins[symbol])
	}

	that.print(b.String())
}

func (that *View) styled(symbol entity.Symbol, owner entity.PlayerID) string {
	if owner < 1 {
		return string(symbol)
	}

	color := that.out.Color(palette[int(owner-1)%len(palette)])

	return that.out.String(string(symbol)).Foreground(color).Bold().String()
}

func (that *View) warn(message string) {
	that.print(that.out.String(message).Foreground(that.out.Color("#f87171")).String() + "\n")
}

func (that *View) print(s string) {
	_, _ = io.WriteString(that.out, s)
}
