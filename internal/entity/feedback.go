package entity

// Feedback is the outcome of a single move attempt.
type Feedback int

const (
	FeedbackValid Feedback = iota
	FeedbackGameOver
	FeedbackInvalidSymbol
	FeedbackOutOfBounds
	FeedbackOccupied
)

func (that Feedback) String() string {
	switch that {
	case FeedbackValid:
		return "valid"
	case FeedbackGameOver:
		return "game_over"
	case FeedbackInvalidSymbol:
		return "invalid_symbol"
	case FeedbackOutOfBounds:
		return "out_of_bounds"
	case FeedbackOccupied:
		return "occupied"
	default:
		return "unknown"
	}
}

// GameState is the phase a game is in. StateWon and StateDrawn are terminal.
type GameState int

const (
	StateInProgress GameState = iota
	StateWon
	StateDrawn
)

func (that GameState) String() string {
	switch that {
	case StateInProgress:
		return "in_progress"
	case StateWon:
		return "won"
	case StateDrawn:
		return "drawn"
	default:
		return "unknown"
	}
}
