package entity

// PlayerID identifies a seat at a match. Seats are numbered from 1 in join order.
type PlayerID int

// Symbol is the token a player places on the board, e.g. "X" or "O".
type Symbol string

// Cell is a 1-indexed (row, column) coordinate on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Feedback is the outcome of a placement attempt. Rejections are ordinary
// game events, not errors.
type Feedback string

const (
	FeedbackValid         Feedback = "valid"
	FeedbackGameOver      Feedback = "game_over"
	FeedbackInvalidSymbol Feedback = "invalid_symbol"
	FeedbackOutOfBounds   Feedback = "out_of_bounds"
	FeedbackOccupied      Feedback = "occupied"
)
