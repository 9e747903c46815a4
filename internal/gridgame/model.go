package gridgame

import (
	"errors"
	"fmt"

	"github.com/emzxxx/gridgame-backend/internal/entity"
)

var ErrInvalidGridSize = errors.New("grid size must be positive")

// Model orchestrates a single match: it owns the board, the roster and the
// turn counter, and delegates every legality and termination decision to the
// variant's rule set. Winner, game-over and next-player are recomputed from
// current state on every read, never cached.
type Model struct {
	field   *entity.Field
	rules   Rules
	variant Variant
	roster  *Roster
	current entity.PlayerID
}

func NewModel(gridSize int, symbols []entity.Symbol, playerCount int, variant Variant) (*Model, error) {
	if gridSize < 1 {
		return nil, fmt.Errorf("%w (found %d)", ErrInvalidGridSize, gridSize)
	}

	roster, err := NewRoster(symbols, playerCount)
	if err != nil {
		return nil, err
	}

	rules, err := NewRules(variant)
	if err != nil {
		return nil, err
	}

	return &Model{
		field:   entity.NewField(gridSize),
		rules:   rules,
		variant: variant,
		roster:  roster,
		current: 1,
	}, nil
}

func (that *Model) GridSize() int {
	return that.field.Size()
}

func (that *Model) Variant() Variant {
	return that.variant
}

func (that *Model) PlayerCount() int {
	return that.roster.Count()
}

func (that *Model) CurrentPlayer() entity.PlayerID {
	return that.current
}

// NextPlayer is the seat that moves after the current one, wrapping back to 1.
func (that *Model) NextPlayer() entity.PlayerID {
	if int(that.current) == that.roster.Count() {
		return 1
	}

	return that.current + 1
}

// OccupiedCells returns a read-only snapshot of the board.
func (that *Model) OccupiedCells() map[entity.Cell]entity.Symbol {
	return that.field.OccupiedCells()
}

// Winner checks whether the player to move has a completed line with their
// assigned symbol. Returns 0 when there is no winner yet.
func (that *Model) Winner() (entity.PlayerID, error) {
	symbol, ok := that.roster.SymbolOf(that.current)
	if !ok {
		return 0, fmt.Errorf("current player %d has no symbol", that.current)
	}

	winner, err := that.rules.Winner(that.field, that.current, symbol)
	if err != nil {
		return 0, fmt.Errorf("failed to check winner: %w", err)
	}

	return winner, nil
}

// IsGameOver reports whether the match has ended: a winner exists or the
// board has no unoccupied cell left.
func (that *Model) IsGameOver() (bool, error) {
	winner, err := that.Winner()
	if err != nil {
		return false, err
	}

	return winner != 0 || !that.field.HasUnoccupiedCell(), nil
}

// SymbolChoices lists the symbols player may place under the active variant.
func (that *Model) SymbolChoices(player entity.PlayerID) ([]entity.Symbol, error) {
	return that.rules.SymbolChoices(player, that.roster)
}

// PlaceSymbol attempts a placement for the current player. On a valid move
// that does not end the match, the turn passes to the next seat; any
// rejection leaves both board and turn untouched.
func (that *Model) PlaceSymbol(symbol entity.Symbol, cell entity.Cell) (entity.Feedback, error) {
	gameOver, err := that.IsGameOver()
	if err != nil {
		return "", err
	}

	feedback, err := that.rules.PlaceSymbol(that.field, symbol, cell, gameOver, that.roster.Symbols())
	if err != nil {
		return "", fmt.Errorf("failed to place symbol: %w", err)
	}

	if feedback != entity.FeedbackValid {
		return feedback, nil
	}

	gameOver, err = that.IsGameOver()
	if err != nil {
		return "", err
	}

	if !gameOver {
		that.current = that.NextPlayer()
	}

	return feedback, nil
}
