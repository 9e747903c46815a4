package gridgame

import (
	"fmt"

	"github.com/emzxxx/gridgame-backend/internal/apperror"
	"github.com/emzxxx/gridgame-backend/internal/entity"
)

// classicRules is ordinary tic-tac-toe: each player owns exactly one symbol
// and may only place that one.
type classicRules struct{}

func (that *classicRules) PlaceSymbol(field *entity.Field, symbol entity.Symbol, cell entity.Cell, gameOver bool, allowed []entity.Symbol) (entity.Feedback, error) {
	return placeOnField(field, symbol, cell, gameOver, allowed), nil
}

func (that *classicRules) Winner(field *entity.Field, player entity.PlayerID, _ entity.Symbol) (entity.PlayerID, error) {
	return scanForWin(field, player), nil
}

func (that *classicRules) SymbolChoices(player entity.PlayerID, roster *Roster) ([]entity.Symbol, error) {
	symbol, ok := roster.SymbolOf(player)
	if !ok {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownPlayer, player)
	}

	return []entity.Symbol{symbol}, nil
}
