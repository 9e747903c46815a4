package gridgame

import (
	"fmt"

	"github.com/emzxxx/gridgame-backend/internal/apperror"
	"github.com/emzxxx/gridgame-backend/internal/entity"
)

// wildRules is wild tic-tac-toe: any player may place any symbol in play, and
// whoever completes a line wins it, regardless of whose symbols it holds.
// Placement and line scanning are shared with the classic variant; only the
// symbol choice differs.
type wildRules struct{}

func (that *wildRules) PlaceSymbol(field *entity.Field, symbol entity.Symbol, cell entity.Cell, gameOver bool, allowed []entity.Symbol) (entity.Feedback, error) {
	return placeOnField(field, symbol, cell, gameOver, allowed), nil
}

func (that *wildRules) Winner(field *entity.Field, player entity.PlayerID, _ entity.Symbol) (entity.PlayerID, error) {
	return scanForWin(field, player), nil
}

func (that *wildRules) SymbolChoices(player entity.PlayerID, roster *Roster) ([]entity.Symbol, error) {
	if !roster.Contains(player) {
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownPlayer, player)
	}

	return roster.Symbols(), nil
}
