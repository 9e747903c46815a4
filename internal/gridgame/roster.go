package gridgame

import (
	"errors"
	"fmt"

	"github.com/emzxxx/gridgame-backend/internal/entity"
)

var (
	ErrTooFewPlayers       = errors.New("must have at least two players")
	ErrDuplicateSymbols    = errors.New("player symbols must be unique")
	ErrSymbolCountMismatch = errors.New("symbol count must equal player count")
)

// Roster is the bijective PlayerID <-> Symbol assignment for a match. It is
// built once at construction, where uniqueness is enforced, so the two
// directions can never drift apart. Player k (1-indexed) owns symbols[k-1].
type Roster struct {
	symbols  []entity.Symbol
	bySymbol map[entity.Symbol]entity.PlayerID
}

func NewRoster(symbols []entity.Symbol, playerCount int) (*Roster, error) {
	if playerCount <= 1 {
		return nil, fmt.Errorf("%w (found %d)", ErrTooFewPlayers, playerCount)
	}

	if len(symbols) != playerCount {
		return nil, fmt.Errorf("%w (%d symbols for %d players)", ErrSymbolCountMismatch, len(symbols), playerCount)
	}

	bySymbol := make(map[entity.Symbol]entity.PlayerID, len(symbols))
	for i, symbol := range symbols {
		if _, exists := bySymbol[symbol]; exists {
			return nil, fmt.Errorf("%w (%q appears twice)", ErrDuplicateSymbols, symbol)
		}
		bySymbol[symbol] = entity.PlayerID(i + 1)
	}

	roster := &Roster{
		symbols:  make([]entity.Symbol, len(symbols)),
		bySymbol: bySymbol,
	}
	copy(roster.symbols, symbols)

	return roster, nil
}

func (that *Roster) Count() int {
	return len(that.symbols)
}

func (that *Roster) Contains(player entity.PlayerID) bool {
	return player >= 1 && int(player) <= len(that.symbols)
}

// SymbolOf returns the symbol assigned to player at construction.
func (that *Roster) SymbolOf(player entity.PlayerID) (entity.Symbol, bool) {
	if !that.Contains(player) {
		return "", false
	}

	return that.symbols[player-1], true
}

// PlayerOf returns the original owner of symbol.
func (that *Roster) PlayerOf(symbol entity.Symbol) (entity.PlayerID, bool) {
	player, ok := that.bySymbol[symbol]
	return player, ok
}

// Symbols returns all assigned symbols in seat order, as a copy.
func (that *Roster) Symbols() []entity.Symbol {
	symbols := make([]entity.Symbol, len(that.symbols))
	copy(symbols, that.symbols)

	return symbols
}
