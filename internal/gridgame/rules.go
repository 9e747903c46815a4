package gridgame

import (
	"fmt"

	"github.com/emzxxx/gridgame-backend/internal/apperror"
	"github.com/emzxxx/gridgame-backend/internal/entity"
)

// Variant selects the rule set a match is played under.
type Variant string

const (
	VariantClassic Variant = entity.VariantClassic
	VariantWild    Variant = entity.VariantWild
	VariantNotakto Variant = entity.VariantNotakto
)

// Rules is the per-variant strategy behind a match. Placement rejections come
// back as a Feedback value; an error means the caller misused the engine or
// the variant is not implemented.
type Rules interface {
	// PlaceSymbol validates a placement against the board and, when legal,
	// writes it. Checks run in a fixed order: finished game, disallowed
	// symbol, bounds, occupancy.
	PlaceSymbol(field *entity.Field, symbol entity.Symbol, cell entity.Cell, gameOver bool, allowed []entity.Symbol) (entity.Feedback, error)

	// Winner reports whether player, holding symbol, has a completed line.
	// Returns 0 when no line is complete.
	Winner(field *entity.Field, player entity.PlayerID, symbol entity.Symbol) (entity.PlayerID, error)

	// SymbolChoices lists the symbols player may place this turn.
	SymbolChoices(player entity.PlayerID, roster *Roster) ([]entity.Symbol, error)
}

// NewRules returns the rule set for the given variant.
func NewRules(variant Variant) (Rules, error) {
	switch variant {
	case VariantClassic:
		return &classicRules{}, nil
	case VariantWild:
		return &wildRules{}, nil
	case VariantNotakto:
		return &notaktoRules{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownVariant, variant)
	}
}
