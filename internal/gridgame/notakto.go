package gridgame

import (
	"fmt"

	"github.com/emzxxx/gridgame-backend/internal/apperror"
	"github.com/emzxxx/gridgame-backend/internal/entity"
)

// notaktoRules is the extension point for misère play, where completing a
// line loses instead of wins. The actual rule set is not implemented; every
// operation fails loudly so an incomplete variant can never masquerade as a
// playable one.
type notaktoRules struct{}

func (that *notaktoRules) PlaceSymbol(_ *entity.Field, _ entity.Symbol, _ entity.Cell, _ bool, _ []entity.Symbol) (entity.Feedback, error) {
	return "", fmt.Errorf("%w: %s", apperror.ErrVariantNotSupported, VariantNotakto)
}

func (that *notaktoRules) Winner(_ *entity.Field, _ entity.PlayerID, _ entity.Symbol) (entity.PlayerID, error) {
	return 0, fmt.Errorf("%w: %s", apperror.ErrVariantNotSupported, VariantNotakto)
}

func (that *notaktoRules) SymbolChoices(_ entity.PlayerID, _ *Roster) ([]entity.Symbol, error) {
	return nil, fmt.Errorf("%w: %s", apperror.ErrVariantNotSupported, VariantNotakto)
}
