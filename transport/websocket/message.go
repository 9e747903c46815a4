package websocket

import (
	"encoding/json"

	"github.com/emzxxx/gridgame-backend/internal/entity"
)

// Message is one WebSocket exchange: an action name plus its payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries request and response fields for every match action; unused
// fields stay empty.
type Payload struct {
	MatchID     string          `json:"match_id,omitempty"`
	Variant     string          `json:"variant,omitempty"`
	GridSize    int             `json:"grid_size,omitempty"`
	Symbols     []entity.Symbol `json:"symbols,omitempty"`
	PlayerCount int             `json:"player_count,omitempty"`

	Player  entity.PlayerID `json:"player,omitempty"`
	Symbol  entity.Symbol   `json:"symbol,omitempty"`
	Cell    *entity.Cell    `json:"cell,omitempty"`
	Choices []entity.Symbol `json:"choices,omitempty"`

	Feedback entity.Feedback `json:"feedback,omitempty"`
	Match    *entity.Match   `json:"match,omitempty"`
	Error    string          `json:"error,omitempty"`
}
