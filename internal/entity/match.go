package entity

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

const (
	VariantClassic = "classic"
	VariantWild    = "wild"
	VariantNotakto = "notakto"
)

// Placement records one occupied cell for serialization.
type Placement struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Symbol Symbol `json:"symbol"`
}

// Match is the serializable snapshot of a running match. Winner and Status
// are derived at snapshot time and ignored on restore.
type Match struct {
	ID            string      `json:"id"`
	Variant       string      `json:"variant"`
	GridSize      int         `json:"grid_size"`
	Symbols       []Symbol    `json:"symbols"`
	PlayerCount   int         `json:"player_count"`
	CurrentPlayer PlayerID    `json:"current_player"`
	Placements    []Placement `json:"placements,omitempty"`
	Winner        PlayerID    `json:"winner,omitempty"`
	Status        string      `json:"status"`
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}
