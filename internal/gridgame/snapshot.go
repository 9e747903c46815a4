package gridgame

import (
	"fmt"
	"sort"

	"github.com/emzxxx/gridgame-backend/internal/apperror"
	"github.com/emzxxx/gridgame-backend/internal/entity"
)

// Snapshot serializes the model into a Match for storage or transport.
// Winner and Status are filled in from the derived queries.
func (that *Model) Snapshot(id string) (*entity.Match, error) {
	winner, err := that.Winner()
	if err != nil {
		return nil, err
	}

	gameOver, err := that.IsGameOver()
	if err != nil {
		return nil, err
	}

	status := entity.StatusOngoing
	if gameOver {
		status = entity.StatusFinished
	}

	occupied := that.field.OccupiedCells()

	placements := make([]entity.Placement, 0, len(occupied))
	for cell, symbol := range occupied {
		placements = append(placements, entity.Placement{Row: cell.Row, Col: cell.Col, Symbol: symbol})
	}

	// map iteration order is random; keep snapshots deterministic
	sort.Slice(placements, func(i, j int) bool {
		if placements[i].Row != placements[j].Row {
			return placements[i].Row < placements[j].Row
		}
		return placements[i].Col < placements[j].Col
	})

	return &entity.Match{
		ID:            id,
		Variant:       string(that.variant),
		GridSize:      that.GridSize(),
		Symbols:       that.roster.Symbols(),
		PlayerCount:   that.PlayerCount(),
		CurrentPlayer: that.current,
		Placements:    placements,
		Winner:        winner,
		Status:        status,
	}, nil
}

// FromSnapshot rebuilds a model from a stored Match. Placements are replayed
// onto a fresh board; a placement that falls outside the grid or lands on an
// occupied cell marks the snapshot as corrupt.
func FromSnapshot(match *entity.Match) (*Model, error) {
	model, err := NewModel(match.GridSize, match.Symbols, match.PlayerCount, Variant(match.Variant))
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild match %s: %w", match.ID, err)
	}

	for _, placement := range match.Placements {
		cell := entity.Cell{Row: placement.Row, Col: placement.Col}

		if !model.field.IsWithinBounds(cell) {
			return nil, fmt.Errorf("%w: placement %v is out of bounds", apperror.ErrCorruptMatchSnapshot, cell)
		}

		if _, occupied := model.field.SymbolAt(cell); occupied {
			return nil, fmt.Errorf("%w: cell %v is placed twice", apperror.ErrCorruptMatchSnapshot, cell)
		}

		model.field.PlaceSymbol(placement.Symbol, cell)
	}

	if !model.roster.Contains(match.CurrentPlayer) {
		return nil, fmt.Errorf("%w: current player %d is not on the roster", apperror.ErrCorruptMatchSnapshot, match.CurrentPlayer)
	}

	model.current = match.CurrentPlayer

	return model, nil
}
