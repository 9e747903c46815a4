package gridgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emzxxx/gridgame-backend/internal/apperror"
	"github.com/emzxxx/gridgame-backend/internal/entity"
)

func TestModel_Snapshot(t *testing.T) {
	t.Run("Captures an ongoing match", func(t *testing.T) {
		// Given: a match two moves in
		model := newClassicModel(t)
		place(t, model, "X", 1, 1)
		place(t, model, "O", 2, 2)

		// When: taking a snapshot
		match, err := model.Snapshot("match-1")
		require.NoError(t, err)

		// Then: the snapshot mirrors the model state
		assert.Equal(t, "match-1", match.ID)
		assert.Equal(t, entity.VariantClassic, match.Variant)
		assert.Equal(t, 3, match.GridSize)
		assert.Equal(t, []entity.Symbol{"X", "O"}, match.Symbols)
		assert.Equal(t, 2, match.PlayerCount)
		assert.Equal(t, entity.PlayerID(1), match.CurrentPlayer)
		assert.Equal(t, entity.StatusOngoing, match.Status)
		assert.Equal(t, entity.PlayerID(0), match.Winner)
		assert.Equal(t, []entity.Placement{
			{Row: 1, Col: 1, Symbol: "X"},
			{Row: 2, Col: 2, Symbol: "O"},
		}, match.Placements)
	})

	t.Run("Marks a won match as finished", func(t *testing.T) {
		model := newClassicModel(t)
		place(t, model, "X", 1, 1)
		place(t, model, "O", 2, 1)
		place(t, model, "X", 1, 2)
		place(t, model, "O", 2, 2)
		place(t, model, "X", 1, 3)

		match, err := model.Snapshot("match-2")
		require.NoError(t, err)

		assert.Equal(t, entity.StatusFinished, match.Status)
		assert.Equal(t, entity.PlayerID(1), match.Winner)
		assert.True(t, match.IsFinished())
	})
}

func TestFromSnapshot(t *testing.T) {
	t.Run("Roundtrips a match", func(t *testing.T) {
		// Given: a snapshot of a match two moves in
		original := newClassicModel(t)
		place(t, original, "X", 1, 1)
		place(t, original, "O", 2, 2)

		match, err := original.Snapshot("match-1")
		require.NoError(t, err)

		// When: restoring it
		restored, err := FromSnapshot(match)
		require.NoError(t, err)

		// Then: board and turn state survive the roundtrip
		assert.Equal(t, original.OccupiedCells(), restored.OccupiedCells())
		assert.Equal(t, original.CurrentPlayer(), restored.CurrentPlayer())
		assert.Equal(t, original.Variant(), restored.Variant())

		// Then: play continues where it left off
		feedback, err := restored.PlaceSymbol("X", entity.Cell{Row: 3, Col: 3})
		require.NoError(t, err)
		assert.Equal(t, entity.FeedbackValid, feedback)
	})

	t.Run("Rejects a snapshot with invalid configuration", func(t *testing.T) {
		match := &entity.Match{
			ID:          "bad",
			Variant:     entity.VariantClassic,
			GridSize:    3,
			Symbols:     []entity.Symbol{"X", "X"},
			PlayerCount: 2,
		}

		_, err := FromSnapshot(match)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateSymbols)
	})

	t.Run("Rejects an out of bounds placement", func(t *testing.T) {
		match := &entity.Match{
			ID:            "bad",
			Variant:       entity.VariantClassic,
			GridSize:      3,
			Symbols:       []entity.Symbol{"X", "O"},
			PlayerCount:   2,
			CurrentPlayer: 1,
			Placements:    []entity.Placement{{Row: 4, Col: 1, Symbol: "X"}},
		}

		_, err := FromSnapshot(match)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrCorruptMatchSnapshot)
	})

	t.Run("Rejects a doubly occupied cell", func(t *testing.T) {
		match := &entity.Match{
			ID:            "bad",
			Variant:       entity.VariantClassic,
			GridSize:      3,
			Symbols:       []entity.Symbol{"X", "O"},
			PlayerCount:   2,
			CurrentPlayer: 1,
			Placements: []entity.Placement{
				{Row: 1, Col: 1, Symbol: "X"},
				{Row: 1, Col: 1, Symbol: "O"},
			},
		}

		_, err := FromSnapshot(match)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrCorruptMatchSnapshot)
	})

	t.Run("Rejects a current player off the roster", func(t *testing.T) {
		match := &entity.Match{
			ID:            "bad",
			Variant:       entity.VariantClassic,
			GridSize:      3,
			Symbols:       []entity.Symbol{"X", "O"},
			PlayerCount:   2,
			CurrentPlayer: 5,
		}

		_, err := FromSnapshot(match)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrCorruptMatchSnapshot)
	})
}
