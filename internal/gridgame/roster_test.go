package gridgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emzxxx/gridgame-backend/internal/entity"
)

func TestNewRoster(t *testing.T) {
	t.Run("Assigns symbols in seat order", func(t *testing.T) {
		// Given: three symbols for three players
		roster, err := NewRoster([]entity.Symbol{"X", "O", "#"}, 3)
		require.NoError(t, err)

		// Then: player k owns the k-th symbol, both directions agree
		symbol, ok := roster.SymbolOf(1)
		require.True(t, ok)
		assert.Equal(t, entity.Symbol("X"), symbol)

		symbol, ok = roster.SymbolOf(3)
		require.True(t, ok)
		assert.Equal(t, entity.Symbol("#"), symbol)

		player, ok := roster.PlayerOf("O")
		require.True(t, ok)
		assert.Equal(t, entity.PlayerID(2), player)

		assert.Equal(t, 3, roster.Count())
	})

	t.Run("Fails with fewer than two players", func(t *testing.T) {
		_, err := NewRoster([]entity.Symbol{"X"}, 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTooFewPlayers)
	})

	t.Run("Fails with duplicate symbols", func(t *testing.T) {
		_, err := NewRoster([]entity.Symbol{"X", "X"}, 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateSymbols)
	})

	t.Run("Fails when symbol count differs from player count", func(t *testing.T) {
		_, err := NewRoster([]entity.Symbol{"X", "O", "#"}, 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSymbolCountMismatch)
	})
}

func TestRoster_Contains(t *testing.T) {
	roster, err := NewRoster([]entity.Symbol{"X", "O"}, 2)
	require.NoError(t, err)

	assert.True(t, roster.Contains(1))
	assert.True(t, roster.Contains(2))
	assert.False(t, roster.Contains(0))
	assert.False(t, roster.Contains(3))
}

func TestRoster_Symbols_ReturnsCopy(t *testing.T) {
	roster, err := NewRoster([]entity.Symbol{"X", "O"}, 2)
	require.NoError(t, err)

	symbols := roster.Symbols()
	symbols[0] = "Z"

	fresh, ok := roster.SymbolOf(1)
	require.True(t, ok)
	assert.Equal(t, entity.Symbol("X"), fresh)
}
