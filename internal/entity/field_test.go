package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_ValidCoords(t *testing.T) {
	// Given: a 3x3 field
	field := NewField(3)

	// Then: the valid coordinate range is 1..3 in order
	assert.Equal(t, []int{1, 2, 3}, field.ValidCoords())
	assert.Equal(t, 3, field.Size())
}

func TestField_IsWithinBounds(t *testing.T) {
	field := NewField(3)

	t.Run("Cells inside the grid are within bounds", func(t *testing.T) {
		assert.True(t, field.IsWithinBounds(Cell{Row: 1, Col: 1}))
		assert.True(t, field.IsWithinBounds(Cell{Row: 3, Col: 3}))
		assert.True(t, field.IsWithinBounds(Cell{Row: 2, Col: 3}))
	})

	t.Run("Cells outside the grid are out of bounds", func(t *testing.T) {
		assert.False(t, field.IsWithinBounds(Cell{Row: 0, Col: 1}))
		assert.False(t, field.IsWithinBounds(Cell{Row: 1, Col: 0}))
		assert.False(t, field.IsWithinBounds(Cell{Row: 4, Col: 1}))
		assert.False(t, field.IsWithinBounds(Cell{Row: 1, Col: 4}))
	})
}

func TestField_PlaceSymbol(t *testing.T) {
	t.Run("A placed symbol can be read back", func(t *testing.T) {
		// Given: an empty field
		field := NewField(3)

		// When: a symbol is placed
		field.PlaceSymbol("X", Cell{Row: 1, Col: 1})

		// Then: the cell holds the symbol
		symbol, ok := field.SymbolAt(Cell{Row: 1, Col: 1})
		require.True(t, ok)
		assert.Equal(t, Symbol("X"), symbol)
	})

	t.Run("An occupied cell is never overwritten", func(t *testing.T) {
		// Given: a field with X at (1,1)
		field := NewField(3)
		field.PlaceSymbol("X", Cell{Row: 1, Col: 1})

		// When: another symbol targets the same cell
		field.PlaceSymbol("O", Cell{Row: 1, Col: 1})

		// Then: the original symbol stays
		symbol, ok := field.SymbolAt(Cell{Row: 1, Col: 1})
		require.True(t, ok)
		assert.Equal(t, Symbol("X"), symbol)
	})

	t.Run("An empty cell reports no symbol", func(t *testing.T) {
		field := NewField(3)

		_, ok := field.SymbolAt(Cell{Row: 2, Col: 2})
		assert.False(t, ok)
	})
}

func TestField_OccupiedCells(t *testing.T) {
	// Given: a field with two placements
	field := NewField(3)
	field.PlaceSymbol("X", Cell{Row: 1, Col: 1})
	field.PlaceSymbol("O", Cell{Row: 2, Col: 3})

	// When: taking a snapshot
	occupied := field.OccupiedCells()

	// Then: the snapshot holds both placements
	require.Len(t, occupied, 2)
	assert.Equal(t, Symbol("X"), occupied[Cell{Row: 1, Col: 1}])
	assert.Equal(t, Symbol("O"), occupied[Cell{Row: 2, Col: 3}])

	// Then: mutating the snapshot does not touch the field
	occupied[Cell{Row: 3, Col: 3}] = "X"
	_, ok := field.SymbolAt(Cell{Row: 3, Col: 3})
	assert.False(t, ok)
}

func TestField_HasUnoccupiedCell(t *testing.T) {
	// Given: a 2x2 field
	field := NewField(2)
	require.True(t, field.HasUnoccupiedCell())

	// When: filling every cell
	field.PlaceSymbol("X", Cell{Row: 1, Col: 1})
	field.PlaceSymbol("O", Cell{Row: 1, Col: 2})
	field.PlaceSymbol("X", Cell{Row: 2, Col: 1})
	field.PlaceSymbol("O", Cell{Row: 2, Col: 2})

	// Then: no unoccupied cell remains
	assert.False(t, field.HasUnoccupiedCell())
}

func TestField_AllEqualToBasis(t *testing.T) {
	field := NewField(3)
	field.PlaceSymbol("X", Cell{Row: 1, Col: 1})
	field.PlaceSymbol("X", Cell{Row: 1, Col: 2})
	field.PlaceSymbol("O", Cell{Row: 1, Col: 3})

	row := []Cell{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}}

	t.Run("A mixed line does not match the basis", func(t *testing.T) {
		assert.False(t, field.AllEqualToBasis("X", row))
	})

	t.Run("A uniform line matches the basis", func(t *testing.T) {
		assert.True(t, field.AllEqualToBasis("X", row[:2]))
	})

	t.Run("A line with an unoccupied cell does not match", func(t *testing.T) {
		column := []Cell{{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1}}
		assert.False(t, field.AllEqualToBasis("X", column))
	})
}
