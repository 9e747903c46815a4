package gridgame

import "github.com/emzxxx/gridgame-backend/internal/entity"

// winningGroups enumerates every line that can decide a match: all rows, then
// all columns, then the two diagonals. The anti-diagonal runs from
// (1, size) down to (size, 1).
func winningGroups(field *entity.Field) [][]entity.Cell {
	coords := field.ValidCoords()
	size := field.Size()

	groups := make([][]entity.Cell, 0, 2*size+2)

	for _, row := range coords {
		group := make([]entity.Cell, 0, size)
		for _, k := range coords {
			group = append(group, entity.Cell{Row: row, Col: k})
		}
		groups = append(groups, group)
	}

	for _, col := range coords {
		group := make([]entity.Cell, 0, size)
		for _, k := range coords {
			group = append(group, entity.Cell{Row: k, Col: col})
		}
		groups = append(groups, group)
	}

	backslash := make([]entity.Cell, 0, size)
	forward := make([]entity.Cell, 0, size)
	for _, k := range coords {
		backslash = append(backslash, entity.Cell{Row: k, Col: k})
		forward = append(forward, entity.Cell{Row: k, Col: size - k + 1})
	}

	return append(groups, backslash, forward)
}

// scanForWin checks every winning group against the symbol in its first cell.
// A fully unoccupied line has no basis and is skipped. The scan does not care
// who owns the matched symbol; the player under evaluation takes the win.
func scanForWin(field *entity.Field, player entity.PlayerID) entity.PlayerID {
	for _, group := range winningGroups(field) {
		basis, ok := field.SymbolAt(group[0])
		if !ok {
			continue
		}

		if field.AllEqualToBasis(basis, group) {
			return player
		}
	}

	return 0
}

// placeOnField applies the shared placement checks in their fixed precedence
// order and mutates the board only on a fully valid move.
func placeOnField(field *entity.Field, symbol entity.Symbol, cell entity.Cell, gameOver bool, allowed []entity.Symbol) entity.Feedback {
	if gameOver {
		return entity.FeedbackGameOver
	}

	if !containsSymbol(allowed, symbol) {
		return entity.FeedbackInvalidSymbol
	}

	if !field.IsWithinBounds(cell) {
		return entity.FeedbackOutOfBounds
	}

	if _, occupied := field.SymbolAt(cell); occupied {
		return entity.FeedbackOccupied
	}

	field.PlaceSymbol(symbol, cell)

	return entity.FeedbackValid
}

func containsSymbol(symbols []entity.Symbol, symbol entity.Symbol) bool {
	for _, s := range symbols {
		if s == symbol {
			return true
		}
	}

	return false
}
