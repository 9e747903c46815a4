package entity

// Field is the square board a match is played on. It only stores occupied
// cells; legality of a placement is decided by the rules layer.
type Field struct {
	size  int
	cells map[Cell]Symbol
}

func NewField(size int) *Field {
	return &Field{
		size:  size,
		cells: make(map[Cell]Symbol),
	}
}

func (that *Field) Size() int {
	return that.size
}

// ValidCoords returns the ordered coordinate range 1..size, shared by both axes.
func (that *Field) ValidCoords() []int {
	coords := make([]int, that.size)
	for i := range coords {
		coords[i] = i + 1
	}

	return coords
}

func (that *Field) IsWithinBounds(cell Cell) bool {
	return cell.Row >= 1 && cell.Row <= that.size &&
		cell.Col >= 1 && cell.Col <= that.size
}

// SymbolAt reports the symbol occupying cell, if any.
func (that *Field) SymbolAt(cell Cell) (Symbol, bool) {
	symbol, ok := that.cells[cell]
	return symbol, ok
}

// PlaceSymbol writes symbol into cell. Callers are expected to have checked
// bounds and occupancy first; an occupied cell is never overwritten.
func (that *Field) PlaceSymbol(symbol Symbol, cell Cell) {
	if _, ok := that.cells[cell]; ok {
		return
	}

	that.cells[cell] = symbol
}

// OccupiedCells returns a snapshot copy of the board contents.
func (that *Field) OccupiedCells() map[Cell]Symbol {
	occupied := make(map[Cell]Symbol, len(that.cells))
	for cell, symbol := range that.cells {
		occupied[cell] = symbol
	}

	return occupied
}

func (that *Field) HasUnoccupiedCell() bool {
	return len(that.cells) < that.size*that.size
}

// AllEqualToBasis reports whether every cell in group is occupied by a symbol
// equal to basis.
func (that *Field) AllEqualToBasis(basis Symbol, group []Cell) bool {
	for _, cell := range group {
		symbol, ok := that.cells[cell]
		if !ok || symbol != basis {
			return false
		}
	}

	return true
}
