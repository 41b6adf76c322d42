package engine

// Cell - the content of one board square.
type Cell int

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

func cellOf(player Player) Cell {
	if player == PlayerX {
		return CellX
	}

	return CellO
}

func (that Cell) marker() string {
	switch that {
	case CellX:
		return MarkerX
	case CellO:
		return MarkerO
	default:
		return MarkerEmpty
	}
}

// board - a size by size grid stored as a flat row-major slice.
// Boards are copied on every write, so a published value never changes.
type board struct {
	size  int
	cells []Cell
}

func newBoard(size int) board {
	return board{size: size, cells: make([]Cell, size*size)}
}

func (that board) index(row, col int) int {
	return row*that.size + col
}

func (that board) at(row, col int) Cell {
	return that.cells[that.index(row, col)]
}

func (that board) inBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// withCell - returns a copy of the board with a single cell replaced.
func (that board) withCell(row, col int, cell Cell) board {
	cells := make([]Cell, len(that.cells))
	copy(cells, that.cells)
	cells[that.index(row, col)] = cell

	return board{size: that.size, cells: cells}
}

func (that board) equal(other board) bool {
	if that.size != other.size {
		return false
	}

	for i := range that.cells {
		if that.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}
