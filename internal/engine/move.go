package engine

import "fmt"

// Move - a pair of zero-based board coordinates. Moves are plain
// values: building one never validates it, ApplyMove judges it against
// a concrete state.
type Move struct {
	Row int
	Col int
}

// NewMove - builds the move for the given row and column.
func NewMove(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}
