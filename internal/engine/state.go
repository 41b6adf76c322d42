package engine

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMove = errors.New("invalid move")

// GameState - one position of a game: the board plus whose turn it is.
// States are immutable values. ApplyMove returns a new state and never
// touches its receiver, so states can be shared between goroutines and
// kept around in search trees without copying discipline on the
// caller's side.
type GameState struct {
	turn  Player
	board board
}

// NewGame - an empty size by size board with first to move. Panics on
// a non-positive size: that is a programming error, not a game state.
func NewGame(first Player, size int) GameState {
	if size < 1 {
		panic(fmt.Sprintf("engine: board size must be positive, got %d", size))
	}

	return GameState{turn: first, board: newBoard(size)}
}

// Size - the board side length.
func (that GameState) Size() int {
	return that.board.size
}

// Turn - the player who moves next.
func (that GameState) Turn() Player {
	return that.turn
}

// PieceAt - the rendering token at (row, col): "X", "O" or "". Panics
// outside the board; display code iterates 0..Size()-1.
func (that GameState) PieceAt(row, col int) string {
	if !that.board.inBounds(row, col) {
		panic(fmt.Sprintf("engine: cell (%d,%d) outside %dx%d board", row, col, that.board.size, that.board.size))
	}

	return that.board.at(row, col).marker()
}

// ApplyMove - the pure transition: places the current player's mark
// and flips the turn. Fails with ErrInvalidMove when the move is out
// of range or the cell is taken. Occupancy is the only validity rule
// here; callers that must not play on decided games check Outcome
// first.
func (that GameState) ApplyMove(move Move) (GameState, error) {
	if !that.board.inBounds(move.Row, move.Col) {
		return that, fmt.Errorf("%w: %s is outside the %dx%d board", ErrInvalidMove, move, that.board.size, that.board.size)
	}

	if that.board.at(move.Row, move.Col) != CellEmpty {
		return that, fmt.Errorf("%w: cell %s is already taken", ErrInvalidMove, move)
	}

	return GameState{
		turn:  that.turn.Opponent(),
		board: that.board.withCell(move.Row, move.Col, cellOf(that.turn)),
	}, nil
}

// LegalMoves - every empty cell in row-major order. The order is part
// of the contract: search tie-breaking is defined against it.
func (that GameState) LegalMoves() []Move {
	moves := make([]Move, 0, len(that.board.cells))

	for row := 0; row < that.board.size; row++ {
		for col := 0; col < that.board.size; col++ {
			if that.board.at(row, col) == CellEmpty {
				moves = append(moves, NewMove(row, col))
			}
		}
	}

	return moves
}

// Outcome - the verdict for the whole position. The first winning line
// in Lines order decides. With no win the game is drawn exactly when
// every line is dead, which can happen while empty cells remain: a
// position with nothing left to play for is a draw already, full board
// or not.
func (that GameState) Outcome() Outcome {
	drawn := 0

	lines := Lines(that.board.size)
	for _, line := range lines {
		switch verdict := CheckLine(that, line); {
		case verdict.IsWin():
			return verdict
		case verdict.IsDraw():
			drawn++
		}
	}

	if drawn == len(lines) {
		return Draw()
	}

	return Undecided()
}

// Equal - structural equality of turn and board contents.
func (that GameState) Equal(other GameState) bool {
	return that.turn == other.turn && that.board.equal(other.board)
}

// String - a compact rendering for logs and test output: rows joined
// by "/", empty cells shown as ".".
func (that GameState) String() string {
	var b strings.Builder

	for row := 0; row < that.board.size; row++ {
		if row > 0 {
			b.WriteByte('/')
		}
		for col := 0; col < that.board.size; col++ {
			if marker := that.board.at(row, col).marker(); marker != MarkerEmpty {
				b.WriteString(marker)
				continue
			}
			b.WriteByte('.')
		}
	}

	return b.String()
}
