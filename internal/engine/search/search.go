// Package search finds optimal moves for engine positions by
// exhaustive game-tree search. Two interchangeable strategies are
// provided: plain minimax and minimax with alpha-beta pruning. They
// are guaranteed to agree move for move, so callers pick purely on
// speed.
package search

import (
	"errors"

	"github.com/gridforge/ntictactoe-backend/internal/engine"
)

var (
	// ErrFinishedGame - a move was requested for a game that is
	// already decided.
	ErrFinishedGame = errors.New("game is already decided")

	// ErrNoAvailableMoves - an undecided position had no legal moves.
	// The outcome rules make this unreachable; failing loudly beats
	// returning a made-up move.
	ErrNoAvailableMoves = errors.New("no legal moves in undecided position")
)

// Scores returned by WinLoss. Alpha-beta starts its bounds at these
// extremes, so a custom Heuristic must keep its codomain inside them.
const (
	WinScore  = 1
	DrawScore = 0
	LossScore = -1
)

// Heuristic - scores a DECIDED position from one player's point of
// view. Search invokes it on terminal positions only; evaluating an
// open position is a contract violation.
type Heuristic func(state engine.GameState, perspective engine.Player) int

// WinLoss - the canonical heuristic: +1 when perspective won, -1 when
// the opponent won, 0 for a draw. Panics on an undecided position.
func WinLoss(state engine.GameState, perspective engine.Player) int {
	outcome := state.Outcome()

	switch {
	case outcome.IsWin() && outcome.Winner == perspective:
		return WinScore
	case outcome.IsWin():
		return LossScore
	case outcome.IsDraw():
		return DrawScore
	default:
		panic("search: heuristic invoked on an undecided position")
	}
}

// BestMoveFinder - a search strategy. Implementations explore the full
// tree below state: on perspective's turns the score is maximized, on
// the opponent's turns minimized, and the heuristic judges terminal
// positions. Ties break on the first best move in LegalMoves order;
// every implementation returns the exact same (move, score) pair for
// the same input. Finders are stateless and safe for concurrent use.
type BestMoveFinder interface {
	FindBestMove(state engine.GameState, h Heuristic, perspective engine.Player) (engine.Move, int, error)
}
