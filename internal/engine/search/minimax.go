package search

import (
	"fmt"
	"math"

	"github.com/gridforge/ntictactoe-backend/internal/engine"
)

// minimaxFinder - exhaustive minimax without pruning. Kept as the
// reference strategy: alpha-beta must agree with it move for move, and
// the equivalence is cheapest to trust when this one stays brutally
// simple.
type minimaxFinder struct{}

// NewMinimax - a BestMoveFinder that searches the full game tree.
func NewMinimax() BestMoveFinder {
	return &minimaxFinder{}
}

func (that *minimaxFinder) FindBestMove(state engine.GameState, h Heuristic, perspective engine.Player) (engine.Move, int, error) {
	if outcome := state.Outcome(); outcome.Decided() {
		return engine.Move{}, 0, fmt.Errorf("%w: %s", ErrFinishedGame, outcome)
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return engine.Move{}, 0, ErrNoAvailableMoves
	}

	maximizing := state.Turn() == perspective

	var bestMove engine.Move
	bestScore := math.MinInt
	if !maximizing {
		bestScore = math.MaxInt
	}

	for _, move := range moves {
		next, err := state.ApplyMove(move)
		if err != nil {
			return engine.Move{}, 0, fmt.Errorf("failed to apply move %s: %w", move, err)
		}

		score, err := that.bestScore(next, h, perspective)
		if err != nil {
			return engine.Move{}, 0, err
		}

		if maximizing && score > bestScore || !maximizing && score < bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove, bestScore, nil
}

// bestScore - the exact game value of state for perspective under
// optimal play by both sides.
func (that *minimaxFinder) bestScore(state engine.GameState, h Heuristic, perspective engine.Player) (int, error) {
	if state.Outcome().Decided() {
		return h(state, perspective), nil
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, ErrNoAvailableMoves
	}

	maximizing := state.Turn() == perspective

	best := math.MinInt
	if !maximizing {
		best = math.MaxInt
	}

	for _, move := range moves {
		next, err := state.ApplyMove(move)
		if err != nil {
			return 0, fmt.Errorf("failed to apply move %s: %w", move, err)
		}

		score, err := that.bestScore(next, h, perspective)
		if err != nil {
			return 0, err
		}

		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}

	return best, nil
}
