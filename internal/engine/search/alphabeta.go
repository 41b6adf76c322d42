package search

import (
	"fmt"
	"math"

	"github.com/gridforge/ntictactoe-backend/internal/engine"
)

// alphaBetaFinder - minimax with alpha-beta pruning. Alpha is the
// score the maximizer has already secured, beta the score the
// minimizer can still hold the game to; a subtree stops as soon as
// beta <= alpha because the side to move earlier would never steer
// into it. Bounds start at the heuristic extremes rather than
// infinities: with a codomain of {-1,0,+1} nothing outside them can
// ever come back. Pruning only skips work, never changes the answer.
type alphaBetaFinder struct{}

// NewAlphaBeta - a BestMoveFinder with alpha-beta pruning.
func NewAlphaBeta() BestMoveFinder {
	return &alphaBetaFinder{}
}

func (that *alphaBetaFinder) FindBestMove(state engine.GameState, h Heuristic, perspective engine.Player) (engine.Move, int, error) {
	if outcome := state.Outcome(); outcome.Decided() {
		return engine.Move{}, 0, fmt.Errorf("%w: %s", ErrFinishedGame, outcome)
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return engine.Move{}, 0, ErrNoAvailableMoves
	}

	maximizing := state.Turn() == perspective
	alpha, beta := LossScore, WinScore

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

		score, err := that.bestScore(next, h, perspective, alpha, beta)
		if err != nil {
			return engine.Move{}, 0, err
		}

		if maximizing {
			if score > bestScore {
				bestScore = score
				bestMove = move
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if score < bestScore {
				bestScore = score
				bestMove = move
			}
			if bestScore < beta {
				beta = bestScore
			}
		}

		if beta <= alpha {
			break
		}
	}

	return bestMove, bestScore, nil
}

func (that *alphaBetaFinder) bestScore(state engine.GameState, h Heuristic, perspective engine.Player, alpha, beta int) (int, error) {
	if state.Outcome().Decided() {
		return h(state, perspective), nil
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0, ErrNoAvailableMoves
	}

	if state.Turn() == perspective {
		best := math.MinInt

		for _, move := range moves {
			next, err := state.ApplyMove(move)
			if err != nil {
				return 0, fmt.Errorf("failed to apply move %s: %w", move, err)
			}

			score, err := that.bestScore(next, h, perspective, alpha, beta)
			if err != nil {
				return 0, err
			}

			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}

		return best, nil
	}

	best := math.MaxInt

	for _, move := range moves {
		next, err := state.ApplyMove(move)
		if err != nil {
			return 0, fmt.Errorf("failed to apply move %s: %w", move, err)
		}

		score, err := that.bestScore(next, h, perspective, alpha, beta)
		if err != nil {
			return 0, err
		}

		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}

	return best, nil
}
