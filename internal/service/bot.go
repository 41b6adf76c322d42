package service

import (
	"errors"
	"fmt"

	"github.com/gridforge/ntictactoe-backend/internal/engine"
	"github.com/gridforge/ntictactoe-backend/internal/engine/search"
	"github.com/gridforge/ntictactoe-backend/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	finder search.BestMoveFinder
}

// NewBotService - a bot that picks its moves with the injected search
// strategy. The strategy is chosen once at wiring time; the bot itself
// has no opinion about how its moves are found.
func NewBotService(finder search.BestMoveFinder) BotService {
	return &botService{finder: finder}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	state, err := game.State()
	if err != nil {
		return fmt.Errorf("failed to rebuild position: %w", err)
	}

	if state.Outcome().Decided() {
		return ErrNoAvailableMoves
	}

	perspective, err := engine.ParsePlayer(botPlayer.Mark)
	if err != nil {
		return fmt.Errorf("bot has no usable mark: %w", err)
	}

	move, _, err := that.finder.FindBestMove(state, search.WinLoss, perspective)
	if err != nil {
		return fmt.Errorf("failed to find best move: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, move.Row*game.Size+move.Col); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
