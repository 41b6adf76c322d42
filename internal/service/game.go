package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gridforge/ntictactoe-backend/internal/apperror"
	"github.com/gridforge/ntictactoe-backend/internal/entity"
	"github.com/gridforge/ntictactoe-backend/internal/pkg"
	"github.com/gridforge/ntictactoe-backend/internal/repository"
)

// maxBotBoardSize - the largest board the finders exhaust at play
// speed; a bot seated on anything bigger never finishes its first turn.
const maxBotBoardSize = 3

type GameService interface {
	CreateGame(ctx context.Context, player *entity.Player, gameType string) (*entity.Game, *entity.Player, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error
	ArchiveGame(ctx context.Context, game *entity.Game) error

	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	GetPublicGameByID(ctx context.Context) (*entity.Game, error)

	RecentGames(ctx context.Context, limit int) ([]entity.ArchivedGame, error)
	WinnerCounts(ctx context.Context) (map[string]int, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error

	GetByID(ctx context.Context, id string) (*entity.Game, error)
	GetWaitingPublicGame(ctx context.Context) (*entity.Game, error)

	DeleteByID(ctx context.Context, id string) error
}

type archiveRepo interface {
	Save(ctx context.Context, game *entity.ArchivedGame) error
	ListRecent(ctx context.Context, limit int) ([]entity.ArchivedGame, error)
	CountByWinner(ctx context.Context) (map[string]int, error)
}

type gameService struct {
	gameRepo    gameRepo
	archiveRepo archiveRepo

	boardSize int
}

func NewGameService(gameRepo gameRepo, archiveRepo archiveRepo, boardSize int) GameService {
	return &gameService{
		gameRepo:    gameRepo,
		archiveRepo: archiveRepo,

		boardSize: boardSize,
	}
}

func (that *gameService) CreateGame(ctx context.Context, player *entity.Player, gameType string) (*entity.Game, *entity.Player, error) {
	if gameType == entity.WithBotType && that.boardSize > maxBotBoardSize {
		return nil, nil, apperror.ErrBoardTooBigForBot
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID, gameType, that.boardSize)

	player.GameID = gameID
	player.Mark = entity.PlayerX

	game.Players = []*entity.Player{player}
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("failed to create game from storage: %w", err)
	}

	return game, player, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) GetPublicGameByID(ctx context.Context) (*entity.Game, error) {
	game, err := that.gameRepo.GetWaitingPublicGame(ctx)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, apperror.ErrNoActiveGames
	}

	if err != nil {
		return nil, fmt.Errorf("failed to retrieve active public game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) UpdateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *gameService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// ArchiveGame - flattens a finished game and stores it for the stats endpoint.
func (that *gameService) ArchiveGame(ctx context.Context, game *entity.Game) error {
	archived := &entity.ArchivedGame{
		ID:         game.ID,
		Size:       game.Size,
		Type:       game.Type,
		Winner:     game.Winner,
		Moves:      game.MovesPlayed(),
		FinishedAt: time.Now().UTC(),
	}

	if err := that.archiveRepo.Save(ctx, archived); err != nil {
		return fmt.Errorf("failed to archive game: %w", err)
	}

	return nil
}

func (that *gameService) RecentGames(ctx context.Context, limit int) ([]entity.ArchivedGame, error) {
	games, err := that.archiveRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent games: %w", err)
	}

	return games, nil
}

func (that *gameService) WinnerCounts(ctx context.Context) (map[string]int, error) {
	counts, err := that.archiveRepo.CountByWinner(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count winners: %w", err)
	}

	return counts, nil
}
