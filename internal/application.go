package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gridforge/ntictactoe-backend/internal/config"
	"github.com/gridforge/ntictactoe-backend/internal/engine/search"
	"github.com/gridforge/ntictactoe-backend/internal/repository"
	"github.com/gridforge/ntictactoe-backend/internal/repository/storage"
	"github.com/gridforge/ntictactoe-backend/internal/service"
	"github.com/gridforge/ntictactoe-backend/internal/usecase"
	"github.com/gridforge/ntictactoe-backend/transport/rest"
	"github.com/gridforge/ntictactoe-backend/transport/websocket"
)

var (
	ErrAddrNotFound      = errors.New("redis address string is empty")
	ErrBoardSizeTooSmall = errors.New("board size must be at least 3")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	if conf.Game.BoardSize < 3 {
		return fmt.Errorf("%w: got %d", ErrBoardSizeTooSmall, conf.Game.BoardSize)
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	playerRepo := repository.NewPlayerRepository(redisStorage.Connection)
	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	archiveRepo := repository.NewArchiveRepository(sqliteStorage.Connection)

	playerService := service.NewPlayerService(playerRepo)
	gameService := service.NewGameService(gameRepo, archiveRepo, conf.Game.BoardSize)
	botService := service.NewBotService(newBotFinder(conf.Game.BotStrategy))
	gamePlayService := service.NewGamePlayService(logger, playerService, gameService, botService)
	gameUseCase := usecase.NewGameUseCase(playerService, gameService, gamePlayService)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, gameService)
		if httpErr := restServer.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newBotFinder - picks the search strategy the bot plays with.
func newBotFinder(strategy string) search.BestMoveFinder {
	if strategy == "minimax" {
		return search.NewMinimax()
	}

	return search.NewAlphaBeta()
}
