package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gridforge/ntictactoe-backend/internal/entity"
)

type statsProvider interface {
	RecentGames(ctx context.Context, limit int) ([]entity.ArchivedGame, error)
	WinnerCounts(ctx context.Context) (map[string]int, error)
}

type Server struct {
	logger *slog.Logger
	stats  statsProvider
}

func New(logger *slog.Logger, stats statsProvider) *Server {
	return &Server{
		logger: logger,
		stats:  stats,
	}
}

// Start - starts the HTTP server.
func (that *Server) Start(port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", that.handlePing)
	mux.HandleFunc("/stats", that.handleStats)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
