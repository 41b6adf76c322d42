package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gridforge/ntictactoe-backend/internal/entity"
)

const (
	defaultStatsLimit = 10
	maxStatsLimit     = 100
)

type statsResponse struct {
	Games   []entity.ArchivedGame `json:"games"`
	Winners map[string]int        `json:"winners"`
}

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write ping response", "error", err)
	}
}

// handleStats - reports recently archived games and win totals per mark.
func (that *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleStats")

	limit := defaultStatsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "limit must be a positive number", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	if limit > maxStatsLimit {
		limit = maxStatsLimit
	}

	games, err := that.stats.RecentGames(r.Context(), limit)
	if err != nil {
		log.Error("failed to list recent games", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	winners, err := that.stats.WinnerCounts(r.Context())
	if err != nil {
		log.Error("failed to count winners", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(statsResponse{Games: games, Winners: winners}); err != nil {
		log.Error("failed to encode stats response", "error", err)
	}
}
