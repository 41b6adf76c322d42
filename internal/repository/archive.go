package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gridforge/ntictactoe-backend/internal/entity"
)

type ArchiveRepository interface {
	Save(ctx context.Context, game *entity.ArchivedGame) error
	ListRecent(ctx context.Context, limit int) ([]entity.ArchivedGame, error)
	CountByWinner(ctx context.Context) (map[string]int, error)
}

type archiveRepository struct {
	conn *sql.DB
}

func NewArchiveRepository(conn *sql.DB) ArchiveRepository {
	return &archiveRepository{
		conn: conn,
	}
}

func (that *archiveRepository) Save(ctx context.Context, game *entity.ArchivedGame) error {
	query := `INSERT INTO archive (id, size, type, winner, moves, finished_at) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		game.ID, game.Size, game.Type, game.Winner, game.Moves, game.FinishedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("can't save archived game: %w", err)
	}

	return nil
}

func (that *archiveRepository) ListRecent(ctx context.Context, limit int) ([]entity.ArchivedGame, error) {
	query := `SELECT id, size, type, winner, moves, finished_at FROM archive ORDER BY finished_at DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list archived games: %w", err)
	}
	defer rows.Close()

	var games []entity.ArchivedGame

	for rows.Next() {
		var game entity.ArchivedGame
		var finishedAt string

		if err = rows.Scan(&game.ID, &game.Size, &game.Type, &game.Winner, &game.Moves, &finishedAt); err != nil {
			return nil, fmt.Errorf("can't scan archived game: %w", err)
		}

		game.FinishedAt, err = time.Parse(time.RFC3339, finishedAt)
		if err != nil {
			return nil, fmt.Errorf("can't parse finished time: %w", err)
		}

		games = append(games, game)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read archived games: %w", err)
	}

	return games, nil
}

func (that *archiveRepository) CountByWinner(ctx context.Context) (map[string]int, error) {
	query := `SELECT winner, COUNT(*) FROM archive GROUP BY winner`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't count archived games: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)

	for rows.Next() {
		var winner string
		var total int

		if err = rows.Scan(&winner, &total); err != nil {
			return nil, fmt.Errorf("can't scan winner count: %w", err)
		}

		counts[winner] = total
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read winner counts: %w", err)
	}

	return counts, nil
}
