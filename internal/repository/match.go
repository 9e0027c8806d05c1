package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/boardnet/internal/entity"
)

const defaultMatchLimit = 20

type MatchRepository interface {
	Save(ctx context.Context, match *entity.Match) error
	List(ctx context.Context, limit int) ([]*entity.Match, error)
}

type matchRepository struct {
	conn *sql.DB
}

func NewMatchRepository(conn *sql.DB) MatchRepository {
	return &matchRepository{
		conn: conn,
	}
}

func (that *matchRepository) Save(ctx context.Context, match *entity.Match) error {
	query := `INSERT INTO matches (game_id, kind, winner, board, moves, finished_at) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		match.GameID,
		match.Kind,
		match.Winner,
		match.Board,
		match.Moves,
		match.FinishedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("can't save match: %w", err)
	}

	return nil
}

// List - most recent matches first. A non-positive limit falls back to the default.
func (that *matchRepository) List(ctx context.Context, limit int) ([]*entity.Match, error) {
	if limit <= 0 {
		limit = defaultMatchLimit
	}

	query := `SELECT game_id, kind, winner, board, moves, finished_at FROM matches ORDER BY finished_at DESC, id DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*entity.Match, 0, limit)
	for rows.Next() {
		var (
			match      entity.Match
			finishedAt int64
		)

		if err = rows.Scan(&match.GameID, &match.Kind, &match.Winner, &match.Board, &match.Moves, &finishedAt); err != nil {
			return nil, fmt.Errorf("can't scan match: %w", err)
		}

		match.FinishedAt = time.UnixMilli(finishedAt).UTC()
		matches = append(matches, &match)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read matches: %w", err)
	}

	return matches, nil
}
