// internal/history/journal.go
//
// Append-only journal of games and accepted moves.
// The journal is audit data: it feeds the leaderboard but is never read back to
// rebuild in-memory games.

package history

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robalobadob/wordgrid/internal/game"
)

// Journal records game activity.
type Journal interface {
	RecordGame(ctx context.Context, gameID int, board []string) error
	RecordDictionary(ctx context.Context, gameID int, size int) error
	RecordMove(ctx context.Context, gameID, moveID int, m game.Move) error
	Leaderboard(ctx context.Context, limit int) ([]LBRow, error)
	Close() error
}

// LBRow is one leaderboard entry.
type LBRow struct {
	RunID  string `json:"runId"`
	GameID int    `json:"gameId"`
	Moves  int    `json:"moves"`
	Points int    `json:"points"`
}

const (
	defaultLeaderboardLimit = 20
	maxLeaderboardLimit     = 100
)

// clampLimit maps a requested row count into 1..100; zero or negative means 20.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLeaderboardLimit
	}
	return min(limit, maxLeaderboardLimit)
}

// SQLite is a Journal backed by a SQLite file.
type SQLite struct {
	db    *sql.DB
	runID string
}

// Open opens dsn, applies migrations and registers a new run.
func Open(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db, migrationsFS); err != nil {
		_ = db.Close()
		return nil, err
	}
	j := &SQLite{db: db, runID: genID()}
	if _, err := db.ExecContext(ctx, `INSERT INTO runs (id, started_at) VALUES (?,?)`, j.runID, now()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return j, nil
}

// RunID identifies this process in the journal.
func (j *SQLite) RunID() string { return j.runID }

func (j *SQLite) RecordGame(ctx context.Context, gameID int, board []string) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO games (run_id, game_id, board, created_at) VALUES (?,?,?,?)`,
		j.runID, gameID, strings.Join(board, ""), now())
	return err
}

func (j *SQLite) RecordDictionary(ctx context.Context, gameID int, size int) error {
	_, err := j.db.ExecContext(ctx,
		`UPDATE games SET dictionary_size=? WHERE run_id=? AND game_id=?`,
		size, j.runID, gameID)
	return err
}

func (j *SQLite) RecordMove(ctx context.Context, gameID, moveID int, m game.Move) error {
	_, err := j.db.ExecContext(ctx, `
        INSERT INTO moves (run_id, game_id, move_id, word, tiles, points, created_at)
        VALUES (?,?,?,?,?,?,?)`,
		j.runID, gameID, moveID, m.Word, joinTiles(m.Tiles), m.Points, now())
	return err
}

// Leaderboard returns games across all runs ordered by total points, then age.
// Default limit is 20 if not specified; at most 100 rows are returned.
func (j *SQLite) Leaderboard(ctx context.Context, limit int) ([]LBRow, error) {
	limit = clampLimit(limit)
	rows, err := j.db.QueryContext(ctx, `
        SELECT g.run_id, g.game_id, COUNT(m.move_id), COALESCE(SUM(m.points), 0) AS pts
        FROM games g
        LEFT JOIN moves m ON m.run_id = g.run_id AND m.game_id = g.game_id
        GROUP BY g.run_id, g.game_id
        ORDER BY pts DESC, g.created_at ASC, g.game_id ASC
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []LBRow{}
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.RunID, &r.GameID, &r.Moves, &r.Points); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (j *SQLite) Close() error { return j.db.Close() }

// Nop discards everything. Used when no database is configured.
type Nop struct{}

func (Nop) RecordGame(context.Context, int, []string) error       { return nil }
func (Nop) RecordDictionary(context.Context, int, int) error      { return nil }
func (Nop) RecordMove(context.Context, int, int, game.Move) error { return nil }
func (Nop) Leaderboard(context.Context, int) ([]LBRow, error)     { return []LBRow{}, nil }
func (Nop) Close() error                                          { return nil }

func joinTiles(tiles []int) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, ",")
}

// timeLayout keeps a fixed width so timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func now() string { return time.Now().UTC().Format(timeLayout) }

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
