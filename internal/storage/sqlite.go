// Package storage keeps high scores in SQLite through the pure-Go
// modernc.org/sqlite driver, so the binary stays CGO-free.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultPlayer is recorded when no player name is known.
const DefaultPlayer = "anonymous"

const (
	timeLayout    = "2006-01-02 15:04:05.000"
	defaultLimit  = 10
	busyTimeoutMs = 5000
)

// migrations[i] moves the schema from user_version i to i+1.
var migrations = []string{
	`CREATE TABLE scores (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id    TEXT    NOT NULL,
		player     TEXT    NOT NULL,
		score      INTEGER NOT NULL CHECK (score >= 0),
		created_at TEXT    NOT NULL
	);
	CREATE INDEX idx_scores_rank ON scores(game_id, score DESC, id);
	CREATE INDEX idx_scores_player ON scores(game_id, player);`,
}

// Store is a score database. It is safe for concurrent use; SSH sessions
// share one Store.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates every recorded game of one game ID.
type GameStats struct {
	GameID     string
	GamesCount int
	Players    int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time // Zero when nothing was recorded
}

// Open opens the database at dbPath, creating it and its directory when
// missing. A leading ~ is expanded to the home directory.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", dbPath, err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", dbPath, busyTimeoutMs)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer at a time; sessions queue on the pool instead of failing
	// with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, rest), nil
}

// migrate applies the migrations the database has not seen yet.
func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return err
	}
	if version > len(migrations) {
		return fmt.Errorf("database schema v%d is newer than this binary (v%d)", version, len(migrations))
	}

	for v := version; v < len(migrations); v++ {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(migrations[v]); err != nil {
			tx.Rollback()
			return fmt.Errorf("v%d: %w", v+1, err)
		}
		// PRAGMA does not take bind parameters.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", v+1)); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore records a finished game and returns its row ID. A blank player
// is stored as DefaultPlayer.
func (s *Store) SaveScore(gameID, player string, score int) (int64, error) {
	if score < 0 {
		return 0, fmt.Errorf("storage: negative score %d", score)
	}
	if player = strings.TrimSpace(player); player == "" {
		player = DefaultPlayer
	}

	res, err := s.db.Exec(
		"INSERT INTO scores (game_id, player, score, created_at) VALUES (?, ?, ?, ?)",
		gameID, player, score, s.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns up to limit entries, best first. Ties go to the game
// recorded first. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, created_at FROM scores
		 WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			created string
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		e.CreatedAt = parseTime(created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read scores: %w", err)
	}
	return entries, nil
}

// HighScore returns the best score of gameID, or 0 when there is none.
func (s *Store) HighScore(gameID string) (int, error) {
	best, _, err := s.maxScore("game_id = ?", gameID)
	return best, err
}

// PlayerBest returns the best score of player and whether the player has
// played at all.
func (s *Store) PlayerBest(gameID, player string) (int, bool, error) {
	return s.maxScore("game_id = ? AND player = ?", gameID, player)
}

func (s *Store) maxScore(where string, args ...any) (int, bool, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE "+where, args...).Scan(&best); err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return int(best.Int64), best.Valid, nil
}

// ClearScores deletes every score of gameID.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetGameStats aggregates the recorded games of gameID.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var last sql.NullString

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.Players, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	if last.Valid {
		stats.LastPlayed = parseTime(last.String)
	}
	return stats, nil
}

func parseTime(s string) time.Time {
	t, err := time.ParseInLocation(timeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}
