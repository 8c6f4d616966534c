package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/core"
)

// Store manages the SQLite database holding high scores and match history.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// MatchRecord is the outcome of one finished round.
type MatchRecord struct {
	ID        int64
	RoundID   string
	Score1    int
	Score2    int
	Winner    core.PlayerID // NoPlayer on a draw
	Layout    int           // Layout the round ended on
	Ticks     int
	Seed      int64
	CreatedAt time.Time
}

// BestScore returns the higher of the two scores.
func (m MatchRecord) BestScore() int {
	return max(m.Score1, m.Score2)
}

// MatchStats aggregates the match history.
type MatchStats struct {
	Matches    int
	Wins       [2]int // Indexed by PlayerID.Index()
	Draws      int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string, opts ...Option) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	o := buildOptions(opts)
	store := &Store{db: db, logger: o.logger}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			rank INTEGER PRIMARY KEY,
			score INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			winner INTEGER NOT NULL DEFAULT 0,
			layout INTEGER NOT NULL DEFAULT 1,
			ticks INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ReadHighScores returns the stored table, which may be shorter than
// MaxHighScores.
func (s *Store) ReadHighScores() ([]int, error) {
	rows, err := s.db.Query(`SELECT score FROM high_scores ORDER BY score DESC LIMIT ?`, MaxHighScores)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		scores = append(scores, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return scores, nil
}

// LoadHighScores returns the stored table, or five zeros when it is empty
// or unreadable.
func (s *Store) LoadHighScores() []int {
	scores, err := s.ReadHighScores()
	if err != nil {
		s.logger.Warn("high scores unreadable, starting fresh", "err", err)
		return DefaultHighScores()
	}
	if len(scores) == 0 {
		return DefaultHighScores()
	}
	return scores
}

// SaveHighScores replaces the stored table with the normalized scores.
func (s *Store) SaveHighScores(scores []int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(`DELETE FROM high_scores`); err != nil {
		return fmt.Errorf("storage: cannot clear high scores: %w", err)
	}
	for i, v := range NormalizeHighScores(scores) {
		if _, err := tx.Exec(`INSERT INTO high_scores (rank, score) VALUES (?, ?)`, i+1, v); err != nil {
			return fmt.Errorf("storage: cannot save high score: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit high scores: %w", err)
	}
	return nil
}

// RecordMatch stores the outcome of a finished round.
func (s *Store) RecordMatch(m MatchRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO matches (round_id, score1, score2, winner, layout, ticks, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.RoundID, m.Score1, m.Score2, int(m.Winner), m.Layout, m.Ticks, m.Seed,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save match: %w", err)
	}
	return nil
}

const matchColumns = `id, round_id, score1, score2, winner, layout, ticks, seed, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchRecord, error) {
	var m MatchRecord
	var winner int
	var createdAt any
	if err := row.Scan(&m.ID, &m.RoundID, &m.Score1, &m.Score2, &winner, &m.Layout, &m.Ticks, &m.Seed, &createdAt); err != nil {
		return MatchRecord{}, err
	}
	m.Winner = core.PlayerID(winner)
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// MatchByRoundID retrieves a match by its round ID.
// Returns nil without error when there is no such match.
func (s *Store) MatchByRoundID(roundID string) (*MatchRecord, error) {
	row := s.db.QueryRow(`SELECT `+matchColumns+` FROM matches WHERE round_id = ?`, roundID)
	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+` FROM matches ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// Stats aggregates the whole match history.
func (s *Store) Stats() (*MatchStats, error) {
	stats := &MatchStats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = 1), 0),
		        COALESCE(SUM(winner = 2), 0),
		        COALESCE(SUM(winner = 0), 0),
		        COALESCE(MAX(MAX(score1, score2)), 0),
		        COALESCE(AVG(MAX(score1, score2)), 0),
		        MAX(created_at)
		 FROM matches`,
	).Scan(&stats.Matches, &stats.Wins[0], &stats.Wins[1], &stats.Draws, &stats.BestScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get match stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}
