// Package storage provides SQLite-based persistence for the run journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run is one recorded simulation: enough to rerun it and to check that the
// rerun produced the same trace.
type Run struct {
	ID             string // UUID, assigned by SaveRun when empty
	LevelID        string
	Pattern        string // Preset name or "custom"
	Seed           uint64
	Palette        int
	Prediction     string // "x,y;x,y", empty when no prediction was made
	Swaps          string // "x,y:x,y;..." applied before simulating
	Steps          int
	ClearedRows    int
	Extraneous     int // Number of petrified predictions
	Score          int
	SwapsGranted   int
	FurtherMatches bool
	Digest         string // Hash of the exported trace
	CreatedAt      time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID     string
	RunsCount   int
	MaxSteps    int
	AvgSteps    float64
	BestScore   int
	PerfectRuns int // Predicted runs with no extraneous prediction
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			level_id TEXT NOT NULL,
			pattern TEXT NOT NULL,
			seed INTEGER NOT NULL,
			palette INTEGER NOT NULL,
			prediction TEXT NOT NULL DEFAULT '',
			swaps TEXT NOT NULL DEFAULT '',
			steps INTEGER NOT NULL,
			cleared_rows INTEGER NOT NULL,
			extraneous INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL,
			swaps_granted INTEGER NOT NULL DEFAULT 0,
			further_matches INTEGER NOT NULL DEFAULT 0,
			digest TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
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

// SaveRun records a run and returns its ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, level_id, pattern, seed, palette, prediction, swaps, steps, cleared_rows,
		  extraneous, score, swaps_granted, further_matches, digest)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.LevelID,
		run.Pattern,
		int64(run.Seed), // SQLite integers are signed; the bits round-trip
		run.Palette,
		run.Prediction,
		run.Swaps,
		run.Steps,
		run.ClearedRows,
		run.Extraneous,
		run.Score,
		run.SwapsGranted,
		run.FurtherMatches,
		run.Digest,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.ID, nil
}

const runColumns = `id, level_id, pattern, seed, palette, prediction, swaps, steps, cleared_rows,
		        extraneous, score, swaps_granted, further_matches, digest, created_at`

// RunByID retrieves a run by its ID. A short unique prefix is accepted.
// Returns nil if no run matches.
func (s *Store) RunByID(id string) (*Run, error) {
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE id = ? OR id LIKE ? || '%'
		 ORDER BY seq
		 LIMIT 2`,
		id, id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := collectRuns(rows)
	if err != nil {
		return nil, err
	}

	for _, r := range runs {
		if r.ID == id {
			return &r, nil
		}
	}
	switch len(runs) {
	case 0:
		return nil, nil
	case 1:
		return &runs[0], nil
	default:
		return nil, fmt.Errorf("storage: run id prefix %q is ambiguous", id)
	}
}

// RecentRuns retrieves the most recent runs across all levels.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return collectRuns(rows)
}

// RunsForLevel retrieves the most recent runs of one level.
func (s *Store) RunsForLevel(levelID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE level_id = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return collectRuns(rows)
}

// ClearRuns deletes all runs for the given level, or every run when levelID
// is empty. Returns the number of deleted runs.
func (s *Store) ClearRuns(levelID string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if levelID == "" {
		res, err = s.db.Exec("DELETE FROM runs")
	} else {
		res, err = s.db.Exec("DELETE FROM runs WHERE level_id = ?", levelID)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted runs: %w", err)
	}
	return n, nil
}

// LevelStats retrieves aggregated statistics for a specific level.
func (s *Store) LevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(steps), 0), COALESCE(AVG(steps), 0), COALESCE(MAX(score), 0),
		        COALESCE(SUM(CASE WHEN prediction != '' AND extraneous = 0 THEN 1 ELSE 0 END), 0)
		 FROM runs WHERE level_id = ?`,
		levelID,
	).Scan(&stats.RunsCount, &stats.MaxSteps, &stats.AvgSteps, &stats.BestScore, &stats.PerfectRuns)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE level_id = ? ORDER BY seq DESC LIMIT 1`,
		levelID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// collectRuns scans and closes a result set of runColumns rows.
func collectRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var seed int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.LevelID,
			&r.Pattern,
			&seed,
			&r.Palette,
			&r.Prediction,
			&r.Swaps,
			&r.Steps,
			&r.ClearedRows,
			&r.Extraneous,
			&r.Score,
			&r.SwapsGranted,
			&r.FurtherMatches,
			&r.Digest,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Seed = uint64(seed)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
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
