// Package storage provides SQLite-based persistence for run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-wumpus/internal/wumpus"
)

// DefaultPath is where the run history lives unless overridden.
const DefaultPath = "~/.wumpus/wumpus.db"

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord represents one finished run.
type RunRecord struct {
	ID         int64
	RunID      string
	Preset     string
	BoardSize  int
	Score      int
	TotalScore int
	Won        bool
	Cause      string // "hole", "hazard", "restart", "quit" or "none" for wins
	ShotsFired int
	Moves      int
	CreatedAt  time.Time
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			preset TEXT NOT NULL,
			board_size INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			total_score INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			cause TEXT NOT NULL,
			shots_fired INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_preset ON runs(preset);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(preset, score DESC);
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

// SaveRun records a finished run. Saving the same run ID twice keeps the
// first record. Returns the ID of the inserted record, or 0 if it already existed.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT OR IGNORE INTO runs
		 (run_id, preset, board_size, score, total_score, won, cause, shots_fired, moves)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Preset, r.BoardSize, r.Score, r.TotalScore, r.Won, r.Cause, r.ShotsFired, r.Moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if affected == 0 {
		return 0, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordRun implements wumpus.RunRecorder.
func (s *Store) RecordRun(sum wumpus.RunSummary) error {
	_, err := s.SaveRun(RecordFromSummary(sum))
	return err
}

// Ensure Store implements RunRecorder
var _ wumpus.RunRecorder = (*Store)(nil)

// RecordFromSummary converts a simulation run summary into a storable record.
func RecordFromSummary(sum wumpus.RunSummary) RunRecord {
	return RunRecord{
		RunID:      sum.RunID,
		Preset:     sum.Preset,
		BoardSize:  sum.BoardSize,
		Score:      sum.Score,
		TotalScore: sum.TotalScore,
		Won:        sum.Won,
		Cause:      sum.Cause.String(),
		ShotsFired: sum.ShotsFired,
		Moves:      sum.Moves,
	}
}

const runColumns = `id, run_id, preset, board_size, score, total_score, won, cause, shots_fired, moves, created_at`

// TopRuns retrieves the best N runs for the given preset.
// Wins rank first, then score descending, then fewer moves.
func (s *Store) TopRuns(preset string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE preset = ?
		 ORDER BY won DESC, score DESC, moves ASC, id ASC
		 LIMIT ?`,
		preset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs across all presets.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	return scanRuns(rows)
}

// RunByID retrieves a run by its run ID. Returns nil if it does not exist.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.RunID,
			&r.Preset,
			&r.BoardSize,
			&r.Score,
			&r.TotalScore,
			&r.Won,
			&r.Cause,
			&r.ShotsFired,
			&r.Moves,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetime columns.
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

// BestScore returns the most treasure collected in a single run of the preset.
// Returns 0 if no runs exist.
func (s *Store) BestScore(preset string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE preset = ?",
		preset,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the given preset.
func (s *Store) ClearRuns(preset string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE preset = ?", preset)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// PresetStats contains aggregated statistics for a preset.
type PresetStats struct {
	Preset     string
	RunsCount  int
	Wins       int
	BestScore  int
	AvgScore   float64
	Deaths     int
	LastPlayed time.Time
}

// WinRate returns the fraction of runs that were won.
func (p PresetStats) WinRate() float64 {
	if p.RunsCount == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.RunsCount)
}

// GetPresetStats retrieves aggregated statistics for a specific preset.
func (s *Store) GetPresetStats(preset string) (*PresetStats, error) {
	stats := &PresetStats{Preset: preset}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(CASE WHEN cause IN ('hole', 'hazard') THEN 1 ELSE 0 END), 0)
		 FROM runs WHERE preset = ?`,
		preset,
	).Scan(&stats.RunsCount, &stats.Wins, &stats.BestScore, &stats.AvgScore, &stats.Deaths)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get preset stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE preset = ? ORDER BY id DESC LIMIT 1`,
		preset,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllPresetStats retrieves statistics for every preset that has runs.
func (s *Store) GetAllPresetStats() (map[string]*PresetStats, error) {
	rows, err := s.db.Query(
		`SELECT preset, COUNT(*), SUM(won), MAX(score), AVG(score),
		        SUM(CASE WHEN cause IN ('hole', 'hazard') THEN 1 ELSE 0 END), MAX(created_at)
		 FROM runs
		 GROUP BY preset`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all preset stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PresetStats)
	for rows.Next() {
		var p PresetStats
		var lastPlayed any
		if err := rows.Scan(&p.Preset, &p.RunsCount, &p.Wins, &p.BestScore, &p.AvgScore, &p.Deaths, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		p.LastPlayed = parseTime(lastPlayed)
		stats[p.Preset] = &p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
