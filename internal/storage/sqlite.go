// Package storage keeps a history of backfilled run utilization in a
// local SQLite database, so repeated backfills stay queryable.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rusenback/bench-backfill/internal/stats"
)

// Entry is one recorded utilization snapshot for a run.
type Entry struct {
	ArtifactsDir    string
	RecordedAt      time.Time
	MaxCPUPerc      float64
	MaxMemPerc      float64
	MaxMemUsedBytes float64
}

// Storage wraps the history database.
type Storage struct {
	db *sql.DB
}

// Open opens (or creates) the history database at path.
func Open(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Storage{db: db}, nil
}

// createTables creates the database schema
func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS run_utilization (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		artifacts_dir TEXT NOT NULL,
		recorded_at INTEGER NOT NULL,
		max_cpu_perc REAL,
		max_mem_perc REAL,
		max_mem_used_bytes REAL
	);

	CREATE INDEX IF NOT EXISTS idx_run_time
	ON run_utilization(artifacts_dir, recorded_at);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Record appends one utilization row per run, all in one transaction.
func (s *Storage) Record(runs map[string]stats.Utilization) error {
	if len(runs) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO run_utilization
		(artifacts_dir, recorded_at, max_cpu_perc, max_mem_perc, max_mem_used_bytes)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for dir, u := range runs {
		if _, err := stmt.Exec(dir, now, u.MaxCPUPerc, u.MaxMemPerc, u.MaxMemUsedBytes); err != nil {
			return fmt.Errorf("failed to insert history row: %w", err)
		}
	}
	return tx.Commit()
}

// History returns the recorded entries for one artifacts directory,
// oldest first.
func (s *Storage) History(artifactsDir string) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT artifacts_dir, recorded_at, max_cpu_perc, max_mem_perc, max_mem_used_bytes
		FROM run_utilization
		WHERE artifacts_dir = ?
		ORDER BY recorded_at ASC, id ASC
	`, artifactsDir)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.ArtifactsDir, &ts, &e.MaxCPUPerc, &e.MaxMemPerc, &e.MaxMemUsedBytes); err != nil {
			return nil, err
		}
		e.RecordedAt = time.Unix(ts, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the storage
func (s *Storage) Close() error {
	return s.db.Close()
}
