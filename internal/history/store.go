// Package history persists a journal of past batch runs. It is optional:
// conversion itself needs no state, and the journal is only written when a
// database path is configured.
package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ashdale/stl2obj/internal/convert"
)

//go:embed schema.sql
var schemaSQL string

// Run is one journaled batch run.
type Run struct {
	ID         int64
	StartedAt  time.Time
	FinishedAt time.Time
	State      string
	Total      int
	Succeeded  int
	Failed     int
	Cancelled  int
}

// Item is one journaled per-file result.
type Item struct {
	RunID       int64
	Position    int
	SourcePath  string
	OutputPath  string
	Status      string
	Stage       string
	Message     string
	VertexCount int
	FaceCount   int
}

// Open opens (creating if needed) the journal database at path and applies
// the schema. The caller owns the returned handle.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// Store provides access to the run journal.
type Store struct {
	db *sql.DB
}

// NewStore creates a new journal store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// RecordRun writes a finished batch run and all its results in one
// transaction. Returns the journal run ID.
func (s *Store) RecordRun(run *convert.BatchRun, startedAt, finishedAt time.Time) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	succeeded, failed, cancelled := run.Counts()
	res, err := tx.Exec(`
		INSERT INTO runs (started_at, finished_at, state, total, succeeded, failed, cancelled)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		startedAt, finishedAt, string(run.State), len(run.Items), succeeded, failed, cancelled,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	for i, r := range run.Results {
		_, err := tx.Exec(`
			INSERT INTO run_items (run_id, position, source_path, output_path, status, stage, message, vertex_count, face_count)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, i+1, r.SourcePath, r.OutputPath, string(r.Status), r.Stage, r.Message, r.VertexCount, r.FaceCount,
		)
		if err != nil {
			return 0, fmt.Errorf("insert item %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, started_at, finished_at, state, total, succeeded, failed, cancelled
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.State,
			&r.Total, &r.Succeeded, &r.Failed, &r.Cancelled); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// ListItems returns the per-file results of one run in conversion order.
func (s *Store) ListItems(runID int64) ([]Item, error) {
	rows, err := s.db.Query(`
		SELECT run_id, position, source_path, output_path, status, stage, message, vertex_count, face_count
		FROM run_items WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.RunID, &it.Position, &it.SourcePath, &it.OutputPath,
			&it.Status, &it.Stage, &it.Message, &it.VertexCount, &it.FaceCount); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
