// Package db persists the schedule and its undo history in SQLite so
// edits survive across invocations.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"showflow/internal/schedule"
)

// Store is the SQLite-backed schedule store.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at path and runs migrations.
// The parent directory is created if it does not exist yet.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// LoadSchedule returns the stored segment list, or nil if none has
// been saved yet.
func (s *Store) LoadSchedule(ctx context.Context) ([]schedule.Segment, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM state WHERE key = ?`, schedule.StorageKey,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying schedule: %w", err)
	}

	var list []schedule.Segment
	if err := json.Unmarshal([]byte(value), &list); err != nil {
		return nil, fmt.Errorf("decoding schedule: %w", err)
	}
	return list, nil
}

// SaveSchedule stores the segment list, replacing any previous state.
func (s *Store) SaveSchedule(ctx context.Context, list []schedule.Segment) error {
	return s.saveSchedule(ctx, s.db, list)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) saveSchedule(ctx context.Context, ex execer, list []schedule.Segment) error {
	value, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}

	query := `
		INSERT INTO state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := ex.ExecContext(ctx, query,
		schedule.StorageKey, string(value), time.Now().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("saving schedule: %w", err)
	}
	return nil
}

// LoadHistory returns the stored undo and redo stacks, oldest first.
func (s *Store) LoadHistory(ctx context.Context) (past, future [][]schedule.Segment, err error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT stack, snapshot FROM history ORDER BY stack, position`)
	if err != nil {
		return nil, nil, fmt.Errorf("querying history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			stack    string
			snapshot string
		)
		if err := rows.Scan(&stack, &snapshot); err != nil {
			return nil, nil, fmt.Errorf("scanning history row: %w", err)
		}

		var list []schedule.Segment
		if err := json.Unmarshal([]byte(snapshot), &list); err != nil {
			return nil, nil, fmt.Errorf("decoding snapshot: %w", err)
		}

		switch stack {
		case "past":
			past = append(past, list)
		case "future":
			future = append(future, list)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating history: %w", err)
	}

	return past, future, nil
}

// SaveState stores the schedule and both history stacks in a single
// transaction, so a crash never leaves the schedule and its history
// disagreeing.
func (s *Store) SaveState(ctx context.Context, list []schedule.Segment, past, future [][]schedule.Segment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.saveSchedule(ctx, tx, list); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO history (stack, position, snapshot) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	insert := func(stack string, snapshots [][]schedule.Segment) error {
		for i, snap := range snapshots {
			value, err := json.Marshal(snap)
			if err != nil {
				return fmt.Errorf("encoding snapshot: %w", err)
			}
			if _, err := stmt.ExecContext(ctx, stack, i, string(value)); err != nil {
				return fmt.Errorf("inserting %s snapshot %d: %w", stack, i, err)
			}
		}
		return nil
	}
	if err := insert("past", past); err != nil {
		return err
	}
	if err := insert("future", future); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Reset deletes the stored schedule and all history.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, schedule.StorageKey); err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("deleting history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Close releases database resources.
func (s *Store) Close() error {
	return s.db.Close()
}
