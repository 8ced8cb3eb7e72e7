package db

import "fmt"

// migrate runs database migrations.
func (s *Store) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS state (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS history (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			stack    TEXT NOT NULL CHECK(stack IN ('past', 'future')),
			position INTEGER NOT NULL,
			snapshot TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_history_stack ON history(stack, position);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
