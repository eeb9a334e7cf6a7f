package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL statements to run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS visitors (
		position   INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL CHECK (first_name <> ''),
		last_name  TEXT NOT NULL CHECK (last_name <> ''),
		email      TEXT NOT NULL CHECK (email <> ''),
		company    TEXT NOT NULL CHECK (company <> ''),
		purpose    TEXT NOT NULL CHECK (purpose <> '')
	)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
