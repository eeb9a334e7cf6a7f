package store

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/evcraddock/visitor-register/internal/visitor"
)

// SQLite stores the record set in the visitors table. Row order is kept
// in the position column.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates a store over a database opened with db.Open.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Load returns all visitors ordered by position. Query failures yield an
// empty set and are reported through slog.
func (s *SQLite) Load() visitor.RecordSet {
	records, err := s.list()
	if err != nil {
		slog.Warn("visitors table unreadable, treating as empty", "error", err)
		return visitor.RecordSet{}
	}
	return records
}

func (s *SQLite) list() (records visitor.RecordSet, err error) {
	rows, err := s.db.Query(
		"SELECT first_name, last_name, email, company, purpose FROM visitors ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("listing visitors: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	records = visitor.RecordSet{}
	for rows.Next() {
		var r visitor.Record
		if err := rows.Scan(&r.FirstName, &r.LastName, &r.Email, &r.Company, &r.Purpose); err != nil {
			return nil, fmt.Errorf("scanning visitor: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating visitors: %w", err)
	}

	return records, nil
}

// Save replaces every row inside one transaction.
func (s *SQLite) Save(records visitor.RecordSet) error {
	if err := s.replace(records); err != nil {
		return fmt.Errorf("%w: %w", visitor.ErrStorage, err)
	}
	return nil
}

func (s *SQLite) replace(records visitor.RecordSet) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		// No-op after a successful commit.
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec("DELETE FROM visitors"); err != nil {
		return fmt.Errorf("clearing visitors: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO visitors (position, first_name, last_name, email, company, purpose) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			slog.Warn("closing statement", "error", cerr)
		}
	}()

	for i, r := range records {
		if _, err := stmt.Exec(i, r.FirstName, r.LastName, r.Email, r.Company, r.Purpose); err != nil {
			return fmt.Errorf("inserting visitor %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing visitors: %w", err)
	}
	return nil
}
