package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrLogExists signals that a daily log already exists for the
// requested date. The unique index on daily_logs.date is the
// authoritative guard; this error is the translated constraint violation.
var ErrLogExists = errors.New("daily log already exists for this date")

// Open opens the sqlite database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
