package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrCompanyExists = errors.New("company_id already exists")
)

const timeLayout = time.RFC3339Nano

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the SQLite database at path and applies the schema.
func Open(path string) (*Store, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage.Open(): failed to open database: %w", err)
	}
	// One writer at a time; the token counter relies on it.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.Open(): failed to connect to database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	createFormsTable := `
	CREATE TABLE IF NOT EXISTS forms (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"token_no" TEXT NOT NULL UNIQUE,
			"name" TEXT NOT NULL DEFAULT '',
			"email" TEXT NOT NULL DEFAULT '',
			"contact" TEXT NOT NULL DEFAULT '',
			"batch" TEXT NOT NULL DEFAULT '',
			"location" TEXT NOT NULL DEFAULT '',
			"skillset" TEXT NOT NULL DEFAULT '',
			"company" TEXT NOT NULL DEFAULT '',
			"experience" TEXT NOT NULL DEFAULT '',
			"ctc" TEXT NOT NULL DEFAULT '',
			"message" TEXT NOT NULL DEFAULT '',
			"attachment" TEXT,
			"created_at" TEXT NOT NULL,
			"updated_at" TEXT NOT NULL
	);`
	createCompaniesTable := `
	CREATE TABLE IF NOT EXISTS companies (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"company_id" TEXT NOT NULL UNIQUE,
			"name" TEXT NOT NULL,
			"job_role" TEXT NOT NULL,
			"job_description" TEXT NOT NULL,
			"skillset_required" TEXT NOT NULL,
			"expected_ctc" TEXT NOT NULL
	);`
	createCountersTable := `
	CREATE TABLE IF NOT EXISTS counters (
			"name" TEXT PRIMARY KEY,
			"value" INTEGER NOT NULL
	);`
	// Continue the sequence of a database that predates the counter.
	seedTokenCounter := `
	INSERT OR IGNORE INTO counters(name, value)
	SELECT ?, COALESCE(MAX(CAST(token_no AS INTEGER)), 0) FROM forms;`

	for name, stmt := range map[string]string{
		"forms":     createFormsTable,
		"companies": createCompaniesTable,
		"counters":  createCountersTable,
	} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("storage.migrate(): failed to create %s table: %w", name, err)
		}
	}
	if _, err := s.db.Exec(seedTokenCounter, tokenCounterName); err != nil {
		return fmt.Errorf("storage.migrate(): failed to seed token counter: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}
