// Package sqlite implements the interface for SQLite, so the audit log works without a database server.
package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // register the pure-go "sqlite" driver

	"github.com/tarancss/adptools/lib/store"
)

const schema = `CREATE TABLE IF NOT EXISTS calls (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	tool     TEXT NOT NULL,
	chain    TEXT NOT NULL DEFAULT '',
	args     TEXT NOT NULL DEFAULT '{}',
	is_error INTEGER NOT NULL DEFAULT 0,
	error    TEXT NOT NULL DEFAULT '',
	upstream INTEGER NOT NULL DEFAULT 0,
	skipped  INTEGER NOT NULL DEFAULT 0,
	ms       INTEGER NOT NULL DEFAULT 0,
	ts       INTEGER NOT NULL
)`

const index = `CREATE INDEX IF NOT EXISTS idx_calls_tool ON calls(tool)`

// SQLite implements a connection to a SQLite database file.
type SQLite struct {
	db *sql.DB
}

// New opens (or creates) the database file at path and makes sure the calls table exists.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open DB in %s: %w", path, err)
	}
	// a single writer avoids SQLITE_BUSY under concurrent tool calls
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{schema, index} {
		if _, err = db.Exec(stmt); err != nil {
			db.Close()

			return nil, fmt.Errorf("cannot create calls table: %w", err)
		}
	}

	return &SQLite{db: db}, nil
}

// CloseSQLite will close the database. Must be called at termination time.
func (s *SQLite) CloseSQLite() error {
	return s.db.Close()
}

// SaveCall inserts a tool call record.
func (s *SQLite) SaveCall(c store.Call) error {
	_, err := s.db.Exec(`INSERT INTO calls (tool, chain, args, is_error, error, upstream, skipped, ms, ts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Tool, c.Chain, c.Args, c.IsError, c.Error, c.Upstream, c.Skipped, c.Millis, c.TS.UnixNano())
	if err != nil {
		return fmt.Errorf("could not insert call in db: %w", err)
	}

	return nil
}

// GetCalls returns the latest tool call records, newest first.
func (s *SQLite) GetCalls(tool string, limit int) ([]store.Call, error) {
	rows, err := s.db.Query(`SELECT id, tool, chain, args, is_error, error, upstream, skipped, ms, ts FROM calls
		WHERE (? = '' OR tool = ?) ORDER BY id DESC LIMIT ?`, tool, tool, store.Limit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	calls := []store.Call{}

	for rows.Next() {
		var c store.Call

		var id, ts int64

		if err = rows.Scan(&id, &c.Tool, &c.Chain, &c.Args, &c.IsError, &c.Error, &c.Upstream, &c.Skipped, &c.Millis,
			&ts); err != nil {
			return nil, err
		}

		c.ID = strconv.FormatInt(id, 10)
		c.TS = time.Unix(0, ts).UTC()
		calls = append(calls, c)
	}

	return calls, rows.Err()
}
