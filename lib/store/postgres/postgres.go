// Package postgres implements the interface for PostgreSQL.
package postgres

import (
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/lib/pq" //nolint:gci // load the postgres driver that is used by the system

	"github.com/tarancss/adptools/lib/store"
)

const schema = `CREATE TABLE IF NOT EXISTS calls (
	id       BIGSERIAL PRIMARY KEY,
	tool     TEXT NOT NULL,
	chain    TEXT NOT NULL DEFAULT '',
	args     TEXT NOT NULL DEFAULT '{}',
	is_error BOOLEAN NOT NULL DEFAULT FALSE,
	error    TEXT NOT NULL DEFAULT '',
	upstream INTEGER NOT NULL DEFAULT 0,
	skipped  INTEGER NOT NULL DEFAULT 0,
	ms       BIGINT NOT NULL DEFAULT 0,
	ts       TIMESTAMPTZ NOT NULL
)`

// Postgres implements a connection to a PostgreSQL database.
type Postgres struct {
	db *sql.DB
}

// New returns a postgres client connection to the specified database in 'connection' and makes sure the calls table
// exists.
func New(connection string) (*Postgres, error) {
	db, err := sql.Open("postgres", connection)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to DB: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("cannot create calls table: %w", err)
	}

	return &Postgres{db: db}, nil
}

// ClosePostgres will close any database connection. Must be called at termination time.
func (p *Postgres) ClosePostgres() error {
	return p.db.Close()
}

// SaveCall inserts a tool call record.
func (p *Postgres) SaveCall(c store.Call) error {
	_, err := p.db.Exec(`INSERT INTO calls (tool, chain, args, is_error, error, upstream, skipped, ms, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.Tool, c.Chain, c.Args, c.IsError, c.Error, c.Upstream, c.Skipped, c.Millis, c.TS)
	if err != nil {
		return fmt.Errorf("could not insert call in db: %w", err)
	}

	return nil
}

// GetCalls returns the latest tool call records, newest first.
func (p *Postgres) GetCalls(tool string, limit int) ([]store.Call, error) {
	rows, err := p.db.Query(`SELECT id, tool, chain, args, is_error, error, upstream, skipped, ms, ts FROM calls
		WHERE ($1 = '' OR tool = $1) ORDER BY id DESC LIMIT $2`, tool, store.Limit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	calls := []store.Call{}

	for rows.Next() {
		var c store.Call

		var id int64

		if err = rows.Scan(&id, &c.Tool, &c.Chain, &c.Args, &c.IsError, &c.Error, &c.Upstream, &c.Skipped, &c.Millis,
			&c.TS); err != nil {
			return nil, err
		}

		c.ID = strconv.FormatInt(id, 10)
		calls = append(calls, c)
	}

	return calls, rows.Err()
}
