// Package db implements the opening and graceful closing of database connections.
package db

import (
	"errors"
	"fmt"

	"github.com/tarancss/adptools/lib/store"
	"github.com/tarancss/adptools/lib/store/mongo"
	"github.com/tarancss/adptools/lib/store/postgres"
	"github.com/tarancss/adptools/lib/store/sqlite"
)

// Database types.
const (
	MONGODB  string = "mongodb"
	POSTGRES string = "postgresql"
	SQLITE   string = "sqlite"
)

// ErrUnknownDB is returned for database types without an implementation.
var ErrUnknownDB = errors.New("unknown database type")

// New returns a new database connection according to the options (database type).
func New(options, connection string) (store.DB, error) {
	switch options {
	case MONGODB:
		return mongo.New(connection)
	case POSTGRES:
		return postgres.New(connection)
	case SQLITE:
		return sqlite.New(connection)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownDB, options)
}

// Close gracefully closes the database connection.
func Close(options string, dh store.DB) error {
	switch options {
	case MONGODB:
		return dh.(*mongo.Mongo).CloseMongo()
	case POSTGRES:
		return dh.(*postgres.Postgres).ClosePostgres()
	case SQLITE:
		return dh.(*sqlite.SQLite).CloseSQLite()
	}

	return nil
}
