// Package store defines the interface for database implementations of the tool-call audit log.
package store

import (
	"errors"
)

// DB defines required methods for the audit log.
type DB interface {
	// SaveCall appends a tool invocation record.
	SaveCall(c Call) error
	// GetCalls returns the latest records, newest first, optionally filtered by tool name. A limit <= 0 uses
	// DefaultLimit.
	GetCalls(tool string, limit int) ([]Call, error)
}

// Limits applied to GetCalls.
const (
	DefaultLimit = 50
	MaxLimit     = 1000
)

// Limit normalises a requested number of records.
func Limit(n int) int {
	switch {
	case n <= 0:
		return DefaultLimit
	case n > MaxLimit:
		return MaxLimit
	}

	return n
}

// Errors returned
var (
	ErrDataNotFound = errors.New("Data was not found in store")
	ErrNoStore      = errors.New("audit store is not configured")
)
