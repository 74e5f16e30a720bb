package store

import "time"

// Call contains the fields of a tool invocation saved to DB and published to the message broker.
type Call struct {
	ID       string    `json:"id,omitempty"`
	Tool     string    `json:"tool"`
	Chain    string    `json:"chain,omitempty"`
	Args     string    `json:"args"` // JSON-encoded arguments
	IsError  bool      `json:"isError"`
	Error    string    `json:"error,omitempty"`
	Upstream int       `json:"upstream"` // number of upstream calls made
	Skipped  int       `json:"skipped"`  // latest-blocks entries dropped after a failed lookup
	Millis   int64     `json:"ms"`
	TS       time.Time `json:"ts"`
}
