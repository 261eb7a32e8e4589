package engine

import (
	"context"
	"strings"
)

// Store executes generated DDL against a live database. Implementations
// own idempotence: creating a table that already exists must not fail.
type Store interface {
	// Trailer returns the clause appended after the CREATE TABLE body, such
	// as a collation. It may be empty.
	Trailer() string
	CreateTable(ctx context.Context, table, query string) Result
	DropTable(ctx context.Context, table, query string) Result
}

// Result is what a store reports after executing a query.
type Result struct {
	// Output holds diagnostic text emitted by the database while executing
	// (warnings, notices).
	Output string
	// LastError holds the error message of a failed statement.
	LastError string
	// Skipped is set when the store decided there was nothing to do.
	Skipped bool
}

// Failed reports whether the result carries any diagnostic or error.
func (r Result) Failed() bool {
	return r.Output != "" || r.LastError != ""
}

// Detail joins the diagnostic output and error message.
func (r Result) Detail() string {
	var parts []string
	if s := strings.TrimSpace(r.Output); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(r.LastError); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n")
}
