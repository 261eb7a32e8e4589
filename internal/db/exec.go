package db

import (
	"context"
	"database/sql"
	"strings"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execScript runs each statement of script in order and stops at the first
// failure.
func execScript(ctx context.Context, ex execer, script string) error {
	for _, stmt := range splitStatements(script) {
		if _, err := ex.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// splitStatements splits a script on semicolons outside quoted strings so
// drivers without multi statement support can run it.
func splitStatements(sqlText string) []string {
	var (
		out      []string
		current  strings.Builder
		inSingle bool
		inDouble bool
		inTick   bool
	)

	flush := func() {
		stmt := strings.TrimSpace(current.String())
		if stmt != "" {
			out = append(out, stmt)
		}
		current.Reset()
	}

	for _, r := range sqlText {
		switch r {
		case '\'':
			if !inDouble && !inTick {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle && !inTick {
				inDouble = !inDouble
			}
		case '`':
			if !inSingle && !inDouble {
				inTick = !inTick
			}
		case ';':
			if !inSingle && !inDouble && !inTick {
				flush()
				continue
			}
		}
		current.WriteRune(r)
	}
	flush()
	return out
}
