package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tordrt/tablebuilder/internal/engine"
)

// SQLiteClient manages the connection to SQLite and executes table DDL.
type SQLiteClient struct {
	db *sql.DB
}

// NewSQLiteClient creates a new SQLite client. Foreign key enforcement is
// enabled unless the path already carries connection parameters.
func NewSQLiteClient(ctx context.Context, path string) (*SQLiteClient, error) {
	if !strings.Contains(path, "?") {
		path += "?_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteClient{db: db}, nil
}

// Close closes the database connection
func (c *SQLiteClient) Close() error {
	return c.db.Close()
}

// GetDB returns the underlying database connection
func (c *SQLiteClient) GetDB() *sql.DB {
	return c.db
}

func (c *SQLiteClient) Trailer() string {
	return ""
}

// CreateTable executes query in a transaction unless the table already
// exists.
func (c *SQLiteClient) CreateTable(ctx context.Context, table, query string) engine.Result {
	var n int
	err := c.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n)
	if err != nil {
		return engine.Result{LastError: fmt.Sprintf("failed to check table: %v", err)}
	}
	if n > 0 {
		return engine.Result{Skipped: true}
	}
	return c.run(ctx, query)
}

// DropTable executes query.
func (c *SQLiteClient) DropTable(ctx context.Context, _ string, query string) engine.Result {
	return c.run(ctx, query)
}

func (c *SQLiteClient) run(ctx context.Context, query string) engine.Result {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return engine.Result{LastError: err.Error()}
	}
	if err := execScript(ctx, tx, query); err != nil {
		_ = tx.Rollback()
		return engine.Result{LastError: err.Error()}
	}
	if err := tx.Commit(); err != nil {
		return engine.Result{LastError: err.Error()}
	}
	return engine.Result{}
}
