package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tordrt/tablebuilder/internal/engine"
)

// PostgresClient manages the connection to PostgreSQL and executes table DDL.
// Server WARNING notices raised while executing are reported as diagnostics.
type PostgresClient struct {
	conn     *pgx.Conn
	warnings []string
}

// NewPostgresClient creates a new PostgreSQL client
func NewPostgresClient(ctx context.Context, connString string) (*PostgresClient, error) {
	cfg, err := pgx.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres connection string: %w", err)
	}

	c := &PostgresClient{}
	cfg.OnNotice = func(_ *pgconn.PgConn, n *pgconn.Notice) {
		if n.Severity == "WARNING" {
			c.warnings = append(c.warnings, fmt.Sprintf("%s: %s", n.Severity, n.Message))
		}
	}

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	c.conn = conn
	return c, nil
}

// Close closes the database connection
func (c *PostgresClient) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}

// GetConnection returns the underlying connection
func (c *PostgresClient) GetConnection() *pgx.Conn {
	return c.conn
}

// Trailer is empty; PostgreSQL takes collation per column.
func (c *PostgresClient) Trailer() string {
	return ""
}

// CreateTable executes query in a transaction unless the table already
// exists.
func (c *PostgresClient) CreateTable(ctx context.Context, table, query string) engine.Result {
	var exists bool
	if err := c.conn.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, table).Scan(&exists); err != nil {
		return engine.Result{LastError: fmt.Sprintf("failed to check table: %s", describePgError(err))}
	}
	if exists {
		return engine.Result{Skipped: true}
	}
	return c.run(ctx, query)
}

// DropTable executes query.
func (c *PostgresClient) DropTable(ctx context.Context, _ string, query string) engine.Result {
	return c.run(ctx, query)
}

func (c *PostgresClient) run(ctx context.Context, query string) engine.Result {
	c.warnings = nil

	err := pgx.BeginFunc(ctx, c.conn, func(tx pgx.Tx) error {
		for _, stmt := range splitStatements(query) {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})

	res := engine.Result{Output: strings.Join(c.warnings, "\n")}
	if err != nil {
		res.LastError = describePgError(err)
	}
	return res
}

func describePgError(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err.Error()
	}
	msg := fmt.Sprintf("%s (SQLSTATE %s)", pgErr.Message, pgErr.Code)
	if pgErr.Detail != "" {
		msg += ": " + pgErr.Detail
	}
	return msg
}
