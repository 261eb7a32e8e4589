package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/tordrt/tablebuilder/internal/engine"
)

// Deprecation notes MySQL 8 raises for otherwise valid DDL, such as integer
// display widths. They are not reported as diagnostics.
var ignoredWarnings = map[int]bool{
	1287: true,
	1681: true,
	3719: true,
}

// MySQLClient manages the connection to MySQL and executes table DDL.
type MySQLClient struct {
	db        *sql.DB
	collation string
}

// NewMySQLClient creates a new MySQL client. When collation is empty the
// database default collation is used for the create trailer.
func NewMySQLClient(ctx context.Context, connString, collation string) (*MySQLClient, error) {
	if _, err := mysql.ParseDSN(connString); err != nil {
		return nil, fmt.Errorf("invalid mysql dsn: %w", err)
	}

	db, err := sql.Open("mysql", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if collation == "" {
		if err := db.QueryRowContext(ctx, `SELECT @@collation_database`).Scan(&collation); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to read database collation: %w", err)
		}
	}

	return &MySQLClient{db: db, collation: collation}, nil
}

// Close closes the database connection
func (c *MySQLClient) Close() error {
	return c.db.Close()
}

// GetDB returns the underlying database connection
func (c *MySQLClient) GetDB() *sql.DB {
	return c.db
}

// Trailer returns the COLLATE clause for new tables.
func (c *MySQLClient) Trailer() string {
	if c.collation == "" {
		return ""
	}
	return "COLLATE " + c.collation
}

// CreateTable executes query unless the table already exists.
func (c *MySQLClient) CreateTable(ctx context.Context, table, query string) engine.Result {
	exists, err := c.tableExists(ctx, table)
	if err != nil {
		return engine.Result{LastError: fmt.Sprintf("failed to check table: %v", err)}
	}
	if exists {
		return engine.Result{Skipped: true}
	}
	return c.run(ctx, query)
}

// DropTable executes query.
func (c *MySQLClient) DropTable(ctx context.Context, _ string, query string) engine.Result {
	return c.run(ctx, query)
}

// run executes every statement on one connection so SHOW WARNINGS reports
// on the statement just executed.
func (c *MySQLClient) run(ctx context.Context, query string) engine.Result {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return engine.Result{LastError: err.Error()}
	}
	defer func() { _ = conn.Close() }()

	var output []string
	for _, stmt := range splitStatements(query) {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return engine.Result{Output: strings.Join(output, "\n"), LastError: err.Error()}
		}
		warnings, err := c.warnings(ctx, conn)
		if err != nil {
			return engine.Result{Output: strings.Join(output, "\n"), LastError: err.Error()}
		}
		output = append(output, warnings...)
	}
	return engine.Result{Output: strings.Join(output, "\n")}
}

func (c *MySQLClient) warnings(ctx context.Context, conn *sql.Conn) ([]string, error) {
	rows, err := conn.QueryContext(ctx, `SHOW WARNINGS`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var level, message string
		var code int
		if err := rows.Scan(&level, &code, &message); err != nil {
			return nil, err
		}
		if strings.EqualFold(level, "Note") || ignoredWarnings[code] {
			continue
		}
		out = append(out, fmt.Sprintf("%s %d: %s", level, code, message))
	}
	return out, rows.Err()
}

func (c *MySQLClient) tableExists(ctx context.Context, table string) (bool, error) {
	var n int
	err := c.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_name = ?
	`, table).Scan(&n)
	return n > 0, err
}
