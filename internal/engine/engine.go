// Package engine validates a schema, renders it through a dialect and hands
// the resulting statements to a store.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"github.com/tordrt/tablebuilder/internal/schema"
	"github.com/tordrt/tablebuilder/internal/translator"
	"github.com/tordrt/tablebuilder/internal/validator"
)

// ErrNoStore is returned when executing without a configured store.
var ErrNoStore = errors.New("no table store configured")

// Engine is stateless across calls.
type Engine struct {
	store   Store
	dialect translator.Dialect
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for operation logs.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine. The store may be nil when only queries are needed.
func New(store Store, dialect translator.Dialect, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		dialect: dialect,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dialect returns the dialect used for translation.
func (e *Engine) Dialect() translator.Dialect {
	return e.dialect
}

// CreateTableQuery validates the schema and returns the CREATE TABLE
// statement followed by any dialect statements, each terminated by ";".
func (e *Engine) CreateTableQuery(s *schema.Schema) (string, error) {
	if errs := validator.Validate(s); len(errs) > 0 {
		return "", &SchemaInvalidError{Op: OpCreate, Table: s.TableName(), Errors: errs}
	}
	return e.compileCreate(s), nil
}

// DropTableQuery validates the schema and returns the DROP TABLE statement.
func (e *Engine) DropTableQuery(s *schema.Schema) (string, error) {
	if errs := validator.Validate(s); len(errs) > 0 {
		return "", &SchemaInvalidError{Op: OpDrop, Table: s.TableName(), Errors: errs}
	}
	return fmt.Sprintf("DROP TABLE IF EXISTS %s;", s.TableName()), nil
}

// Checksum returns a stable fingerprint of the schema's CREATE statement.
func (e *Engine) Checksum(s *schema.Schema) (string, error) {
	query, err := e.CreateTableQuery(s)
	if err != nil {
		return "", err
	}
	return Checksum(query), nil
}

// Checksum fingerprints a query.
func Checksum(query string) string {
	return fmt.Sprintf("%016x", xxh3.HashString(query))
}

// CreateTable validates and translates the schema and submits the result to
// the store.
func (e *Engine) CreateTable(ctx context.Context, s *schema.Schema) error {
	log := e.opLogger(OpCreate, s)

	query, err := e.CreateTableQuery(s)
	if err != nil {
		log.Error("schema failed validation", "error", err)
		return err
	}
	if e.store == nil {
		return ErrNoStore
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	log.Debug("executing create", "sql", query)
	res := e.store.CreateTable(ctx, s.TableName(), query)
	if res.Failed() {
		err := &StoreError{Op: OpCreate, Table: s.TableName(), Detail: res.Detail()}
		log.Error("create failed", "error", err)
		return err
	}

	if res.Skipped {
		log.Info("table exists, create skipped")
		return nil
	}
	log.Info("table created", "checksum", Checksum(query))
	return nil
}

// DropTable validates the schema and drops its table if it exists.
func (e *Engine) DropTable(ctx context.Context, s *schema.Schema) error {
	log := e.opLogger(OpDrop, s)

	query, err := e.DropTableQuery(s)
	if err != nil {
		log.Error("schema failed validation", "error", err)
		return err
	}
	if e.store == nil {
		return ErrNoStore
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	log.Debug("executing drop", "sql", query)
	res := e.store.DropTable(ctx, s.TableName(), query)
	if res.Failed() {
		err := &StoreError{Op: OpDrop, Table: s.TableName(), Detail: res.Detail()}
		log.Error("drop failed", "error", err)
		return err
	}

	log.Info("table dropped")
	return nil
}

func (e *Engine) compileCreate(s *schema.Schema) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CREATE TABLE %s (\n%s\n)", s.TableName(), strings.Join(translator.Body(e.dialect, s), ",\n"))
	if e.store != nil {
		if trailer := strings.TrimSpace(e.store.Trailer()); trailer != "" {
			sb.WriteByte(' ')
			sb.WriteString(trailer)
		}
	}
	sb.WriteByte(';')

	for _, stmt := range e.dialect.Statements(s) {
		sb.WriteByte('\n')
		sb.WriteString(stmt)
		sb.WriteByte(';')
	}
	return sb.String()
}

func (e *Engine) opLogger(op string, s *schema.Schema) *slog.Logger {
	return e.logger.With(
		"op", op,
		"table", s.TableName(),
		"dialect", e.dialect.Name(),
		"op_id", uuid.NewString(),
	)
}
