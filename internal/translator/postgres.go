package translator

import (
	"fmt"
	"strings"

	"github.com/tordrt/tablebuilder/internal/schema"
)

// PostgresDialect renders PostgreSQL DDL. UNSIGNED has no equivalent and is
// dropped; auto increment columns become serial types. Plain and full text
// indexes are created by separate statements.
type PostgresDialect struct{}

func (PostgresDialect) Name() string { return Postgres }

func (PostgresDialect) Columns(s *schema.Schema) []string {
	cols := s.Columns()
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		t := canonicalType(col.Type)
		out = append(out, col.Name+" "+postgresType(t, col)+formatNull(col.Nullable)+formatDefault(t, col.Default))
	}
	return out
}

func postgresType(t string, col schema.ColumnDef) string {
	integer := func(base, serial string) string {
		if col.AutoIncrement {
			return serial
		}
		return base
	}

	switch t {
	case "TINYINT", "SMALLINT":
		return integer("SMALLINT", "SMALLSERIAL")
	case "MEDIUMINT", "INT", "INTEGER":
		return integer("INTEGER", "SERIAL")
	case "BIGINT":
		return integer("BIGINT", "BIGSERIAL")
	case "FLOAT":
		return "REAL"
	case "DOUBLE", "DOUBLE PRECISION":
		return "DOUBLE PRECISION"
	case "DECIMAL", "DEC", "NUMERIC":
		return formatType("DECIMAL", col.Length, col.Precision)
	case "DATETIME":
		return "TIMESTAMP"
	case "TINYTEXT", "TEXT", "MEDIUMTEXT", "LONGTEXT":
		return "TEXT"
	case "BINARY", "VARBINARY", "TINYBLOB", "BLOB", "MEDIUMBLOB", "LONGBLOB":
		return "BYTEA"
	case "CHAR", "VARCHAR", "BIT":
		return formatType(t, col.Length, 0)
	default:
		return t
	}
}

func (PostgresDialect) PrimaryKey(s *schema.Schema) []string {
	return primaryKeyClauses(s)
}

func (PostgresDialect) Indexes(s *schema.Schema) []string {
	return uniqueConstraints(s)
}

func (PostgresDialect) ForeignKeys(s *schema.Schema) []string {
	return constraintForeignKeys(s)
}

func (PostgresDialect) Statements(s *schema.Schema) []string {
	table := s.TableName()

	var out []string
	for _, g := range GroupIndexes(s) {
		switch g.Kind {
		case schema.IndexPlain:
			out = append(out, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
				indexName(s, g.KeyName), table, strings.Join(g.Columns, ", ")))
		case schema.IndexFullText:
			parts := make([]string, 0, len(g.Columns))
			for _, c := range g.Columns {
				parts = append(parts, fmt.Sprintf("coalesce(%s, '')", c))
			}
			out = append(out, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s USING GIN (to_tsvector('simple', %s))",
				indexName(s, g.KeyName), table, strings.Join(parts, " || ' ' || ")))
		}
	}
	return out
}
