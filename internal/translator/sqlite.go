package translator

import (
	"fmt"
	"strings"

	"github.com/tordrt/tablebuilder/internal/schema"
)

// SQLiteDialect renders SQLite DDL. An auto increment column that is also
// the single primary key becomes the rowid alias; the flag is ignored on any
// other column. Full text indexes degrade to plain indexes.
type SQLiteDialect struct{}

func (SQLiteDialect) Name() string { return SQLite }

func (SQLiteDialect) Columns(s *schema.Schema) []string {
	rowid := rowidColumn(s)
	cols := s.Columns()
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		if col.Name == rowid {
			out = append(out, col.Name+" INTEGER PRIMARY KEY AUTOINCREMENT")
			continue
		}
		t := canonicalType(col.Type)
		out = append(out, col.Name+" "+formatType(t, col.Length, col.Precision)+formatNull(col.Nullable)+formatDefault(t, col.Default))
	}
	return out
}

// rowidColumn returns the column rendered as INTEGER PRIMARY KEY
// AUTOINCREMENT, or "" when there is none.
func rowidColumn(s *schema.Schema) string {
	pk := primaryColumns(s)
	if len(pk) != 1 {
		return ""
	}
	col, err := s.GetColumn(pk[0])
	if err != nil || !col.AutoIncrement {
		return ""
	}
	if !integerTypes[canonicalType(col.Type)] {
		return ""
	}
	return col.Name
}

func (SQLiteDialect) PrimaryKey(s *schema.Schema) []string {
	if rowidColumn(s) != "" {
		return nil
	}
	return primaryKeyClauses(s)
}

func (SQLiteDialect) Indexes(s *schema.Schema) []string {
	return uniqueConstraints(s)
}

func (SQLiteDialect) ForeignKeys(s *schema.Schema) []string {
	return constraintForeignKeys(s)
}

func (SQLiteDialect) Statements(s *schema.Schema) []string {
	var out []string
	for _, g := range GroupIndexes(s) {
		if g.Kind == schema.IndexUnique {
			continue
		}
		out = append(out, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
			indexName(s, g.KeyName), s.TableName(), strings.Join(g.Columns, ", ")))
	}
	return out
}
