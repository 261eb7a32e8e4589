package translator

import (
	"fmt"
	"strings"

	"github.com/tordrt/tablebuilder/internal/schema"
)

// MySQLDialect renders MySQL and MariaDB DDL. Indexes and foreign keys are
// all declared inside the table body.
type MySQLDialect struct{}

func (MySQLDialect) Name() string { return MySQL }

func (MySQLDialect) Columns(s *schema.Schema) []string {
	cols := s.Columns()
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		t := canonicalType(col.Type)

		var sb strings.Builder
		sb.WriteString(col.Name)
		sb.WriteByte(' ')
		sb.WriteString(formatType(t, col.Length, col.Precision))
		if col.Unsigned {
			sb.WriteString(" UNSIGNED")
		}
		sb.WriteString(formatNull(col.Nullable))
		if col.AutoIncrement {
			sb.WriteString(" AUTO_INCREMENT")
		}
		sb.WriteString(formatDefault(t, col.Default))
		out = append(out, sb.String())
	}
	return out
}

func (MySQLDialect) PrimaryKey(s *schema.Schema) []string {
	return primaryKeyClauses(s)
}

func (MySQLDialect) Indexes(s *schema.Schema) []string {
	var out []string
	for _, g := range GroupIndexes(s) {
		prefix := ""
		if g.Kind != schema.IndexPlain {
			prefix = strings.ToUpper(g.Kind.String()) + " "
		}
		out = append(out, fmt.Sprintf("%sINDEX %s (%s)", prefix, g.KeyName, strings.Join(g.Columns, ", ")))
	}
	return out
}

func (MySQLDialect) ForeignKeys(s *schema.Schema) []string {
	var out []string
	for _, fk := range s.ForeignKeys() {
		out = append(out, fmt.Sprintf(
			"FOREIGN KEY %s(%s) REFERENCES %s(%s)%s",
			fk.KeyName,
			fk.Column,
			fk.ReferenceTable,
			fk.ReferenceColumn,
			referenceActions(fk),
		))
	}
	return out
}

func (MySQLDialect) Statements(*schema.Schema) []string {
	return nil
}
