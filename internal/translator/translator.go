// Package translator renders a validated schema into dialect specific DDL
// fragments. Translators are pure: the same schema always yields the same
// fragments.
package translator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tordrt/tablebuilder/internal/schema"
)

// Dialect renders the parts of a CREATE TABLE statement. Each method is
// independent of the others.
type Dialect interface {
	Name() string
	// Columns returns one clause per column in declaration order.
	Columns(s *schema.Schema) []string
	// PrimaryKey returns the primary key clause, if any.
	PrimaryKey(s *schema.Schema) []string
	// Indexes returns the secondary index clauses placed in the table body.
	Indexes(s *schema.Schema) []string
	// ForeignKeys returns one clause per foreign key.
	ForeignKeys(s *schema.Schema) []string
	// Statements returns standalone statements to run after the table has
	// been created.
	Statements(s *schema.Schema) []string
}

// Supported dialect names.
const (
	MySQL    = "mysql"
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// ForName returns the dialect registered under name.
func ForName(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case MySQL, "mariadb":
		return MySQLDialect{}, nil
	case Postgres, "postgresql":
		return PostgresDialect{}, nil
	case SQLite, "sqlite3":
		return SQLiteDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect: %s", name)
	}
}

// Body returns the table body clauses in their final order: columns, primary
// key, secondary indexes, foreign keys.
func Body(d Dialect, s *schema.Schema) []string {
	var out []string
	out = append(out, d.Columns(s)...)
	out = append(out, d.PrimaryKey(s)...)
	out = append(out, d.Indexes(s)...)
	out = append(out, d.ForeignKeys(s)...)
	return out
}

// IndexGroup is a set of non primary index entries sharing key name and kind.
type IndexGroup struct {
	KeyName string
	Kind    schema.IndexKind
	Columns []string
}

// GroupIndexes groups the non primary indexes by key name and kind. Groups
// are ordered by first appearance and columns by declaration.
func GroupIndexes(s *schema.Schema) []IndexGroup {
	type groupKey struct {
		name string
		kind schema.IndexKind
	}

	var groups []IndexGroup
	pos := make(map[groupKey]int)
	for _, idx := range s.Indexes() {
		if idx.Kind == schema.IndexPrimary {
			continue
		}
		k := groupKey{idx.KeyName, idx.Kind}
		i, ok := pos[k]
		if !ok {
			i = len(groups)
			pos[k] = i
			groups = append(groups, IndexGroup{KeyName: idx.KeyName, Kind: idx.Kind})
		}
		groups[i].Columns = append(groups[i].Columns, idx.Column)
	}
	return groups
}

// primaryColumns returns the columns of all primary index entries.
func primaryColumns(s *schema.Schema) []string {
	var cols []string
	for _, idx := range s.Indexes() {
		if idx.Kind == schema.IndexPrimary {
			cols = append(cols, idx.Column)
		}
	}
	return cols
}

func primaryKeyClauses(s *schema.Schema) []string {
	var out []string
	for _, col := range primaryColumns(s) {
		out = append(out, fmt.Sprintf("PRIMARY KEY (%s)", col))
	}
	return out
}

func canonicalType(t string) string {
	return strings.ToUpper(strings.TrimSpace(t))
}

// Types that accept a length, grouped by family.
var (
	stringTypes = map[string]bool{
		"CHAR": true, "VARCHAR": true, "BINARY": true, "VARBINARY": true, "TEXT": true, "BLOB": true,
	}
	integerTypes = map[string]bool{
		"BIT": true, "TINYINT": true, "SMALLINT": true, "MEDIUMINT": true, "INT": true, "INTEGER": true, "BIGINT": true,
	}
	floatTypes = map[string]bool{
		"FLOAT": true, "DOUBLE": true, "DOUBLE PRECISION": true, "DECIMAL": true, "DEC": true,
	}
	dateTypes = map[string]bool{
		"DATETIME": true, "TIMESTAMP": true, "TIME": true,
	}
)

func acceptsLength(t string) bool {
	return stringTypes[t] || integerTypes[t] || floatTypes[t] || dateTypes[t]
}

// formatType renders TYPE[(length[,precision])] for types on the length
// allow list. Precision is only rendered for floating and decimal types.
func formatType(t string, length, precision int) string {
	if length <= 0 || !acceptsLength(t) {
		return t
	}
	if precision > 0 && floatTypes[t] {
		return t + "(" + strconv.Itoa(length) + "," + strconv.Itoa(precision) + ")"
	}
	return t + "(" + strconv.Itoa(length) + ")"
}

// formatDefault renders the DEFAULT clause. String family types are quoted,
// every other value is emitted verbatim.
func formatDefault(t string, def *string) string {
	if def == nil {
		return ""
	}
	if stringTypes[t] {
		return " DEFAULT '" + strings.ReplaceAll(*def, "'", "''") + "'"
	}
	return " DEFAULT " + *def
}

func formatNull(nullable bool) string {
	if nullable {
		return " NULL"
	}
	return " NOT NULL"
}

func referenceActions(fk schema.ForeignKeyDef) string {
	var sb strings.Builder
	if fk.OnUpdate != "" {
		sb.WriteString(" ON UPDATE ")
		sb.WriteString(fk.OnUpdate)
	}
	if fk.OnDelete != "" {
		sb.WriteString(" ON DELETE ")
		sb.WriteString(fk.OnDelete)
	}
	return sb.String()
}

// constraintForeignKeys renders foreign keys as named table constraints.
func constraintForeignKeys(s *schema.Schema) []string {
	var out []string
	for _, fk := range s.ForeignKeys() {
		out = append(out, fmt.Sprintf(
			"CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(%s)%s",
			fk.KeyName,
			fk.Column,
			fk.ReferenceTable,
			fk.ReferenceColumn,
			referenceActions(fk),
		))
	}
	return out
}

// uniqueConstraints renders unique index groups as table constraints named
// after the table, since index names share one namespace per schema.
func uniqueConstraints(s *schema.Schema) []string {
	var out []string
	for _, g := range GroupIndexes(s) {
		if g.Kind != schema.IndexUnique {
			continue
		}
		out = append(out, fmt.Sprintf("CONSTRAINT %s UNIQUE (%s)",
			indexName(s, g.KeyName), strings.Join(g.Columns, ", ")))
	}
	return out
}

func indexName(s *schema.Schema, keyName string) string {
	return s.TableName() + "_" + keyName
}
