// Package schema holds the in-memory description of a single table: its
// columns, indexes and foreign keys. A Schema is configured once and then
// handed to the validator and translators as read-only input.
package schema

// Schema represents the desired state of one table.
type Schema struct {
	tableName   string
	prefix      string
	columnOrder []string
	columns     map[string]*Column
	indexes     []*Index
	foreignKeys []*ForeignKey
}

// New creates a schema for tableName and runs each configure callback on it.
func New(tableName string, configure ...func(*Schema)) *Schema {
	s := &Schema{
		tableName: tableName,
		columns:   make(map[string]*Column),
	}
	for _, fn := range configure {
		fn(s)
	}
	return s
}

// Prefix sets the table name prefix.
func (s *Schema) Prefix(prefix string) *Schema {
	s.prefix = prefix
	return s
}

// TableName returns the prefixed table name.
func (s *Schema) TableName() string {
	return s.prefix + s.tableName
}

// BaseName returns the table name without prefix.
func (s *Schema) BaseName() string {
	return s.tableName
}

// GetPrefix returns the configured prefix, if any.
func (s *Schema) GetPrefix() string {
	return s.prefix
}

// Column creates the named column, replacing any column previously declared
// under the same name. A replaced column keeps its position.
func (s *Schema) Column(name string) *Column {
	col := newColumn(name)
	if _, ok := s.columns[name]; !ok {
		s.columnOrder = append(s.columnOrder, name)
	}
	s.columns[name] = col
	return col
}

// RemoveColumn removes a declared column. The returned error wraps
// ErrColumnNotFound when the column does not exist.
func (s *Schema) RemoveColumn(name string) error {
	if _, ok := s.columns[name]; !ok {
		return &BuildError{Code: CodeColumnNotFound, Table: s.TableName(), Column: name, Err: ErrColumnNotFound}
	}
	delete(s.columns, name)
	for i, n := range s.columnOrder {
		if n == name {
			s.columnOrder = append(s.columnOrder[:i:i], s.columnOrder[i+1:]...)
			break
		}
	}
	return nil
}

// GetColumn looks up a declared column by name.
func (s *Schema) GetColumn(name string) (ColumnDef, error) {
	col, ok := s.columns[name]
	if !ok {
		return ColumnDef{}, &BuildError{Code: CodeColumnLookup, Table: s.TableName(), Column: name, Err: ErrColumnNotFound}
	}
	return col.Def(), nil
}

// HasColumn reports whether a column with the name is declared.
func (s *Schema) HasColumn(name string) bool {
	_, ok := s.columns[name]
	return ok
}

// Index appends an index entry over column. The optional key name defaults
// to ix_<column>.
func (s *Schema) Index(column string, keyName ...string) *Index {
	idx := newIndex(column, first(keyName))
	s.indexes = append(s.indexes, idx)
	return idx
}

// ForeignKey appends a foreign key over column. The optional key name
// defaults to fk_<column>.
func (s *Schema) ForeignKey(column string, keyName ...string) *ForeignKey {
	fk := newForeignKey(column, first(keyName))
	s.foreignKeys = append(s.foreignKeys, fk)
	return fk
}

func (s *Schema) HasIndexes() bool {
	return len(s.indexes) > 0
}

func (s *Schema) HasForeignKeys() bool {
	return len(s.foreignKeys) > 0
}

// Columns returns copies of all columns in declaration order.
func (s *Schema) Columns() []ColumnDef {
	out := make([]ColumnDef, 0, len(s.columnOrder))
	for _, name := range s.columnOrder {
		out = append(out, s.columns[name].Def())
	}
	return out
}

// Indexes returns copies of all index entries in declaration order.
func (s *Schema) Indexes() []IndexDef {
	out := make([]IndexDef, 0, len(s.indexes))
	for _, idx := range s.indexes {
		out = append(out, idx.Def())
	}
	return out
}

// ForeignKeys returns copies of all foreign keys in declaration order.
func (s *Schema) ForeignKeys() []ForeignKeyDef {
	out := make([]ForeignKeyDef, 0, len(s.foreignKeys))
	for _, fk := range s.foreignKeys {
		out = append(out, fk.Def())
	}
	return out
}

func first(v []string) string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}
