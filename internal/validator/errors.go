package validator

import "fmt"

// ValidationError is a single structural problem found in a schema.
type ValidationError interface {
	error
	validationError()
}

// ColumnMissingType is reported for a column declared without a type.
type ColumnMissingType struct {
	Column string
}

func (e ColumnMissingType) Error() string {
	return fmt.Sprintf("column %q has no type defined", e.Column)
}

// MultiplePrimaryKeys is reported when more than one primary index exists.
type MultiplePrimaryKeys struct {
	Count int
}

func (e MultiplePrimaryKeys) Error() string {
	return fmt.Sprintf("only a single primary key can be defined, found %d", e.Count)
}

// IndexColumnMissing is reported for an index over an undeclared column.
type IndexColumnMissing struct {
	KeyName string
	Column  string
}

func (e IndexColumnMissing) Error() string {
	return fmt.Sprintf("index %q references undefined column %q", e.KeyName, e.Column)
}

// ForeignKeyColumnMissing is reported for a foreign key over an undeclared
// local column.
type ForeignKeyColumnMissing struct {
	KeyName string
	Column  string
}

func (e ForeignKeyColumnMissing) Error() string {
	return fmt.Sprintf("foreign key %q references undefined column %q", e.KeyName, e.Column)
}

// ForeignKeyReferenceMissing is reported when a foreign key lacks its
// reference table or column.
type ForeignKeyReferenceMissing struct {
	KeyName string
}

func (e ForeignKeyReferenceMissing) Error() string {
	return fmt.Sprintf("foreign key %q requires both a reference table and a reference column", e.KeyName)
}

func (ColumnMissingType) validationError()          {}
func (MultiplePrimaryKeys) validationError()        {}
func (IndexColumnMissing) validationError()         {}
func (ForeignKeyColumnMissing) validationError()    {}
func (ForeignKeyReferenceMissing) validationError() {}
