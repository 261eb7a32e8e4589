package schema

import (
	"errors"
	"fmt"
)

// Error codes reported by BuildError.
const (
	CodeColumnNotFound = 1
	CodeColumnLookup   = 301
)

// ErrColumnNotFound is returned when a column name is not declared.
var ErrColumnNotFound = errors.New("column not found")

// ErrNotFound is an alias of ErrColumnNotFound.
var ErrNotFound = ErrColumnNotFound

// BuildError reports a malformed schema construction.
type BuildError struct {
	Code   int
	Table  string
	Column string
	Err    error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("table %s: column with name %s is not currently defined", e.Table, e.Column)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the stable error code.
func (e *BuildError) ErrorCode() int {
	return e.Code
}
