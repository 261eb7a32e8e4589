package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tordrt/tablebuilder/internal/validator"
)

// Stable error codes.
const (
	CodeCreateFailed  = 101
	CodeDropFailed    = 102
	CodeSchemaInvalid = 201
)

const (
	OpCreate = "create"
	OpDrop   = "drop"
)

// SchemaInvalidError is returned when a schema fails validation. No SQL has
// been generated or executed.
type SchemaInvalidError struct {
	Op     string
	Table  string
	Errors []validator.ValidationError
}

func (e *SchemaInvalidError) Error() string {
	return fmt.Sprintf("failed to %s table %s as failed validation: %s",
		e.Op, e.Table, strings.Join(validator.Messages(e.Errors), ", "))
}

func (e *SchemaInvalidError) ErrorCode() int {
	return CodeSchemaInvalid
}

// StoreError is returned when the store reports diagnostics or an error
// while executing generated SQL.
type StoreError struct {
	Op     string
	Table  string
	Detail string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s table %s: %s", e.Op, e.Table, e.Detail)
}

func (e *StoreError) ErrorCode() int {
	if e.Op == OpDrop {
		return CodeDropFailed
	}
	return CodeCreateFailed
}

// Coder is implemented by errors carrying a stable code.
type Coder interface {
	ErrorCode() int
}

// CodeOf returns the code of the first coded error in err's chain, or 0.
func CodeOf(err error) int {
	var c Coder
	if errors.As(err, &c) {
		return c.ErrorCode()
	}
	return 0
}
