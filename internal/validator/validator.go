// Package validator checks a schema for structural consistency before any
// SQL is rendered from it.
package validator

import (
	"strings"

	"github.com/tordrt/tablebuilder/internal/schema"
)

// Validate runs every check against the schema and returns all problems
// found, in check order. An empty result means the schema is valid.
func Validate(s *schema.Schema) []ValidationError {
	var errs []ValidationError

	columns := s.Columns()
	known := make(map[string]bool, len(columns))
	for _, col := range columns {
		known[col.Name] = true
		if strings.TrimSpace(col.Type) == "" {
			errs = append(errs, ColumnMissingType{Column: col.Name})
		}
	}

	indexes := s.Indexes()
	primaries := 0
	for _, idx := range indexes {
		if idx.Kind == schema.IndexPrimary {
			primaries++
		}
	}
	if primaries > 1 {
		errs = append(errs, MultiplePrimaryKeys{Count: primaries})
	}

	for _, idx := range indexes {
		if !known[idx.Column] {
			errs = append(errs, IndexColumnMissing{KeyName: idx.KeyName, Column: idx.Column})
		}
	}

	foreignKeys := s.ForeignKeys()
	for _, fk := range foreignKeys {
		if !known[fk.Column] {
			errs = append(errs, ForeignKeyColumnMissing{KeyName: fk.KeyName, Column: fk.Column})
		}
	}
	for _, fk := range foreignKeys {
		if strings.TrimSpace(fk.ReferenceTable) == "" || strings.TrimSpace(fk.ReferenceColumn) == "" {
			errs = append(errs, ForeignKeyReferenceMissing{KeyName: fk.KeyName})
		}
	}

	return errs
}

// Messages returns the error strings of errs.
func Messages(errs []ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Error())
	}
	return out
}
