package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/tordrt/tablebuilder/internal/schema"
	"github.com/tordrt/tablebuilder/internal/translator"
)

// TextFormatter formats schemas as compact text
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// Format writes the schemas in compact text format
func (f *TextFormatter) Format(schemas []*schema.Schema) error {
	for i, s := range schemas {
		if i > 0 {
			_, _ = fmt.Fprintln(f.writer) // Blank line between tables
		}

		if err := f.formatTable(s); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatTable(s *schema.Schema) error {
	primary := primarySet(s)

	// Table header with primary key
	pkStr := ""
	if len(primary) > 0 {
		var pk []string
		for _, idx := range s.Indexes() {
			if idx.Kind == schema.IndexPrimary {
				pk = append(pk, idx.Column)
			}
		}
		pkStr = fmt.Sprintf(" (PK: %s)", strings.Join(pk, ", "))
	}
	if _, err := fmt.Fprintf(f.writer, "TABLE %s%s\n", s.TableName(), pkStr); err != nil {
		return err
	}

	// Columns
	for _, col := range s.Columns() {
		parts := append([]string{col.Name + ":", typeLabel(col)}, constraints(col, primary)...)
		_, _ = fmt.Fprintf(f.writer, "  %s\n", strings.Join(parts, " "))
	}

	// Relations
	if fks := s.ForeignKeys(); len(fks) > 0 {
		_, _ = fmt.Fprintln(f.writer)
		_, _ = fmt.Fprintln(f.writer, "  RELATIONS:")
		for _, fk := range fks {
			_, _ = fmt.Fprintf(f.writer, "    %s\n", referenceLabel(fk))
		}
	}

	// Indexes
	if groups := translator.GroupIndexes(s); len(groups) > 0 {
		_, _ = fmt.Fprintln(f.writer)
		_, _ = fmt.Fprintln(f.writer, "  INDEXES:")
		for _, g := range groups {
			_, _ = fmt.Fprintf(f.writer, "    %s\n", indexLabel(g))
		}
	}

	return nil
}
