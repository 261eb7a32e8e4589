package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/tordrt/tablebuilder/internal/schema"
	"github.com/tordrt/tablebuilder/internal/translator"
)

// MarkdownFormatter formats schemas as markdown
type MarkdownFormatter struct {
	writer io.Writer
}

// NewMarkdownFormatter creates a new markdown formatter
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w}
}

// Format writes the schemas in markdown format
func (f *MarkdownFormatter) Format(schemas []*schema.Schema) error {
	if _, err := fmt.Fprintln(f.writer, "# Table Schemas"); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(f.writer)

	for _, s := range schemas {
		f.formatTable(s)
	}
	return nil
}

func (f *MarkdownFormatter) formatTable(s *schema.Schema) {
	primary := primarySet(s)

	_, _ = fmt.Fprintf(f.writer, "## %s\n\n", s.TableName())

	_, _ = fmt.Fprintln(f.writer, "### Columns")
	_, _ = fmt.Fprintln(f.writer)
	for _, col := range s.Columns() {
		if c := constraints(col, primary); len(c) > 0 {
			_, _ = fmt.Fprintf(f.writer, "- **%s:** %s, %s\n", col.Name, typeLabel(col), strings.Join(c, ", "))
		} else {
			_, _ = fmt.Fprintf(f.writer, "- **%s:** %s\n", col.Name, typeLabel(col))
		}
	}
	_, _ = fmt.Fprintln(f.writer)

	if fks := s.ForeignKeys(); len(fks) > 0 {
		_, _ = fmt.Fprintln(f.writer, "### References")
		_, _ = fmt.Fprintln(f.writer)
		for _, fk := range fks {
			_, _ = fmt.Fprintf(f.writer, "- %s (%s)\n", referenceLabel(fk), fk.KeyName)
		}
		_, _ = fmt.Fprintln(f.writer)
	}

	if groups := translator.GroupIndexes(s); len(groups) > 0 {
		_, _ = fmt.Fprintln(f.writer, "### Indexes")
		_, _ = fmt.Fprintln(f.writer)
		for _, g := range groups {
			_, _ = fmt.Fprintf(f.writer, "- %s\n", indexLabel(g))
		}
		_, _ = fmt.Fprintln(f.writer)
	}
}
