// Package formatter renders human readable descriptions of table schemas.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tordrt/tablebuilder/internal/schema"
	"github.com/tordrt/tablebuilder/internal/translator"
)

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// Formatter writes a description of one or more schemas.
type Formatter interface {
	Format(schemas []*schema.Schema) error
}

// typeLabel renders the declared type with its length and precision.
func typeLabel(col schema.ColumnDef) string {
	t := strings.ToUpper(col.Type)
	if t == "" {
		t = "?"
	}
	switch {
	case col.Length > 0 && col.Precision > 0:
		t += "(" + strconv.Itoa(col.Length) + "," + strconv.Itoa(col.Precision) + ")"
	case col.Length > 0:
		t += "(" + strconv.Itoa(col.Length) + ")"
	}
	if col.Unsigned {
		t += " UNSIGNED"
	}
	return t
}

// constraints lists the column level attributes worth showing.
func constraints(col schema.ColumnDef, primary map[string]bool) []string {
	var out []string
	if primary[col.Name] {
		out = append(out, "PK")
	}
	if col.AutoIncrement {
		out = append(out, "AUTO_INCREMENT")
	}
	if !col.Nullable {
		out = append(out, "NOT NULL")
	}
	if col.Default != nil {
		out = append(out, fmt.Sprintf("DEFAULT %s", *col.Default))
	}
	return out
}

func primarySet(s *schema.Schema) map[string]bool {
	out := make(map[string]bool)
	for _, idx := range s.Indexes() {
		if idx.Kind == schema.IndexPrimary {
			out[idx.Column] = true
		}
	}
	return out
}

func indexLabel(g translator.IndexGroup) string {
	label := fmt.Sprintf("%s (%s)", g.KeyName, strings.Join(g.Columns, ", "))
	if g.Kind != schema.IndexPlain {
		label += " " + strings.ToUpper(g.Kind.String())
	}
	return label
}

func referenceLabel(fk schema.ForeignKeyDef) string {
	label := fmt.Sprintf("%s → %s.%s", fk.Column, fk.ReferenceTable, fk.ReferenceColumn)
	if fk.OnUpdate != "" {
		label += " ON UPDATE " + fk.OnUpdate
	}
	if fk.OnDelete != "" {
		label += " ON DELETE " + fk.OnDelete
	}
	return label
}
