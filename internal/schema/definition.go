package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Definition is the JSON form of a schema.
type Definition struct {
	Table       string           `json:"table"`
	Prefix      string           `json:"prefix,omitempty"`
	Columns     []ColumnSpec     `json:"columns"`
	Indexes     []IndexSpec      `json:"indexes,omitempty"`
	ForeignKeys []ForeignKeySpec `json:"foreign_keys,omitempty"`
}

type ColumnSpec struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Length        int     `json:"length,omitempty"`
	Precision     int     `json:"precision,omitempty"`
	Nullable      bool    `json:"nullable,omitempty"`
	Default       *string `json:"default,omitempty"`
	Unsigned      bool    `json:"unsigned,omitempty"`
	AutoIncrement bool    `json:"auto_increment,omitempty"`
}

// IndexSpec accepts either an explicit kind or the primary/unique/full_text
// flags. Flags are resolved with KindFromFlags when kind is empty.
type IndexSpec struct {
	Column   string `json:"column"`
	KeyName  string `json:"key_name,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Primary  bool   `json:"primary,omitempty"`
	Unique   bool   `json:"unique,omitempty"`
	FullText bool   `json:"full_text,omitempty"`
}

type ForeignKeySpec struct {
	Column          string `json:"column"`
	KeyName         string `json:"key_name,omitempty"`
	ReferenceTable  string `json:"reference_table"`
	ReferenceColumn string `json:"reference_column"`
	OnUpdate        string `json:"on_update,omitempty"`
	OnDelete        string `json:"on_delete,omitempty"`
}

// Decode reads a JSON schema definition and builds the Schema it describes.
// Structural consistency is left to the validator.
func Decode(r io.Reader) (*Schema, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to decode schema definition: %w", err)
	}
	return def.Build()
}

// DecodeFile is Decode for a file on disk.
func DecodeFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema definition: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Build converts the definition into a Schema.
func (d Definition) Build() (*Schema, error) {
	if d.Table == "" {
		return nil, fmt.Errorf("schema definition: table is required")
	}

	kinds := make([]IndexKind, len(d.Indexes))
	for i, spec := range d.Indexes {
		if spec.Kind == "" {
			kinds[i] = KindFromFlags(spec.Primary, spec.Unique, spec.FullText)
			continue
		}
		kind, err := ParseIndexKind(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("schema definition %s: index on %s: %w", d.Table, spec.Column, err)
		}
		kinds[i] = kind
	}

	s := New(d.Table, func(s *Schema) {
		s.Prefix(d.Prefix)
		for _, c := range d.Columns {
			s.Column(c.Name).
				Type(c.Type).
				Length(c.Length).
				Precision(c.Precision).
				Nullable(c.Nullable).
				Default(c.Default).
				Unsigned(c.Unsigned).
				AutoIncrement(c.AutoIncrement)
		}
		for i, idx := range d.Indexes {
			s.Index(idx.Column, idx.KeyName).Kind(kinds[i])
		}
		for _, fk := range d.ForeignKeys {
			s.ForeignKey(fk.Column, fk.KeyName).
				ReferenceTable(fk.ReferenceTable).
				ReferenceColumn(fk.ReferenceColumn).
				OnUpdate(fk.OnUpdate).
				OnDelete(fk.OnDelete)
		}
	})
	return s, nil
}
