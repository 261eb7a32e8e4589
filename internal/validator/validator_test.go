package validator

import (
	"testing"

	"github.com/tordrt/tablebuilder/internal/schema"
)

func TestValidateValidSchema(t *testing.T) {
	s := schema.New("posts", func(s *schema.Schema) {
		s.Column("id").UnsignedInt(11).AutoIncrement()
		s.Column("author_id").UnsignedInt(11)
		s.Column("title").Varchar(255)
		s.Index("id").Primary()
		s.Index("title").FullText()
		s.ForeignKey("author_id").References("users", "id")
	})

	if errs := Validate(s); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", Messages(errs))
	}
}

func TestValidateColumnMissingType(t *testing.T) {
	s := schema.New("t", func(s *schema.Schema) {
		s.Column("id").Int(11)
		s.Column("untyped")
		s.Column("also_untyped").Length(10)
		s.Index("ghost")
	})

	errs := Validate(s)
	var missing []string
	for _, err := range errs {
		if e, ok := err.(ColumnMissingType); ok {
			missing = append(missing, e.Column)
		}
	}
	if len(missing) != 2 || missing[0] != "untyped" || missing[1] != "also_untyped" {
		t.Errorf("Expected both untyped columns reported, got %v", missing)
	}
	if len(errs) != 3 {
		t.Errorf("Expected 3 errors including the index one, got %v", Messages(errs))
	}
}

func TestValidateMultiplePrimaryKeys(t *testing.T) {
	tests := []struct {
		name      string
		primaries int
		wantErr   bool
	}{
		{name: "none", primaries: 0},
		{name: "single", primaries: 1},
		{name: "two", primaries: 2, wantErr: true},
		{name: "three", primaries: 3, wantErr: true},
	}

	cols := []string{"a", "b", "c"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := schema.New("t", func(s *schema.Schema) {
				for _, c := range cols {
					s.Column(c).Int(11)
				}
				for i := 0; i < tt.primaries; i++ {
					s.Index(cols[i]).Primary()
				}
			})

			var found []MultiplePrimaryKeys
			for _, err := range Validate(s) {
				if e, ok := err.(MultiplePrimaryKeys); ok {
					found = append(found, e)
				}
			}

			if !tt.wantErr {
				if len(found) != 0 {
					t.Errorf("Expected no primary key error, got %v", found)
				}
				return
			}
			if len(found) != 1 {
				t.Fatalf("Expected exactly one primary key error, got %d", len(found))
			}
			if found[0].Count != tt.primaries {
				t.Errorf("Expected count %d, got %d", tt.primaries, found[0].Count)
			}
		})
	}
}

func TestValidateIndexColumnMissing(t *testing.T) {
	s := schema.New("t", func(s *schema.Schema) {
		s.Column("a").Int(11)
		s.Index("a")
		s.Index("b", "ix_combo").Unique()
	})

	errs := Validate(s)
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %v", Messages(errs))
	}
	e, ok := errs[0].(IndexColumnMissing)
	if !ok {
		t.Fatalf("Expected IndexColumnMissing, got %T", errs[0])
	}
	if e.KeyName != "ix_combo" || e.Column != "b" {
		t.Errorf("Unexpected error %+v", e)
	}
}

func TestValidateForeignKeys(t *testing.T) {
	tests := []struct {
		name      string
		column    string
		refTable  string
		refColumn string
		want      []ValidationError
	}{
		{
			name:      "complete",
			column:    "user_id",
			refTable:  "users",
			refColumn: "id",
		},
		{
			name:   "missing both references",
			column: "user_id",
			want:   []ValidationError{ForeignKeyReferenceMissing{KeyName: "fk_user_id"}},
		},
		{
			name:     "missing reference column",
			column:   "user_id",
			refTable: "users",
			want:     []ValidationError{ForeignKeyReferenceMissing{KeyName: "fk_user_id"}},
		},
		{
			name:      "missing reference table",
			column:    "user_id",
			refColumn: "id",
			want:      []ValidationError{ForeignKeyReferenceMissing{KeyName: "fk_user_id"}},
		},
		{
			name:      "missing local column",
			column:    "owner_id",
			refTable:  "users",
			refColumn: "id",
			want:      []ValidationError{ForeignKeyColumnMissing{KeyName: "fk_owner_id", Column: "owner_id"}},
		},
		{
			name:   "missing everything",
			column: "owner_id",
			want: []ValidationError{
				ForeignKeyColumnMissing{KeyName: "fk_owner_id", Column: "owner_id"},
				ForeignKeyReferenceMissing{KeyName: "fk_owner_id"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := schema.New("orders", func(s *schema.Schema) {
				s.Column("user_id").UnsignedInt(11)
				s.ForeignKey(tt.column).ReferenceTable(tt.refTable).ReferenceColumn(tt.refColumn)
			})

			errs := Validate(s)
			if len(errs) != len(tt.want) {
				t.Fatalf("Expected %d errors, got %v", len(tt.want), Messages(errs))
			}
			for i := range errs {
				if errs[i] != tt.want[i] {
					t.Errorf("Expected %v, got %v", tt.want[i], errs[i])
				}
			}
		})
	}
}

func TestValidateAccumulates(t *testing.T) {
	s := schema.New("t", func(s *schema.Schema) {
		s.Column("a")
		s.Column("b").Int(11)
		s.Index("a").Primary()
		s.Index("b").Primary()
		s.Index("c")
		s.ForeignKey("d")
	})

	errs := Validate(s)
	want := []ValidationError{
		ColumnMissingType{Column: "a"},
		MultiplePrimaryKeys{Count: 2},
		IndexColumnMissing{KeyName: "ix_c", Column: "c"},
		ForeignKeyColumnMissing{KeyName: "fk_d", Column: "d"},
		ForeignKeyReferenceMissing{KeyName: "fk_d"},
	}
	if len(errs) != len(want) {
		t.Fatalf("Expected %d errors, got %v", len(want), Messages(errs))
	}
	for i := range want {
		if errs[i] != want[i] {
			t.Errorf("Error %d: expected %v, got %v", i, want[i], errs[i])
		}
	}
}
