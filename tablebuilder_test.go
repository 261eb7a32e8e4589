package tablebuilder

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tordrt/tablebuilder/internal/schema"
)

func usersSchema() *Schema {
	return NewSchema("users", func(s *Schema) {
		s.Prefix("wp_")
		s.Column("id").UnsignedInt(11).AutoIncrement()
		s.Column("email").Varchar(255)
		s.Index("id").Primary()
		s.Index("email").Unique()
	})
}

func TestParseDatabaseURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantType string
		wantConn string
		wantErr  bool
	}{
		{"postgres", "postgres://u:p@localhost:5432/app", "postgres", "postgres://u:p@localhost:5432/app", false},
		{"postgresql", "postgresql://localhost/app", "postgres", "postgresql://localhost/app", false},
		{"mysql", "mysql://u:p@tcp(localhost:3306)/app", "mysql", "u:p@tcp(localhost:3306)/app", false},
		{"sqlite", "sqlite://data/app.db", "sqlite", "data/app.db", false},
		{"empty", "", "", "", true},
		{"invalid scheme", "oracle://localhost", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbType, conn, err := parseDatabaseURL(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if dbType != tt.wantType {
				t.Errorf("Expected type %s, got %s", tt.wantType, dbType)
			}
			if conn != tt.wantConn {
				t.Errorf("Expected connection %s, got %s", tt.wantConn, conn)
			}
		})
	}
}

func TestCreateTableSQL(t *testing.T) {
	got, err := CreateTableSQL(usersSchema(), "mysql")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := "CREATE TABLE wp_users (\n" +
		"id INT(11) UNSIGNED NOT NULL AUTO_INCREMENT,\n" +
		"email VARCHAR(255) NOT NULL,\n" +
		"PRIMARY KEY (id),\n" +
		"UNIQUE INDEX ix_email (email)\n" +
		");"
	if got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestDropTableSQL(t *testing.T) {
	got, err := DropTableSQL(usersSchema(), "postgres")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "DROP TABLE IF EXISTS wp_users;" {
		t.Errorf("Expected drop statement, got %s", got)
	}
}

func TestCreateTableSQLUnknownDialect(t *testing.T) {
	if _, err := CreateTableSQL(usersSchema(), "oracle"); err == nil {
		t.Error("Expected error for unknown dialect")
	}
}

func TestErrorCodes(t *testing.T) {
	invalid := NewSchema("broken", func(s *Schema) {
		s.Column("id")
	})

	_, err := CreateTableSQL(invalid, "mysql")
	if code := ErrorCode(err); code != 201 {
		t.Errorf("Expected code 201, got %d (%v)", code, err)
	}

	err = invalid.RemoveColumn("missing")
	if code := ErrorCode(err); code != 1 {
		t.Errorf("Expected code 1, got %d", code)
	}
	if !errors.Is(err, schema.ErrColumnNotFound) {
		t.Errorf("Expected ErrColumnNotFound, got %v", err)
	}

	_, err = invalid.GetColumn("missing")
	if code := ErrorCode(err); code != 301 {
		t.Errorf("Expected code 301, got %d", code)
	}

	if code := ErrorCode(nil); code != 0 {
		t.Errorf("Expected code 0 for nil, got %d", code)
	}
}

func TestValidate(t *testing.T) {
	if errs := Validate(usersSchema()); len(errs) != 0 {
		t.Errorf("Expected no validation errors, got %v", errs)
	}

	s := NewSchema("t", func(s *Schema) {
		s.Column("a").Int(11)
		s.Column("b").Int(11)
		s.Index("a").Primary()
		s.Index("b").Primary()
	})
	if errs := Validate(s); len(errs) != 1 {
		t.Errorf("Expected 1 validation error, got %d", len(errs))
	}
}

func TestOpenDryRun(t *testing.T) {
	var buf bytes.Buffer
	b, err := Open(context.Background(), "mysql://u:p@tcp(localhost:3306)/app", &Options{
		Collation: "utf8mb4_unicode_ci",
		DryRun:    &buf,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer b.Close()

	if b.Dialect() != "mysql" {
		t.Errorf("Expected mysql dialect, got %s", b.Dialect())
	}

	ctx := context.Background()
	if err := b.CreateTable(ctx, usersSchema()); err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}
	if err := b.DropTable(ctx, usersSchema()); err != nil {
		t.Fatalf("DropTable failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, ") COLLATE utf8mb4_unicode_ci;") {
		t.Errorf("Expected collation trailer in output, got:\n%s", out)
	}
	if !strings.Contains(out, "DROP TABLE IF EXISTS wp_users;") {
		t.Errorf("Expected drop statement in output, got:\n%s", out)
	}
}

func TestChecksumTracksDDL(t *testing.T) {
	b, err := NewDryRun("sqlite", nil, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	first, err := b.Checksum(usersSchema())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	again, _ := b.Checksum(usersSchema())
	if first != again {
		t.Errorf("Expected stable checksum, got %s and %s", first, again)
	}

	changed := usersSchema()
	changed.Column("name").Varchar(100).Nullable()
	other, _ := b.Checksum(changed)
	if first == other {
		t.Error("Expected checksum to change with the schema")
	}
}
