package translator

import (
	"reflect"
	"testing"

	"github.com/tordrt/tablebuilder/internal/schema"
)

func TestSQLiteRowidAlias(t *testing.T) {
	s := schema.New("users", func(s *schema.Schema) {
		s.Column("id").UnsignedInt(11).AutoIncrement()
		s.Column("email").Varchar(255)
		s.Column("score").Float(5, 2).DefaultValue("0")
		s.Index("id").Primary()
		s.Index("email").Unique()
		s.Index("score")
		s.Index("email", "ft_email").FullText()
	})

	d := SQLiteDialect{}
	wantCols := []string{
		"id INTEGER PRIMARY KEY AUTOINCREMENT",
		"email VARCHAR(255) NOT NULL",
		"score FLOAT(5,2) NOT NULL DEFAULT 0",
	}
	if got := d.Columns(s); !reflect.DeepEqual(got, wantCols) {
		t.Errorf("Expected %v, got %v", wantCols, got)
	}
	if got := d.PrimaryKey(s); len(got) != 0 {
		t.Errorf("Expected no separate primary key clause, got %v", got)
	}
	if got := d.Indexes(s); !reflect.DeepEqual(got, []string{"CONSTRAINT users_ix_email UNIQUE (email)"}) {
		t.Errorf("Unexpected inline indexes %v", got)
	}

	wantStmts := []string{
		"CREATE INDEX IF NOT EXISTS users_ix_score ON users (score)",
		"CREATE INDEX IF NOT EXISTS users_ft_email ON users (email)",
	}
	if got := d.Statements(s); !reflect.DeepEqual(got, wantStmts) {
		t.Errorf("Expected %v, got %v", wantStmts, got)
	}
}

func TestSQLitePrimaryKeyWithoutAutoIncrement(t *testing.T) {
	s := schema.New("tags", func(s *schema.Schema) {
		s.Column("code").Varchar(10)
		s.Column("seq").Int(11).AutoIncrement()
		s.Index("code").Primary()
	})

	d := SQLiteDialect{}
	wantCols := []string{
		"code VARCHAR(10) NOT NULL",
		"seq INT(11) NOT NULL",
	}
	if got := d.Columns(s); !reflect.DeepEqual(got, wantCols) {
		t.Errorf("Expected %v, got %v", wantCols, got)
	}
	if got := d.PrimaryKey(s); !reflect.DeepEqual(got, []string{"PRIMARY KEY (code)"}) {
		t.Errorf("Unexpected primary key %v", got)
	}
}
