package translator

import (
	"reflect"
	"testing"

	"github.com/tordrt/tablebuilder/internal/schema"
)

func strPtr(s string) *string { return &s }

func TestMySQLColumns(t *testing.T) {
	tests := []struct {
		name  string
		build func(c *schema.Column)
		want  string
	}{
		{
			name:  "unsigned auto increment id",
			build: func(c *schema.Column) { c.UnsignedInt(11).AutoIncrement() },
			want:  "col INT(11) UNSIGNED NOT NULL AUTO_INCREMENT",
		},
		{
			name:  "nullable varchar with default",
			build: func(c *schema.Column) { c.Varchar(255).Nullable().DefaultValue("guest") },
			want:  "col VARCHAR(255) NULL DEFAULT 'guest'",
		},
		{
			name:  "string default with quote",
			build: func(c *schema.Column) { c.Varchar(20).DefaultValue("o'brien") },
			want:  "col VARCHAR(20) NOT NULL DEFAULT 'o''brien'",
		},
		{
			name:  "numeric default unquoted",
			build: func(c *schema.Column) { c.Int(3).DefaultValue("0") },
			want:  "col INT(3) NOT NULL DEFAULT 0",
		},
		{
			name:  "datetime function default",
			build: func(c *schema.Column) { c.Datetime(strPtr("CURRENT_TIMESTAMP")) },
			want:  "col DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP",
		},
		{
			name:  "float with precision",
			build: func(c *schema.Column) { c.Float(10, 2) },
			want:  "col FLOAT(10,2) NOT NULL",
		},
		{
			name:  "precision ignored on integers",
			build: func(c *schema.Column) { c.Int(11).Precision(2) },
			want:  "col INT(11) NOT NULL",
		},
		{
			name:  "json ignores length",
			build: func(c *schema.Column) { c.Json().Length(100) },
			want:  "col JSON NOT NULL",
		},
		{
			name:  "lower case type canonicalised",
			build: func(c *schema.Column) { c.Type("Double Precision").Length(8) },
			want:  "col DOUBLE PRECISION(8) NOT NULL",
		},
		{
			name:  "unknown type verbatim",
			build: func(c *schema.Column) { c.Type("longtext").Length(10) },
			want:  "col LONGTEXT NOT NULL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := schema.New("t", func(s *schema.Schema) {
				tt.build(s.Column("col"))
			})
			got := MySQLDialect{}.Columns(s)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMySQLPrimaryKey(t *testing.T) {
	s := schema.New("users", func(s *schema.Schema) {
		s.Column("id").UnsignedInt(11).AutoIncrement()
		s.Column("email").Varchar(255)
		s.Index("id").Primary()
	})

	d := MySQLDialect{}
	cols := d.Columns(s)
	if cols[0] != "id INT(11) UNSIGNED NOT NULL AUTO_INCREMENT" {
		t.Errorf("Unexpected id clause %q", cols[0])
	}
	if pk := d.PrimaryKey(s); !reflect.DeepEqual(pk, []string{"PRIMARY KEY (id)"}) {
		t.Errorf("Expected PRIMARY KEY (id), got %v", pk)
	}
	if idx := d.Indexes(s); len(idx) != 0 {
		t.Errorf("Expected primary index excluded from secondary indexes, got %v", idx)
	}
}

func TestMySQLIndexGrouping(t *testing.T) {
	s := schema.New("t", func(s *schema.Schema) {
		s.Column("col1").Int(11)
		s.Column("col2").Int(11)
		s.Column("body").Text(0)
		s.Column("slug").Varchar(50)
		s.Index("col1", "uq_pair").Unique()
		s.Index("slug")
		s.Index("col2", "uq_pair").Unique()
		s.Index("body", "ft_body").FullText()
		s.Index("col1", "uq_pair")
	})

	want := []string{
		"UNIQUE INDEX uq_pair (col1, col2)",
		"INDEX ix_slug (slug)",
		"FULLTEXT INDEX ft_body (body)",
		"INDEX uq_pair (col1)",
	}
	if got := (MySQLDialect{}).Indexes(s); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestMySQLForeignKeys(t *testing.T) {
	s := schema.New("orders", func(s *schema.Schema) {
		s.Column("user_id").UnsignedInt(11)
		s.Column("product_id").UnsignedInt(11)
		s.ForeignKey("user_id").References("users", "id").OnUpdate(schema.Cascade).OnDelete(schema.SetNull)
		s.ForeignKey("product_id", "fk_product").References("products", "id")
	})

	want := []string{
		"FOREIGN KEY fk_user_id(user_id) REFERENCES users(id) ON UPDATE CASCADE ON DELETE SET NULL",
		"FOREIGN KEY fk_product(product_id) REFERENCES products(id)",
	}
	if got := (MySQLDialect{}).ForeignKeys(s); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBodyOrderAndPurity(t *testing.T) {
	s := schema.New("t", func(s *schema.Schema) {
		s.Column("id").Int(11).AutoIncrement()
		s.Column("parent").Int(11).Nullable()
		s.Index("parent")
		s.Index("id").Primary()
		s.ForeignKey("parent").References("t", "id")
	})

	want := []string{
		"id INT(11) NOT NULL AUTO_INCREMENT",
		"parent INT(11) NULL",
		"PRIMARY KEY (id)",
		"INDEX ix_parent (parent)",
		"FOREIGN KEY fk_parent(parent) REFERENCES t(id)",
	}
	first := Body(MySQLDialect{}, s)
	second := Body(MySQLDialect{}, s)
	if !reflect.DeepEqual(first, want) {
		t.Errorf("Expected %v, got %v", want, first)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical output on repeated translation, got %v and %v", first, second)
	}
}

func TestForName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "mysql", want: MySQL},
		{name: "MariaDB", want: MySQL},
		{name: "postgresql", want: Postgres},
		{name: "sqlite3", want: SQLite},
		{name: "oracle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ForName(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if d.Name() != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, d.Name())
			}
		})
	}
}
