package schema

// ColumnDef is the read-only description of a single table column.
type ColumnDef struct {
	Name string
	// Type is the raw type tag as declared (e.g. "int", "varchar").
	// Translators canonicalise it to upper case.
	Type string
	// Length and Precision are unset when zero.
	Length        int
	Precision     int
	Nullable      bool
	Default       *string
	Unsigned      bool
	AutoIncrement bool
}

// Column configures a ColumnDef through chained setters.
type Column struct {
	def ColumnDef
}

func newColumn(name string) *Column {
	return &Column{def: ColumnDef{Name: name}}
}

// Name returns the column name.
func (c *Column) Name() string {
	return c.def.Name
}

// Def returns a copy of the column definition.
func (c *Column) Def() ColumnDef {
	def := c.def
	if c.def.Default != nil {
		v := *c.def.Default
		def.Default = &v
	}
	return def
}

// Type sets the column type.
func (c *Column) Type(t string) *Column {
	c.def.Type = t
	return c
}

// Length sets the column length.
func (c *Column) Length(n int) *Column {
	c.def.Length = n
	return c
}

// Precision sets the number of decimals for floating and decimal types.
func (c *Column) Precision(n int) *Column {
	c.def.Precision = n
	return c
}

// Nullable marks the column as accepting NULL. Called without arguments it
// sets the flag, otherwise the first argument is used.
func (c *Column) Nullable(b ...bool) *Column {
	c.def.Nullable = flag(b)
	return c
}

// Default sets the default value. A nil value clears it.
func (c *Column) Default(v *string) *Column {
	if v == nil {
		c.def.Default = nil
		return c
	}
	d := *v
	c.def.Default = &d
	return c
}

// DefaultValue is Default for a literal string.
func (c *Column) DefaultValue(v string) *Column {
	return c.Default(&v)
}

// Unsigned marks a numeric column as unsigned.
func (c *Column) Unsigned(b ...bool) *Column {
	c.def.Unsigned = flag(b)
	return c
}

// AutoIncrement marks the column as an identity column.
func (c *Column) AutoIncrement(b ...bool) *Column {
	c.def.AutoIncrement = flag(b)
	return c
}

func flag(b []bool) bool {
	if len(b) == 0 {
		return true
	}
	return b[0]
}
