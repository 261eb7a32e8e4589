package schema

// Shortcuts for the common type families. A zero length, precision or a nil
// default leaves the corresponding attribute untouched.

func (c *Column) withLength(t string, length int) *Column {
	c.Type(t)
	if length > 0 {
		c.Length(length)
	}
	return c
}

func (c *Column) withPrecision(t string, length, precision int) *Column {
	c.withLength(t, length)
	if precision > 0 {
		c.Precision(precision)
	}
	return c
}

func (c *Column) withDefault(t string, def *string) *Column {
	c.Type(t)
	if def != nil {
		c.Default(def)
	}
	return c
}

func (c *Column) Varchar(length int) *Column { return c.withLength("varchar", length) }

func (c *Column) Char(length int) *Column { return c.withLength("char", length) }

func (c *Column) Text(length int) *Column { return c.withLength("text", length) }

func (c *Column) Int(length int) *Column { return c.withLength("int", length) }

func (c *Column) Tinyint(length int) *Column { return c.withLength("tinyint", length) }

func (c *Column) Bigint(length int) *Column { return c.withLength("bigint", length) }

// UnsignedInt sets the column as INT UNSIGNED.
func (c *Column) UnsignedInt(length int) *Column {
	return c.withLength("int", length).Unsigned()
}

// UnsignedMedium sets the column as MEDIUMINT UNSIGNED.
func (c *Column) UnsignedMedium(length int) *Column {
	return c.withLength("mediumint", length).Unsigned()
}

// UnsignedBigint sets the column as BIGINT UNSIGNED.
func (c *Column) UnsignedBigint(length int) *Column {
	return c.withLength("bigint", length).Unsigned()
}

func (c *Column) Float(length, precision int) *Column {
	return c.withPrecision("float", length, precision)
}

func (c *Column) Double(length, precision int) *Column {
	return c.withPrecision("double", length, precision)
}

func (c *Column) Decimal(length, precision int) *Column {
	return c.withPrecision("decimal", length, precision)
}

// Datetime sets the column as DATETIME with an optional default such as
// CURRENT_TIMESTAMP.
func (c *Column) Datetime(def *string) *Column { return c.withDefault("datetime", def) }

// Timestamp sets the column as TIMESTAMP with an optional default.
func (c *Column) Timestamp(def *string) *Column { return c.withDefault("timestamp", def) }

func (c *Column) Json() *Column { return c.Type("json") }

func (c *Column) Blob() *Column { return c.Type("blob") }
