package schema

// Referential actions accepted by OnUpdate and OnDelete.
const (
	Cascade  = "CASCADE"
	SetNull  = "SET NULL"
	Restrict = "RESTRICT"
	NoAction = "NO ACTION"
)

// ForeignKeyDef describes a single column reference to another table.
type ForeignKeyDef struct {
	KeyName         string
	Column          string
	ReferenceTable  string
	ReferenceColumn string
	OnUpdate        string
	OnDelete        string
}

// ForeignKey configures a ForeignKeyDef.
type ForeignKey struct {
	def ForeignKeyDef
}

func newForeignKey(column, keyName string) *ForeignKey {
	if keyName == "" {
		keyName = "fk_" + column
	}
	return &ForeignKey{def: ForeignKeyDef{KeyName: keyName, Column: column}}
}

// Def returns a copy of the foreign key definition.
func (f *ForeignKey) Def() ForeignKeyDef {
	return f.def
}

func (f *ForeignKey) ReferenceTable(table string) *ForeignKey {
	f.def.ReferenceTable = table
	return f
}

func (f *ForeignKey) ReferenceColumn(column string) *ForeignKey {
	f.def.ReferenceColumn = column
	return f
}

// References sets both the referenced table and column.
func (f *ForeignKey) References(table, column string) *ForeignKey {
	return f.ReferenceTable(table).ReferenceColumn(column)
}

func (f *ForeignKey) OnUpdate(action string) *ForeignKey {
	f.def.OnUpdate = action
	return f
}

func (f *ForeignKey) OnDelete(action string) *ForeignKey {
	f.def.OnDelete = action
	return f
}
