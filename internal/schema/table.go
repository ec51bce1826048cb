package schema

// Table is a named collection of typed columns.
type Table struct {
	name    string
	columns []Column
}

// DefineTable declares a table with its columns in declaration order.
func DefineTable(name string, columns ...Column) *Table {
	cols := make([]Column, len(columns))
	copy(cols, columns)
	return &Table{name: name, columns: cols}
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Columns returns a copy of the table's columns in declaration order.
func (t *Table) Columns() []Column {
	cols := make([]Column, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		names = append(names, c.name)
	}
	return names
}

// Column looks up a column by name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.columns {
		if c.name == name {
			return c, true
		}
	}
	return Column{}, false
}

// PrimaryKey returns the first column marked as primary key.
func (t *Table) PrimaryKey() (Column, bool) {
	for _, c := range t.columns {
		if c.primaryKey {
			return c, true
		}
	}
	return Column{}, false
}

// String returns the table name for easy debugging.
func (t *Table) String() string {
	return t.name
}
