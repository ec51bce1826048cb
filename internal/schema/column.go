package schema

// Column is a named, typed field of a table. Columns are values; once
// built by one of the constructors they never change.
type Column struct {
	name       string
	kind       ColumnType
	primaryKey bool
	optional   bool
	unique     bool
	deprecated bool
	multiline  bool
}

// ColumnOption configures a column at declaration time.
type ColumnOption func(*Column)

// PrimaryKey marks the column whose values identify each row.
func PrimaryKey() ColumnOption {
	return func(c *Column) { c.primaryKey = true }
}

// Optional allows the column to hold no value.
func Optional() ColumnOption {
	return func(c *Column) { c.optional = true }
}

// Unique requires every row to hold a distinct value.
func Unique() ColumnOption {
	return func(c *Column) { c.unique = true }
}

// Deprecated keeps the column in storage but hides it from new code.
func Deprecated() ColumnOption {
	return func(c *Column) { c.deprecated = true }
}

// Multiline hints that a text column holds multi-line content.
func Multiline() ColumnOption {
	return func(c *Column) { c.multiline = true }
}

func newColumn(name string, kind ColumnType, opts []ColumnOption) Column {
	c := Column{name: name, kind: kind}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Number declares a numeric column.
func Number(name string, opts ...ColumnOption) Column {
	return newColumn(name, TypeNumber, opts)
}

// Text declares a text column.
func Text(name string, opts ...ColumnOption) Column {
	return newColumn(name, TypeText, opts)
}

// Date declares a date column.
func Date(name string, opts ...ColumnOption) Column {
	return newColumn(name, TypeDate, opts)
}

// Boolean declares a boolean column.
func Boolean(name string, opts ...ColumnOption) Column {
	return newColumn(name, TypeBoolean, opts)
}

// JSON declares a column holding an arbitrary JSON value.
func JSON(name string, opts ...ColumnOption) Column {
	return newColumn(name, TypeJSON, opts)
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Type returns the column type.
func (c Column) Type() ColumnType { return c.kind }

// PrimaryKey reports whether the column is the table's primary key.
func (c Column) PrimaryKey() bool { return c.primaryKey }

// Optional reports whether the column may be empty.
func (c Column) Optional() bool { return c.optional }

// Unique reports whether values must be distinct across rows.
func (c Column) Unique() bool { return c.unique }

// Deprecated reports whether the column is deprecated.
func (c Column) Deprecated() bool { return c.deprecated }

// Multiline reports whether a text column is multi-line.
func (c Column) Multiline() bool { return c.multiline }

// String returns the column name for easy debugging.
func (c Column) String() string { return c.name }
