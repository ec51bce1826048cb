package schema

import "fmt"

// Config is the database configuration object handed to the framework.
// It holds the declared tables in declaration order.
type Config struct {
	tables []*Table
}

// DefineDB wires the given tables into a database configuration.
func DefineDB(tables ...*Table) *Config {
	ts := make([]*Table, 0, len(tables))
	for _, t := range tables {
		if t != nil {
			ts = append(ts, t)
		}
	}
	return &Config{tables: ts}
}

// Tables returns the declared tables in declaration order.
func (c *Config) Tables() []*Table {
	ts := make([]*Table, len(c.tables))
	copy(ts, c.tables)
	return ts
}

// TableNames returns the table names in declaration order.
func (c *Config) TableNames() []string {
	names := make([]string, 0, len(c.tables))
	for _, t := range c.tables {
		names = append(names, t.name)
	}
	return names
}

// Table looks up a table by name.
func (c *Config) Table(name string) (*Table, bool) {
	for _, t := range c.tables {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}

// LookupTable is like Table but returns an error wrapping ErrTableNotFound.
func (c *Config) LookupTable(name string) (*Table, error) {
	t, ok := c.Table(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	return t, nil
}
