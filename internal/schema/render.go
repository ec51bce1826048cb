package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// Dialect selects the statement language produced by Render.
type Dialect string

const (
	DialectSurrealQL Dialect = "surql"
	DialectSQLite    Dialect = "sql"
)

// Render produces the statements that define cfg in the given dialect.
func Render(cfg *Config, dialect Dialect) ([]string, error) {
	switch dialect {
	case DialectSurrealQL:
		return RenderSurrealQL(cfg), nil
	case DialectSQLite:
		return RenderSQLite(cfg), nil
	}
	return nil, &SchemaError{
		Kind:    ErrorUnknownFormat,
		Message: fmt.Sprintf("unsupported dialect %q", dialect),
		Cause:   ErrUnknownFormat,
	}
}

var plainIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var surrealTypes = map[ColumnType]string{
	TypeNumber:  "number",
	TypeText:    "string",
	TypeDate:    "datetime",
	TypeBoolean: "bool",
	TypeJSON:    "object",
}

func surrealIdent(name string) string {
	if plainIdent.MatchString(name) {
		return name
	}
	return "`" + strings.ReplaceAll(name, "`", "\\`") + "`"
}

// RenderSurrealQL renders SCHEMAFULL table and field definitions. A
// column named "id" maps onto the SurrealDB record id and gets no field
// of its own; any other primary key is a field with a unique index.
func RenderSurrealQL(cfg *Config) []string {
	var stmts []string
	for _, t := range cfg.tables {
		table := surrealIdent(t.name)
		stmts = append(stmts, fmt.Sprintf("DEFINE TABLE OVERWRITE %s SCHEMAFULL;", table))
		for _, c := range t.columns {
			if c.name == "id" {
				continue
			}
			kind := surrealTypes[c.kind]
			if c.optional {
				kind = "option<" + kind + ">"
			}
			field := surrealIdent(c.name)
			stmts = append(stmts, fmt.Sprintf("DEFINE FIELD OVERWRITE %s ON TABLE %s TYPE %s;", field, table, kind))
			if c.unique || c.primaryKey {
				stmts = append(stmts, fmt.Sprintf("DEFINE INDEX OVERWRITE %s ON TABLE %s FIELDS %s UNIQUE;",
					surrealIdent(t.name+"_"+c.name+"_unique"), table, field))
			}
		}
	}
	return stmts
}

var sqliteTypes = map[ColumnType]string{
	TypeNumber:  "integer",
	TypeText:    "text",
	TypeDate:    "text",
	TypeBoolean: "integer",
	TypeJSON:    "text",
}

func sqliteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// RenderSQLite renders CREATE TABLE statements for SQLite and libSQL.
// Dates are stored as ISO-8601 text. An integer primary key aliases the
// rowid and is never NULL; every other non-optional column is NOT NULL.
func RenderSQLite(cfg *Config) []string {
	stmts := make([]string, 0, len(cfg.tables))
	for _, t := range cfg.tables {
		defs := make([]string, 0, len(t.columns))
		for _, c := range t.columns {
			kind := sqliteTypes[c.kind]
			def := sqliteIdent(c.name) + " " + kind
			rowid := c.primaryKey && kind == "integer"
			if c.primaryKey {
				def += " PRIMARY KEY"
			}
			if !c.optional && !rowid {
				def += " NOT NULL"
			}
			if c.unique && !c.primaryKey {
				def += " UNIQUE"
			}
			defs = append(defs, def)
		}
		stmts = append(stmts, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s);",
			sqliteIdent(t.name), strings.Join(defs, ", ")))
	}
	return stmts
}
