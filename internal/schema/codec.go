package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Document is the serialized form of a Config.
type Document struct {
	Tables []TableDocument `json:"tables" yaml:"tables" validate:"dive"`
}

// TableDocument is the serialized form of a Table.
type TableDocument struct {
	Name    string           `json:"name" yaml:"name" validate:"required"`
	Columns []ColumnDocument `json:"columns" yaml:"columns" validate:"dive"`
}

// ColumnDocument is the serialized form of a Column.
type ColumnDocument struct {
	Name       string     `json:"name" yaml:"name" validate:"required"`
	Type       ColumnType `json:"type" yaml:"type" validate:"required,oneof=number text date boolean json"`
	PrimaryKey bool       `json:"primaryKey,omitempty" yaml:"primaryKey,omitempty"`
	Optional   bool       `json:"optional,omitempty" yaml:"optional,omitempty"`
	Unique     bool       `json:"unique,omitempty" yaml:"unique,omitempty"`
	Deprecated bool       `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Multiline  bool       `json:"multiline,omitempty" yaml:"multiline,omitempty"`
}

// Format selects the document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user supplied format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", &SchemaError{
		Kind:    ErrorUnknownFormat,
		Message: fmt.Sprintf("unsupported format %q", s),
		Cause:   ErrUnknownFormat,
	}
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", &SchemaError{
			Kind:    ErrorUnknownFormat,
			Message: fmt.Sprintf("cannot infer format of %q", path),
			Cause:   ErrUnknownFormat,
		}
	}
	return ParseFormat(ext)
}

var validate = validator.New()

// Document returns the serialized form of the configuration.
func (c *Config) Document() Document {
	doc := Document{Tables: make([]TableDocument, 0, len(c.tables))}
	for _, t := range c.tables {
		td := TableDocument{
			Name:    t.name,
			Columns: make([]ColumnDocument, 0, len(t.columns)),
		}
		for _, col := range t.columns {
			td.Columns = append(td.Columns, ColumnDocument{
				Name:       col.name,
				Type:       col.kind,
				PrimaryKey: col.primaryKey,
				Optional:   col.optional,
				Unique:     col.unique,
				Deprecated: col.deprecated,
				Multiline:  col.multiline,
			})
		}
		doc.Tables = append(doc.Tables, td)
	}
	return doc
}

// FromDocument rebuilds a Config from its serialized form. It rejects
// documents with missing names, unknown column types, duplicated names or
// more than one primary key per table.
func FromDocument(doc Document) (*Config, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, &SchemaError{
			Kind:    ErrorInvalidDocument,
			Message: "invalid schema document",
			Cause:   err,
		}
	}

	seenTables := make(map[string]struct{}, len(doc.Tables))
	tables := make([]*Table, 0, len(doc.Tables))
	for _, td := range doc.Tables {
		if _, dup := seenTables[td.Name]; dup {
			return nil, &SchemaError{
				Kind:    ErrorDuplicateName,
				Table:   td.Name,
				Message: "table declared more than once",
			}
		}
		seenTables[td.Name] = struct{}{}

		seenCols := make(map[string]struct{}, len(td.Columns))
		cols := make([]Column, 0, len(td.Columns))
		var primaryKey string
		for _, cd := range td.Columns {
			if _, dup := seenCols[cd.Name]; dup {
				return nil, &SchemaError{
					Kind:    ErrorDuplicateName,
					Table:   td.Name,
					Column:  cd.Name,
					Message: "column declared more than once",
				}
			}
			seenCols[cd.Name] = struct{}{}
			if cd.PrimaryKey {
				if primaryKey != "" {
					return nil, &SchemaError{
						Kind:    ErrorInvalidDocument,
						Table:   td.Name,
						Column:  cd.Name,
						Message: "primary key already declared on " + primaryKey,
					}
				}
				primaryKey = cd.Name
			}
			cols = append(cols, Column{
				name:       cd.Name,
				kind:       cd.Type,
				primaryKey: cd.PrimaryKey,
				optional:   cd.Optional,
				unique:     cd.Unique,
				deprecated: cd.Deprecated,
				multiline:  cd.Multiline,
			})
		}
		tables = append(tables, DefineTable(td.Name, cols...))
	}
	return DefineDB(tables...), nil
}

// Encode writes the configuration to w in the given format.
func Encode(w io.Writer, c *Config, format Format) error {
	doc := c.Document()
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json document: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml document: %w", err)
		}
		return enc.Close()
	}
	return &SchemaError{
		Kind:    ErrorUnknownFormat,
		Message: fmt.Sprintf("unsupported format %q", format),
		Cause:   ErrUnknownFormat,
	}
}

// Decode reads a document in the given format and rebuilds the Config.
func Decode(r io.Reader, format Format) (*Config, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, decodeError(err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, decodeError(err)
		}
	default:
		return nil, &SchemaError{
			Kind:    ErrorUnknownFormat,
			Message: fmt.Sprintf("unsupported format %q", format),
			Cause:   ErrUnknownFormat,
		}
	}
	return FromDocument(doc)
}

func decodeError(err error) error {
	return &SchemaError{
		Kind:    ErrorInvalidDocument,
		Message: "failed to parse schema document",
		Cause:   err,
	}
}
