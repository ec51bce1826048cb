package schema

import (
	"errors"
	"fmt"
)

// ColumnType identifies the kind of value a column stores.
type ColumnType string

const (
	TypeNumber  ColumnType = "number"
	TypeText    ColumnType = "text"
	TypeDate    ColumnType = "date"
	TypeBoolean ColumnType = "boolean"
	TypeJSON    ColumnType = "json"
)

// String returns the column type name.
func (t ColumnType) String() string {
	return string(t)
}

// Valid reports whether t is one of the known column types.
func (t ColumnType) Valid() bool {
	switch t {
	case TypeNumber, TypeText, TypeDate, TypeBoolean, TypeJSON:
		return true
	}
	return false
}

// Sentinel errors that can be checked with errors.Is.
var (
	ErrTableNotFound = errors.New("table not found")
	ErrUnknownFormat = errors.New("unknown document format")
)

// ErrorKind classifies a SchemaError.
type ErrorKind string

const (
	ErrorInvalidDocument ErrorKind = "invalid_document"
	ErrorDuplicateName   ErrorKind = "duplicate_name"
	ErrorUnknownFormat   ErrorKind = "unknown_format"
)

// SchemaError is returned when a schema document cannot be turned back
// into a Config.
type SchemaError struct {
	Kind    ErrorKind `json:"kind"`
	Table   string    `json:"table,omitempty"`
	Column  string    `json:"column,omitempty"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	msg := e.Message
	switch {
	case e.Table != "" && e.Column != "":
		msg = fmt.Sprintf("%s (%s.%s)", msg, e.Table, e.Column)
	case e.Table != "":
		msg = fmt.Sprintf("%s (%s)", msg, e.Table)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}
