// Package schema provides the declaration API used to describe database
// tables for the Goby data layer.
//
// Tables are declared once, at package initialisation, and handed to the
// framework as an immutable Config:
//
//	var Message = schema.DefineTable("Message",
//		schema.Number("id", schema.PrimaryKey()),
//		schema.Date("created"),
//		schema.Text("content"),
//	)
//
//	var Config = schema.DefineDB(Message)
//
// A Config can be serialized to a Document (JSON or YAML) and read back,
// and rendered into SurrealQL or SQLite statements for the storage engine
// that consumes it. Declaring a table never validates it; only documents
// read back from disk are checked for a well-formed shape.
package schema
