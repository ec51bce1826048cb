// Package db holds the application's database configuration.
package db

import "github.com/nfrund/goby-db/internal/schema"

// Message stores chat messages.
var Message = schema.DefineTable("Message",
	schema.Number("id", schema.PrimaryKey()),
	schema.Date("created"),
	schema.Text("content"),
)

// Config is the database configuration read by the framework.
var Config = schema.DefineDB(Message)
