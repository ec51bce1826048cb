package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nfrund/goby-db/internal/schema"
)

func TestDiff(t *testing.T) {
	want := schema.DefineDB(schema.DefineTable("Message",
		schema.Number("id", schema.PrimaryKey()),
		schema.Date("created"),
		schema.Text("content"),
	))

	t.Run("identical", func(t *testing.T) {
		same := schema.DefineDB(schema.DefineTable("Message",
			schema.Number("id", schema.PrimaryKey()),
			schema.Date("created"),
			schema.Text("content"),
		))
		assert.Empty(t, schema.Diff(want, same))
	})

	t.Run("changed type and flags", func(t *testing.T) {
		got := schema.DefineDB(schema.DefineTable("Message",
			schema.Number("id"),
			schema.Text("created"),
			schema.Text("content"),
		))
		assert.Equal(t, []string{
			"column Message.id: declared number, primary key, found number",
			"column Message.created: declared date, found text",
		}, schema.Diff(want, got))
	})

	t.Run("missing and extra columns", func(t *testing.T) {
		got := schema.DefineDB(schema.DefineTable("Message",
			schema.Number("id", schema.PrimaryKey()),
			schema.Date("created"),
			schema.Text("body"),
		))
		assert.Equal(t, []string{
			"column Message.content: missing",
			"column Message.body: not declared",
		}, schema.Diff(want, got))
	})

	t.Run("reordered columns", func(t *testing.T) {
		got := schema.DefineDB(schema.DefineTable("Message",
			schema.Date("created"),
			schema.Number("id", schema.PrimaryKey()),
			schema.Text("content"),
		))
		assert.Equal(t, []string{
			"column Message.id: position 0 holds created",
			"column Message.created: position 1 holds id",
		}, schema.Diff(want, got))
	})

	t.Run("missing and extra tables", func(t *testing.T) {
		got := schema.DefineDB(schema.DefineTable("Post", schema.Text("id", schema.PrimaryKey())))
		assert.Equal(t, []string{
			"table Message: missing",
			"table Post: not declared",
		}, schema.Diff(want, got))
	})
}
