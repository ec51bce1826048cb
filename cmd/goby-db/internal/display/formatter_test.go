package display

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/goby-db/internal/db"
	"github.com/nfrund/goby-db/internal/schema"
)

func TestTablesTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TablesTable(&buf, db.Config))

	out := buf.String()
	assert.Contains(t, out, "TABLE")
	assert.Regexp(t, `Message\s+id\s+id, created, content`, out)
}

func TestTablesTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TablesTable(&buf, schema.DefineDB()))
	assert.Contains(t, buf.String(), "No tables declared")
}

func TestTablesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TablesJSON(&buf, db.Config))

	var out struct {
		Tables []TableSummary `json:"tables"`
		Count  int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, TableSummary{
		Name:       "Message",
		PrimaryKey: "id",
		Columns:    []string{"id", "created", "content"},
	}, out.Tables[0])
}

func TestTableDetails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TableDetails(&buf, db.Message))

	out := buf.String()
	assert.Contains(t, out, "Table: Message")
	assert.Regexp(t, `id\s+number\s+primary key`, out)
	assert.Regexp(t, `created\s+date\s+-`, out)
	assert.Regexp(t, `content\s+text\s+-`, out)
}

func TestTableDetailsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TableDetailsJSON(&buf, db.Message))

	var doc schema.TableDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, db.Config.Document().Tables[0], doc)
}

func TestFlags(t *testing.T) {
	assert.Equal(t, "-", flags(schema.Text("a")))
	assert.Equal(t, "optional, unique, multiline", flags(schema.Text("a", schema.Optional(), schema.Unique(), schema.Multiline())))
}
