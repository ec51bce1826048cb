package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/goby-db/internal/db"
	"github.com/nfrund/goby-db/internal/handlers"
	"github.com/nfrund/goby-db/internal/schema"
)

func setupSchemaTest() *echo.Echo {
	e := echo.New()
	h := handlers.NewSchemaHandler(db.Config)
	e.GET("/schema", h.Document)
	e.GET("/schema/tables/:name", h.Table)
	e.GET("/schema/:dialect", h.Statements)
	return e
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSchemaHandler_Document(t *testing.T) {
	rec := serve(setupSchemaTest(), "/schema")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc schema.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, db.Config.Document(), doc)
}

func TestSchemaHandler_Table(t *testing.T) {
	e := setupSchemaTest()

	t.Run("known table", func(t *testing.T) {
		rec := serve(e, "/schema/tables/Message")
		require.Equal(t, http.StatusOK, rec.Code)

		var table schema.TableDocument
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
		assert.Equal(t, "Message", table.Name)
		require.Len(t, table.Columns, 3)
		assert.Equal(t, schema.ColumnDocument{Name: "id", Type: schema.TypeNumber, PrimaryKey: true}, table.Columns[0])
		assert.Equal(t, schema.ColumnDocument{Name: "created", Type: schema.TypeDate}, table.Columns[1])
		assert.Equal(t, schema.ColumnDocument{Name: "content", Type: schema.TypeText}, table.Columns[2])
	})

	t.Run("unknown table", func(t *testing.T) {
		rec := serve(e, "/schema/tables/Comment")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "table_not_found", resp.Code)
	})
}

func TestSchemaHandler_Statements(t *testing.T) {
	e := setupSchemaTest()

	tests := []struct {
		dialect string
		status  int
		body    string
	}{
		{
			dialect: "surql",
			status:  http.StatusOK,
			body: "DEFINE TABLE OVERWRITE Message SCHEMAFULL;\n" +
				"DEFINE FIELD OVERWRITE created ON TABLE Message TYPE datetime;\n" +
				"DEFINE FIELD OVERWRITE content ON TABLE Message TYPE string;\n",
		},
		{
			dialect: "sql",
			status:  http.StatusOK,
			body:    `CREATE TABLE IF NOT EXISTS "Message" ("id" integer PRIMARY KEY, "created" text NOT NULL, "content" text NOT NULL);` + "\n",
		},
		{
			dialect: "mysql",
			status:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			rec := serve(e, "/schema/"+tt.dialect)
			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}
