package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/goby-db/internal/middleware"
	"github.com/nfrund/goby-db/internal/schema"
)

// SchemaHandler exposes a database configuration over HTTP, read-only.
type SchemaHandler struct {
	cfg *schema.Config
}

// NewSchemaHandler creates a new SchemaHandler.
func NewSchemaHandler(cfg *schema.Config) *SchemaHandler {
	return &SchemaHandler{cfg: cfg}
}

// Document returns the whole configuration as a schema document.
func (h *SchemaHandler) Document(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cfg.Document())
}

// Table returns the document of a single table.
func (h *SchemaHandler) Table(c echo.Context) error {
	name := c.Param("name")
	table, err := h.cfg.LookupTable(name)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Debug("Unknown table requested", "table", name)
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    "table_not_found",
			Message: "no table named " + name,
		})
	}

	doc := schema.DefineDB(table).Document()
	return c.JSON(http.StatusOK, doc.Tables[0])
}

// Statements returns the configuration rendered in the dialect named by
// the :dialect path parameter.
func (h *SchemaHandler) Statements(c echo.Context) error {
	stmts, err := schema.Render(h.cfg, schema.Dialect(c.Param("dialect")))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    "unknown_dialect",
			Message: err.Error(),
		})
	}
	return c.String(http.StatusOK, strings.Join(stmts, "\n")+"\n")
}
