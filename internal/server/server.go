package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/goby-db/internal/handlers"
	"github.com/nfrund/goby-db/internal/middleware"
	"github.com/nfrund/goby-db/internal/schema"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E             *echo.Echo
	schemaHandler *handlers.SchemaHandler
}

// New creates a new Server serving the given database configuration.
func New(dbCfg *schema.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)

	return &Server{
		E:             e,
		schemaHandler: handlers.NewSchemaHandler(dbCfg),
	}
}

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	g := s.E.Group("/schema")
	g.GET("", s.schemaHandler.Document)
	g.GET("/tables/:name", s.schemaHandler.Table)
	g.GET("/:dialect", s.schemaHandler.Statements)
}
