package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nfrund/goby-db/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the configuration over HTTP",
		Long: `Start a read-only HTTP server exposing the configuration:

  GET /health
  GET /schema                 schema document (JSON)
  GET /schema/tables/:name    single table document
  GET /schema/surql           SurrealQL statements
  GET /schema/sql             SQLite statements

The address defaults to SERVER_ADDR, or :8080.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Config().GetServerAddr()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := server.New(app.Schema)
			s.RegisterRoutes()
			return s.Start(ctx, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address")
	return cmd
}
