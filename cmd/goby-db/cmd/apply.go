package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nfrund/goby-db/internal/database"
	"github.com/nfrund/goby-db/internal/schema"
)

func newApplyCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Push SurrealQL definitions to SurrealDB",
		Long: `Render the configuration as SurrealQL and run the statements against the
SurrealDB instance named by SURREAL_URL, SURREAL_NS and SURREAL_DB
(SURREAL_USER and SURREAL_PASS for authentication).

Definitions use OVERWRITE, so running apply again is safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			statements := schema.RenderSurrealQL(app.Schema)

			if dryRun {
				for _, stmt := range statements {
					fmt.Fprintln(cmd.OutOrStdout(), stmt)
				}
				return nil
			}

			cfg := app.Config()
			ctx := cmd.Context()

			conn, err := database.NewDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer conn.Close(ctx)

			applier, err := database.NewApplier(database.NewSurrealExecutor(conn), cfg.GetDBExecuteTimeout())
			if err != nil {
				return err
			}

			n, err := applier.Apply(ctx, statements)
			if err != nil {
				slog.ErrorContext(ctx, "Failed to apply schema", "applied", n, "error", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d statements to %s/%s\n", n, cfg.GetDBNs(), cfg.GetDBDb())
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the statements without connecting")
	return cmd
}
