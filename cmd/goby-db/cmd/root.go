package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/goby-db/internal/config"
	"github.com/nfrund/goby-db/internal/db"
	"github.com/nfrund/goby-db/internal/logging"
	"github.com/nfrund/goby-db/internal/schema"
)

// App carries what the commands operate on.
type App struct {
	Fs     afero.Fs
	Schema *schema.Config
	Config func() config.Provider
}

func defaultApp() *App {
	return &App{
		Fs:     afero.NewOsFs(),
		Schema: db.Config,
		Config: func() config.Provider { return config.New() },
	}
}

// NewRootCmd builds the command tree for app.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "goby-db",
		Short: "Goby database configuration tool",
		Long: `goby-db inspects and exports the database configuration declared in
internal/db, and pushes it to the storage engine.

Available commands:
  tables     List declared tables
  show       Show the columns of a table
  export     Write the configuration as JSON, YAML, SurrealQL or SQL
  check      Compare a schema document with the declared configuration
  apply      Push SurrealQL definitions to SurrealDB
  serve      Serve the configuration over HTTP
  version    Print the version

Use "goby-db [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.New(cmd.ErrOrStderr())
		},
	}

	rootCmd.AddCommand(
		newTablesCmd(app),
		newShowCmd(app),
		newExportCmd(app),
		newCheckCmd(app),
		newApplyCmd(app),
		newServeCmd(app),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd(defaultApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
