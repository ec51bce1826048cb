package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/goby-db/cmd/goby-db/internal/display"
)

func newTablesCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List declared tables",
		Long: `List every table in the database configuration with its primary key
and columns.

Examples:
  goby-db tables                 # Table format
  goby-db tables --format json   # JSON format`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "table":
				return display.TablesTable(cmd.OutOrStdout(), app.Schema)
			case "json":
				return display.TablesJSON(cmd.OutOrStdout(), app.Schema)
			}
			return fmt.Errorf("unsupported output format '%s'. Use 'table' or 'json'", format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <table>",
		Short: "Show the columns of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := app.Schema.LookupTable(args[0])
			if err != nil {
				return err
			}
			switch format {
			case "table":
				return display.TableDetails(cmd.OutOrStdout(), table)
			case "json":
				return display.TableDetailsJSON(cmd.OutOrStdout(), table)
			}
			return fmt.Errorf("unsupported output format '%s'. Use 'table' or 'json'", format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	return cmd
}
