package cmd

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nfrund/goby-db/internal/schema"
	"github.com/nfrund/goby-db/internal/storage"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configuration as JSON, YAML, SurrealQL or SQL",
		Long: `Export the database configuration.

Formats:
  json   schema document (default)
  yaml   schema document
  surql  SurrealQL DEFINE statements
  sql    SQLite / libSQL CREATE TABLE statements

Examples:
  goby-db export                               # JSON document on stdout
  goby-db export --format yaml --out db.yaml   # YAML document written to db.yaml
  goby-db export --format surql`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := exportBytes(app.Schema, format)
			if err != nil {
				return err
			}

			if out == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			store := storage.NewAferoStore(app.Fs)
			n, err := store.Save(cmd.Context(), out, bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			slog.Info("Configuration exported", "path", out, "format", format, "bytes", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, yaml, surql, sql)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	return cmd
}

func exportBytes(cfg *schema.Config, format string) ([]byte, error) {
	switch dialect := schema.Dialect(format); dialect {
	case schema.DialectSurrealQL, schema.DialectSQLite:
		stmts, err := schema.Render(cfg, dialect)
		if err != nil {
			return nil, err
		}
		return []byte(strings.Join(stmts, "\n") + "\n"), nil
	}

	docFormat, err := schema.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := schema.Encode(&buf, cfg, docFormat); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
