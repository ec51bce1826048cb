package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/goby-db/internal/schema"
	"github.com/nfrund/goby-db/internal/storage"
)

// ErrSchemaDrift is returned by check when the document differs from the declaration.
var ErrSchemaDrift = errors.New("schema document does not match the declared configuration")

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Compare a schema document with the declared configuration",
		Long: `Load a JSON or YAML schema document (format taken from the file extension)
and report every difference with the configuration declared in internal/db.
Exits non-zero when they differ.

Example:
  goby-db export --out db/schema.json
  goby-db check db/schema.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storage.NewAferoStore(app.Fs)
			loaded, err := storage.LoadConfig(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}

			diffs := schema.Diff(app.Schema, loaded)
			out := cmd.OutOrStdout()
			if len(diffs) == 0 {
				fmt.Fprintf(out, "✅ %s matches the declared configuration\n", args[0])
				return nil
			}

			fmt.Fprintf(out, "❌ %s differs from the declared configuration:\n", args[0])
			for _, d := range diffs {
				fmt.Fprintf(out, "   %s\n", d)
			}
			return ErrSchemaDrift
		},
	}
}
