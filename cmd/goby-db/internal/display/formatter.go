package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nfrund/goby-db/internal/schema"
)

// TableSummary represents a table for list output.
type TableSummary struct {
	Name       string   `json:"name"`
	PrimaryKey string   `json:"primary_key,omitempty"`
	Columns    []string `json:"columns"`
}

// TablesTable writes one row per table.
func TablesTable(w io.Writer, cfg *schema.Config) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "TABLE\tPRIMARY KEY\tCOLUMNS")
	fmt.Fprintln(tw, "-----\t-----------\t-------")

	tables := cfg.Tables()
	if len(tables) == 0 {
		fmt.Fprintln(tw, "No tables declared")
	}
	for _, t := range tables {
		pk := "-"
		if col, ok := t.PrimaryKey(); ok {
			pk = col.Name()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name(), pk, strings.Join(t.ColumnNames(), ", "))
	}
	return tw.Flush()
}

// TablesJSON writes the table summaries as JSON.
func TablesJSON(w io.Writer, cfg *schema.Config) error {
	tables := cfg.Tables()
	summaries := make([]TableSummary, 0, len(tables))
	for _, t := range tables {
		s := TableSummary{Name: t.Name(), Columns: t.ColumnNames()}
		if col, ok := t.PrimaryKey(); ok {
			s.PrimaryKey = col.Name()
		}
		summaries = append(summaries, s)
	}

	output := struct {
		Tables []TableSummary `json:"tables"`
		Count  int            `json:"count"`
	}{
		Tables: summaries,
		Count:  len(summaries),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// TableDetails writes the columns of a single table.
func TableDetails(w io.Writer, t *schema.Table) error {
	fmt.Fprintf(w, "Table: %s\n\n", t.Name())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tTYPE\tFLAGS")
	fmt.Fprintln(tw, "------\t----\t-----")
	for _, c := range t.Columns() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name(), c.Type(), flags(c))
	}
	return tw.Flush()
}

// TableDetailsJSON writes a single table document as JSON.
func TableDetailsJSON(w io.Writer, t *schema.Table) error {
	doc := schema.DefineDB(t).Document()
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc.Tables[0])
}

func flags(c schema.Column) string {
	var fs []string
	if c.PrimaryKey() {
		fs = append(fs, "primary key")
	}
	if c.Optional() {
		fs = append(fs, "optional")
	}
	if c.Unique() {
		fs = append(fs, "unique")
	}
	if c.Deprecated() {
		fs = append(fs, "deprecated")
	}
	if c.Multiline() {
		fs = append(fs, "multiline")
	}
	if len(fs) == 0 {
		return "-"
	}
	return strings.Join(fs, ", ")
}
