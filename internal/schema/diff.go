package schema

import "fmt"

// Diff lists the structural differences between two configurations. An
// empty result means both describe the same schema.
func Diff(want, got *Config) []string {
	var diffs []string

	for _, wt := range want.tables {
		gt, ok := got.Table(wt.name)
		if !ok {
			diffs = append(diffs, fmt.Sprintf("table %s: missing", wt.name))
			continue
		}
		diffs = append(diffs, diffTable(wt, gt)...)
	}
	for _, gt := range got.tables {
		if _, ok := want.Table(gt.name); !ok {
			diffs = append(diffs, fmt.Sprintf("table %s: not declared", gt.name))
		}
	}
	return diffs
}

func diffTable(want, got *Table) []string {
	var diffs []string
	for i, wc := range want.columns {
		gc, ok := got.Column(wc.name)
		if !ok {
			diffs = append(diffs, fmt.Sprintf("column %s.%s: missing", want.name, wc.name))
			continue
		}
		if gc != wc {
			diffs = append(diffs, fmt.Sprintf("column %s.%s: declared %s, found %s",
				want.name, wc.name, describe(wc), describe(gc)))
		}
		if i < len(got.columns) && got.columns[i].name != wc.name {
			diffs = append(diffs, fmt.Sprintf("column %s.%s: position %d holds %s",
				want.name, wc.name, i, got.columns[i].name))
		}
	}
	for _, gc := range got.columns {
		if _, ok := want.Column(gc.name); !ok {
			diffs = append(diffs, fmt.Sprintf("column %s.%s: not declared", got.name, gc.name))
		}
	}
	return diffs
}

func describe(c Column) string {
	s := string(c.kind)
	for _, flag := range []struct {
		set  bool
		name string
	}{
		{c.primaryKey, "primary key"},
		{c.optional, "optional"},
		{c.unique, "unique"},
		{c.deprecated, "deprecated"},
		{c.multiline, "multiline"},
	} {
		if flag.set {
			s += ", " + flag.name
		}
	}
	return s
}
