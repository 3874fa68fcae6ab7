package commands

import (
	"sort"
	"strings"

	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/j2inn/haystack-core-sub001/namespace"
)

// formatTags renders a record as a tag expression: markers by name, other
// tags as name=value.
func formatTags(d *hval.Dict) string {
	parts := make([]string, 0, d.Len())
	d.Each(func(name string, v hval.Value) bool {
		if hval.IsMarker(v) {
			parts = append(parts, name)
		} else {
			parts = append(parts, name+"="+v.String())
		}
		return true
	})
	return strings.Join(parts, " ")
}

func defNames(defs []*namespace.Def) []string {
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name()
	}
	return names
}

func sortedDefNames(defs []*namespace.Def) []string {
	names := defNames(defs)
	sort.Strings(names)
	return names
}

// firstLine shortens a doc string for table cells.
func firstLine(doc string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(doc), "\n")
	return line
}

func defRows(defs []*namespace.Def) [][]string {
	rows := make([][]string, len(defs))
	for i, d := range defs {
		rows[i] = []string{d.Name(), firstLine(d.Doc())}
	}
	return rows
}
