// File: pkg/combine/tree.go
package combine

import (
	"path/filepath"
	"strings"
)

const (
	treeHeader = "=== Project Directory Structure ===\n\n"
	treeEmpty  = "The directory is empty.\n"
)

// RenderTree formats the kept entries as an indented listing: one line per
// entry, two spaces per depth level, directories suffixed with a slash. The
// first entry is the root itself; when nothing else survived filtering the
// body is a single explanatory line instead.
func RenderTree(entries []Entry) string {
	var b strings.Builder
	b.WriteString(treeHeader)

	if len(entries) <= 1 {
		b.WriteString(treeEmpty)
		return b.String()
	}

	for _, entry := range entries {
		b.WriteString(strings.Repeat("  ", entry.Depth))
		b.WriteString(filepath.Base(entry.Path))
		if entry.IsDir {
			b.WriteString("/")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
