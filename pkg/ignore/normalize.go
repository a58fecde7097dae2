package ignore

import (
	"fmt"
	"os"
	"strings"
)

// NormalizeLines rewrites pattern lines so plain directory entries cover
// their whole subtree (build -> build/**) and appends any missing built-in
// defaults. Blank, comment and negated lines pass through untouched, as does
// anything containing a wildcard, a dot or a space. The bool reports whether
// the output differs from the input.
//
// Combine runs never call this; it backs the explicit `aifeed normalize`
// command only.
func NormalizeLines(lines []string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	changed := false
	for _, line := range lines {
		normalized, lineChanged := normalizeLine(line)
		out = append(out, normalized)
		changed = changed || lineChanged
	}

	present := make(map[string]bool, len(out))
	for _, line := range out {
		present[strings.TrimSpace(line)] = true
	}

	var missing []string
	for _, name := range DefaultIgnoredFiles {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	for _, dir := range DefaultIgnoredDirs {
		if wildcard := dir + "/**"; !present[wildcard] {
			missing = append(missing, wildcard)
		}
	}

	if len(missing) > 0 {
		if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
		out = append(out, missing...)
		changed = true
	}
	return out, changed
}

// normalizeLine converts one directory-looking entry to subtree form. A line
// qualifies when, after stripping trailing '/' and '/**', it contains no
// wildcard, dot or space.
func normalizeLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
		return line, false
	}

	clean := trimmed
	for strings.HasSuffix(clean, "/") {
		clean = strings.TrimSuffix(clean, "/")
	}
	for strings.HasSuffix(clean, "/**") {
		clean = strings.TrimSuffix(clean, "/**")
	}
	clean = strings.TrimRight(clean, " ")

	if clean == "" || strings.ContainsAny(clean, "*. ") {
		return line, false
	}

	wildcard := clean + "/**"
	if trimmed == wildcard {
		return line, false
	}
	return wildcard, true
}

// NormalizeFile applies NormalizeLines to the pattern file at path, creating
// the file when absent. It reports whether the file was written.
func NormalizeFile(path string) (bool, error) {
	var lines []string
	existed := true

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if text := strings.TrimSuffix(string(content), "\n"); text != "" {
			lines = strings.Split(text, "\n")
		}
	case os.IsNotExist(err):
		existed = false
	default:
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	normalized, changed := NormalizeLines(lines)
	if !changed && existed {
		return false, nil
	}

	data := strings.Join(normalized, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
