// Package config resolves the effective configuration for a combine run
// from command-line flags and an optional aifeed.yaml file.
package config

import (
	"errors"
	"strings"
)

// Sentinel errors so callers can classify config failures with errors.Is.
var (
	// ErrInvalidNumber reports a size flag that is not a decimal number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidFormat reports a config file that cannot be read or parsed.
	ErrInvalidFormat = errors.New("invalid config format")
)

// Defaults for the scalar flags.
const (
	DefaultRootDirectory = "."
	DefaultOutputPath    = "aifeed.txt"
)

// Config is the fully resolved runtime configuration for a combine run.
// A nil list or size bound means "no constraint". List entries are
// normalized: trimmed, lower-cased, never empty. Extension entries carry no
// leading dot; the empty-string entry stands for files without an extension.
type Config struct {
	RootDirectory     string
	OutputPath        string
	IncludeDirs       []string
	ExcludeDirs       []string
	IncludeExtensions []string
	ExcludeExtensions []string
	IncludeFilenames  []string
	ExcludeFilenames  []string
	MinSize           *uint64
	MaxSize           *uint64
	RespectIgnoreFile bool
	TreeOnly          bool
}

// ExplicitFlags records which scalar flags the user typed on the command
// line. Scalars carry CLI defaults, so the merge has to know whether a value
// was typed or defaulted before letting the file config override it.
type ExplicitFlags struct {
	RootDirectory     bool
	OutputPath        bool
	RespectIgnoreFile bool
	TreeOnly          bool
}

// splitList splits a comma-separated flag value into normalized entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	return normalizeList(strings.Split(raw, ","))
}

// splitExtList is splitList for extension flags.
func splitExtList(raw string) []string {
	if raw == "" {
		return nil
	}
	return normalizeExtList(strings.Split(raw, ","))
}

// normalizeList trims and lower-cases entries, dropping any that end up
// empty. A result with no entries collapses to nil so "no constraint" stays
// distinct from "empty constraint".
func normalizeList(entries []string) []string {
	var out []string
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// normalizeExtList additionally strips one leading dot per entry, so ".go",
// "go" and "GO" are the same filter. A bare "." becomes the empty entry that
// matches files without an extension.
func normalizeExtList(entries []string) []string {
	normalized := normalizeList(entries)
	if normalized == nil {
		return nil
	}
	out := make([]string, 0, len(normalized))
	for _, entry := range normalized {
		out = append(out, strings.TrimPrefix(entry, "."))
	}
	return out
}
