// Package ignore implements the gitignore-style pattern matching behind a
// combine run: the project's own .gitignore, the built-in defaults, and the
// user's excluded directories, all in one ordered rule set.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// PatternFileName is the pattern file honored at the root of a combine run.
const PatternFileName = ".gitignore"

// PatternSet is an ordered list of gitignore-style rules. Later rules win,
// so a negated rule can re-include a path an earlier rule ignored. A built
// set is read-only and safe for concurrent use.
type PatternSet struct {
	rules  []*Rule
	logger *zap.Logger
}

// NewPatternSet returns an empty set. A nil logger is replaced with a no-op.
func NewPatternSet(logger *zap.Logger) *PatternSet {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PatternSet{logger: logger}
}

// Build assembles the pattern set for a run: the root's pattern file first,
// then the built-in file and directory ignores, then the user's excluded
// directories. Additions are strictly appended, so the later sources win
// where rules overlap.
func Build(root string, excludeDirs []string, logger *zap.Logger) (*PatternSet, error) {
	ps := NewPatternSet(logger)
	if err := ps.AddFile(filepath.Join(root, PatternFileName)); err != nil {
		return nil, err
	}
	ps.AddLines(DefaultIgnoredFiles...)
	for _, dir := range DefaultIgnoredDirs {
		if err := ps.AddDir(dir); err != nil {
			return nil, err
		}
	}
	for _, dir := range excludeDirs {
		if err := ps.AddDir(dir); err != nil {
			return nil, err
		}
	}
	return ps, nil
}

// AddLines parses and appends rules. A line that fails to compile is skipped
// with a debug log so a stray line in a project's pattern file never aborts
// the run.
func (ps *PatternSet) AddLines(lines ...string) {
	for _, line := range lines {
		rule, err := ParseRule(line)
		if err != nil {
			ps.logger.Debug("Skipping unparsable ignore pattern",
				zap.String("pattern", line),
				zap.Error(err))
			continue
		}
		if rule == nil {
			continue
		}
		ps.rules = append(ps.rules, rule)
	}
}

// AddFile loads rules from a pattern file. A missing file is not an error.
// The file is only read, never rewritten; `aifeed normalize` is the one
// operation that edits it.
func (ps *PatternSet) AddFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ps.logger.Debug("Ignore file does not exist and will be skipped",
				zap.String("filePath", path))
			return nil
		}
		return fmt.Errorf("failed to read ignore file %s: %w", path, err)
	}

	ps.AddLines(strings.Split(string(content), "\n")...)
	ps.logger.Debug("Loaded ignore file",
		zap.String("filePath", path),
		zap.Int("totalRules", len(ps.rules)))
	return nil
}

// AddDir appends a directory rule covering name and everything beneath it.
// Unlike AddLines, a name that cannot be compiled is an error: these entries
// come from configuration, not from a pattern file.
func (ps *PatternSet) AddDir(name string) error {
	rule, err := ParseRule(name + "/")
	if err != nil {
		return err
	}
	if rule == nil {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, name)
	}
	ps.rules = append(ps.rules, rule)
	return nil
}

// Len returns the number of compiled rules.
func (ps *PatternSet) Len() int {
	return len(ps.rules)
}

// Match reports whether relPath is ignored once every rule has been applied.
// relPath is relative to the pattern root; isDir tells directories from
// files. The last matching rule decides, which is what lets '!' re-include.
func (ps *PatternSet) Match(relPath string, isDir bool) bool {
	relPath = filepath.ToSlash(relPath)

	ignored := false
	for _, rule := range ps.rules {
		if rule.Match(relPath, isDir) {
			ignored = !rule.Negate
		}
	}
	return ignored
}
