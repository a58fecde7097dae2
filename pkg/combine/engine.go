// File: pkg/combine/engine.go
package combine

import (
	"path/filepath"
	"strings"

	"aifeed/pkg/config"
	"aifeed/pkg/ignore"

	"go.uber.org/zap"
)

// Engine applies the layered path filters for a run. Decisions are pure:
// the engine never touches the filesystem and judges every path on its own,
// so traversal order cannot influence an outcome.
type Engine struct {
	cfg      config.Config
	patterns *ignore.PatternSet
	logger   *zap.Logger
}

// NewEngine builds an engine for cfg. patterns may be nil when there is no
// pattern set to consult.
func NewEngine(cfg config.Config, patterns *ignore.PatternSet, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg, patterns: patterns, logger: logger}
}

// ShouldSkip reports whether the entry at relPath stays out of the run.
// Filters apply in a fixed order: directory whitelist, directory blacklist,
// gitignore patterns, then the file-only name and extension filters, where
// exclusion always beats inclusion. Size bounds are not checked here; they
// belong to concatenation.
func (e *Engine) ShouldSkip(relPath string, isDir bool) bool {
	rel := filepath.ToSlash(relPath)
	if rel == "" || rel == "." {
		return false
	}
	parts := strings.Split(rel, "/")

	if e.cfg.IncludeDirs != nil && !anyComponentMatches(parts, e.cfg.IncludeDirs) {
		e.logger.Debug("Path has no whitelisted component", zap.String("path", rel))
		return true
	}

	if anyComponentMatches(parts, ignore.DefaultIgnoredDirs) || anyComponentMatches(parts, e.cfg.ExcludeDirs) {
		e.logger.Debug("Path crosses an excluded directory", zap.String("path", rel))
		return true
	}

	if e.cfg.RespectIgnoreFile && e.patterns != nil && e.patterns.Match(rel, isDir) {
		e.logger.Debug("Path matches an ignore pattern", zap.String("path", rel))
		return true
	}

	if isDir {
		return false
	}

	name := strings.ToLower(parts[len(parts)-1])
	if containsString(e.cfg.ExcludeFilenames, name) {
		e.logger.Debug("File name is excluded", zap.String("path", rel))
		return true
	}
	if e.cfg.IncludeFilenames != nil && !containsString(e.cfg.IncludeFilenames, name) {
		e.logger.Debug("File name is not included", zap.String("path", rel))
		return true
	}

	ext := fileExtension(name)
	if containsString(e.cfg.ExcludeExtensions, ext) {
		e.logger.Debug("File extension is excluded",
			zap.String("path", rel),
			zap.String("extension", ext))
		return true
	}
	if e.cfg.IncludeExtensions != nil && !containsString(e.cfg.IncludeExtensions, ext) {
		e.logger.Debug("File extension is not included",
			zap.String("path", rel),
			zap.String("extension", ext))
		return true
	}

	return false
}

// fileExtension returns the part of name after the final dot, or "" when
// there is none. A dot at the start does not count: dotfiles like .bashrc
// have no extension. name must already be lower-cased.
func fileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return ""
	}
	return name[idx+1:]
}

// anyComponentMatches reports whether any path component equals one of the
// names, ignoring case. The names must already be lower-cased.
func anyComponentMatches(parts, names []string) bool {
	for _, part := range parts {
		lower := strings.ToLower(part)
		for _, name := range names {
			if lower == name {
				return true
			}
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
