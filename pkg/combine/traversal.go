// File: pkg/combine/traversal.go
package combine

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Traverse walks root in lexical order and returns the kept entries in the
// order visited, the root itself first. Skipped directories are not pruned
// from the walk: every descendant is still judged on its own, so a whitelist
// entry can match below a parent that did not.
func Traverse(root string, engine *Engine, logger *zap.Logger) ([]Entry, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory path: %w", err)
	}

	var entries []Entry
	walkErr := filepath.WalkDir(rootAbs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == rootAbs {
				return fmt.Errorf("failed to read root directory %s: %w", rootAbs, err)
			}
			logger.Warn("Error accessing path during traversal",
				zap.String("path", path),
				zap.Error(err))
			return nil
		}

		rel, relErr := filepath.Rel(rootAbs, path)
		if relErr != nil {
			logger.Warn("Unable to determine relative path",
				zap.String("path", path),
				zap.Error(relErr))
			return nil
		}
		rel = filepath.ToSlash(rel)

		if rel == "." {
			entries = append(entries, Entry{Path: path, Depth: 0, IsDir: true})
			return nil
		}

		if engine.ShouldSkip(rel, d.IsDir()) {
			return nil
		}

		entries = append(entries, Entry{
			Path:  path,
			Depth: strings.Count(rel, "/") + 1,
			IsDir: d.IsDir(),
		})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	logger.Debug("Completed traversal",
		zap.String("root", rootAbs),
		zap.Int("keptEntries", len(entries)))
	return entries, nil
}
