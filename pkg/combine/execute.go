// File: pkg/combine/execute.go
package combine

import (
	"fmt"
	"path/filepath"
	"time"

	"aifeed/pkg/clipboard"
	"aifeed/pkg/config"
	"aifeed/pkg/ignore"

	"go.uber.org/zap"
)

// Run executes a full combine: build the pattern set, walk the tree, render
// the structure listing, concatenate the kept files, write the artifact.
func Run(cfg config.Config, opts Options, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	logger.Info("Starting combine run",
		zap.String("directory", cfg.RootDirectory),
		zap.String("output", cfg.OutputPath))

	patterns, err := ignore.Build(cfg.RootDirectory, cfg.ExcludeDirs, logger)
	if err != nil {
		logger.Error("Failed to build ignore patterns", zap.Error(err))
		return fmt.Errorf("failed to build ignore patterns: %w", err)
	}
	logger.Debug("Built ignore patterns", zap.Int("totalRules", patterns.Len()))

	engine := NewEngine(cfg, patterns, logger)

	entries, err := Traverse(cfg.RootDirectory, engine, logger)
	if err != nil {
		logger.Error("Failed to walk directory", zap.Error(err))
		return fmt.Errorf("failed to walk directory: %w", err)
	}

	treeContent := RenderTree(entries)

	var sections []FileSection
	if cfg.TreeOnly {
		logger.Debug("Tree-only mode, skipping file contents")
	} else {
		jobs := collectJobs(entries, cfg, logger)
		sections = readFilesConcurrently(jobs, opts.MaxWorkers, logger)
	}

	if err := ensureDirectory(filepath.Dir(cfg.OutputPath), logger); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeArtifact(cfg.OutputPath, treeContent, sections, logger); err != nil {
		logger.Error("Failed to write combined file",
			zap.String("combinedFile", cfg.OutputPath),
			zap.Error(err))
		return fmt.Errorf("failed to write combined file: %w", err)
	}

	if opts.Clipboard {
		if err := clipboard.CopyFile(cfg.OutputPath, logger); err != nil {
			logger.Error("Failed to copy output to clipboard", zap.Error(err))
			return fmt.Errorf("failed to copy output to clipboard: %w", err)
		}
	}

	logger.Info("Combine run completed",
		zap.String("outputFile", cfg.OutputPath),
		zap.Int("totalFiles", len(sections)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
