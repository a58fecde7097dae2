// Package watch re-runs the combine whenever files under the root change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"aifeed/pkg/combine"
	"aifeed/pkg/config"
	"aifeed/pkg/ignore"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounceDelay is how long the watcher waits after the last relevant event
// before rebuilding, so an editor save burst triggers a single run.
const debounceDelay = 500 * time.Millisecond

// Run performs an initial combine, then rebuilds the artifact whenever a file
// under the watched tree is created, written, removed, or renamed. It returns
// when ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, opts combine.Options, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := combine.Run(cfg, opts, logger); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			logger.Warn("Failed to close file watcher", zap.Error(cerr))
		}
	}()

	outputAbs, err := filepath.Abs(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to resolve output path: %w", err)
	}

	if err := addWatchDirs(watcher, cfg, logger); err != nil {
		return err
	}
	logger.Info("Watching for changes",
		zap.String("directory", cfg.RootDirectory),
		zap.Duration("debounce", debounceDelay))

	rebuild := func() {
		if err := combine.Run(cfg, opts, logger); err != nil {
			logger.Error("Rebuild failed", zap.Error(err))
			return
		}
		// New directories may have appeared since the last pass.
		if err := addWatchDirs(watcher, cfg, logger); err != nil {
			logger.Warn("Failed to refresh watched directories", zap.Error(err))
		}
	}

	return loop(ctx, watcher.Events, watcher.Errors, outputAbs, rebuild, logger)
}

func loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, outputAbs string, rebuild func(), logger *zap.Logger) error {
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if !relevantOp(event.Op) {
				continue
			}
			if abs, err := filepath.Abs(event.Name); err == nil && abs == outputAbs {
				continue // writing the artifact must not retrigger the watcher
			}
			logger.Debug("Filesystem change detected",
				zap.String("filePath", event.Name),
				zap.String("op", event.Op.String()))
			pending = time.After(debounceDelay)
		case <-pending:
			pending = nil
			rebuild()
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Error("File watcher error", zap.Error(err))
		}
	}
}

func relevantOp(op fsnotify.Op) bool {
	return op.Has(fsnotify.Create) || op.Has(fsnotify.Write) ||
		op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename)
}

// addWatchDirs registers every directory the decision engine keeps. Watching
// an already watched path again is a no-op in fsnotify.
func addWatchDirs(watcher *fsnotify.Watcher, cfg config.Config, logger *zap.Logger) error {
	patterns, err := ignore.Build(cfg.RootDirectory, cfg.ExcludeDirs, logger)
	if err != nil {
		return fmt.Errorf("failed to build ignore patterns: %w", err)
	}
	engine := combine.NewEngine(cfg, patterns, logger)
	entries, err := combine.Traverse(cfg.RootDirectory, engine, logger)
	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir {
			continue
		}
		if err := watcher.Add(entry.Path); err != nil {
			logger.Warn("Failed to watch directory",
				zap.String("path", entry.Path),
				zap.Error(err))
		}
	}
	return nil
}
