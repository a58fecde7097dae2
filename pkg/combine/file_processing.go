package combine

import (
	"fmt"
	"os"
	"path/filepath"

	"aifeed/pkg/config"

	"go.uber.org/zap"
)

// collectJobs picks the files to concatenate out of the kept entries:
// directories drop out, so does the output artifact itself, and so does
// anything outside the size bounds. Jobs keep their traversal order.
func collectJobs(entries []Entry, cfg config.Config, logger *zap.Logger) []readJob {
	outputAbs, err := filepath.Abs(cfg.OutputPath)
	if err != nil {
		logger.Warn("Failed to resolve output path",
			zap.String("path", cfg.OutputPath),
			zap.Error(err))
		outputAbs = cfg.OutputPath
	}

	var jobs []readJob
	for _, entry := range entries {
		if entry.IsDir {
			continue
		}
		if entry.Path == outputAbs {
			logger.Debug("Skipping the output artifact itself", zap.String("filePath", entry.Path))
			continue
		}

		info, err := os.Stat(entry.Path)
		if err != nil {
			logger.Warn("Failed to stat file",
				zap.String("filePath", entry.Path),
				zap.Error(err))
			continue
		}
		size := info.Size()
		if cfg.MinSize != nil && uint64(size) < *cfg.MinSize {
			logger.Debug("Skipping file below minimum size",
				zap.String("filePath", entry.Path),
				zap.Int64("sizeBytes", size))
			continue
		}
		if cfg.MaxSize != nil && uint64(size) > *cfg.MaxSize {
			logger.Debug("Skipping file above maximum size",
				zap.String("filePath", entry.Path),
				zap.Int64("sizeBytes", size))
			continue
		}

		jobs = append(jobs, readJob{
			index: len(jobs),
			path:  entry.Path,
			name:  filepath.Base(entry.Path),
			size:  size,
		})
	}
	return jobs
}

// sectionHeader formats the banner that precedes each file's contents. The
// name is the base name only; the size is the on-disk size in bytes.
func sectionHeader(name string, size int64) string {
	return fmt.Sprintf("\n=== File: %s (%d bytes) ===\n\n", name, size)
}

// readSection reads one file and formats its artifact section. It returns
// (nil, nil) when the contents are not text and the file is silently
// omitted.
func readSection(job readJob, logger *zap.Logger) (*FileSection, error) {
	data, err := os.ReadFile(job.path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", job.path, err)
	}

	if !isTextContent(data) {
		logger.Debug("Omitting non-text file", zap.String("filePath", job.path))
		return nil, nil
	}

	return &FileSection{
		Index:   job.index,
		Path:    job.path,
		Name:    job.name,
		Content: sectionHeader(job.name, job.size) + string(data),
	}, nil
}
