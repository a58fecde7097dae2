// File: pkg/combine/worker.go
package combine

import (
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// readFilesConcurrently fans the read jobs out to a worker pool and returns
// the finished sections in the exact order the jobs were queued. Files that
// cannot be read or are not text are dropped along the way.
func readFilesConcurrently(jobs []readJob, maxWorkers int, logger *zap.Logger) []FileSection {
	if len(jobs) == 0 {
		return nil
	}
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
		logger.Debug("Adjusted worker count", zap.Int("workers", maxWorkers))
	}
	if maxWorkers > len(jobs) {
		maxWorkers = len(jobs)
	}

	jobCh := make(chan readJob, len(jobs))
	results := make(chan *FileSection, len(jobs))
	var wg sync.WaitGroup

	logger.Debug("Initializing worker pool",
		zap.Int("workers", maxWorkers),
		zap.Int("files", len(jobs)))
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go worker(w, jobCh, results, &wg, logger.With(zap.Int("workerID", w)))
	}

	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)

	go func() {
		wg.Wait()
		close(results)
	}()

	// Workers finish in arbitrary order; the index puts them back in line.
	ordered := make([]*FileSection, len(jobs))
	for section := range results {
		ordered[section.Index] = section
	}

	sections := make([]FileSection, 0, len(jobs))
	for _, section := range ordered {
		if section != nil {
			sections = append(sections, *section)
		}
	}

	logger.Debug("All files processed", zap.Int("sections", len(sections)))
	return sections
}

// worker reads files from the jobs channel until it closes. Failures are
// logged and dropped; a single unreadable file never stops the run.
func worker(id int, jobs <-chan readJob, results chan<- *FileSection, wg *sync.WaitGroup, logger *zap.Logger) {
	defer wg.Done()

	for job := range jobs {
		section, err := readSection(job, logger)
		if err != nil {
			logger.Warn("Worker failed to read file",
				zap.Int("workerID", id),
				zap.String("filePath", job.path),
				zap.Error(err))
			continue
		}
		if section == nil {
			continue // non-text contents
		}
		results <- section
	}
}
