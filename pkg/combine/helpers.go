// File: pkg/combine/helpers.go
package combine

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if path == "" || path == "." {
		return nil
	}
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory",
			zap.String("path", path),
			zap.Error(err))
		return err
	}
	return nil
}

// writeArtifact writes the tree listing followed by the file sections, in
// their traversal order, to the output file.
func writeArtifact(outputPath, treeContent string, sections []FileSection, logger *zap.Logger) error {
	logger.Debug("Writing combined content", zap.String("combinedFile", outputPath))

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil {
			logger.Error("Failed to close output file",
				zap.String("combinedFile", outputPath),
				zap.Error(cerr))
		}
	}()

	writer := bufio.NewWriter(outFile)
	if _, err := writer.WriteString(treeContent); err != nil {
		return fmt.Errorf("failed to write directory tree: %w", err)
	}
	for _, section := range sections {
		if _, err := writer.WriteString(section.Content); err != nil {
			return fmt.Errorf("failed to write content for %s: %w", section.Name, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	return nil
}
