// Package clipboard copies the combined artifact to the system clipboard.
package clipboard

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// CopyFile places the contents of the file at path on the system clipboard.
func CopyFile(path string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s for clipboard copy: %w", path, err)
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	logger.Info("Copied combined output to clipboard",
		zap.String("filePath", path),
		zap.Int("bytes", len(data)))
	return nil
}
