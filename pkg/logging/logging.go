// Package logging builds the zap logger shared by every aifeed command.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// level is shared by every logger Setup builds so the --verbose flag can
// flip the whole process to debug output after flags are parsed.
var level = zap.NewAtomicLevelAt(zap.InfoLevel)

// Setup builds the application logger with the shared level and identity
// fields, and installs it as the zap global.
func Setup(appName, appVersion string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}

// SetDebug lowers the shared level so debug entries are emitted.
func SetDebug() {
	level.SetLevel(zap.DebugLevel)
}
