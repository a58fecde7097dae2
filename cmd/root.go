package cmd

import (
	"errors"
	"fmt"

	"aifeed/pkg/combine"
	"aifeed/pkg/config"
	"aifeed/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// RootCmd is the base command. Running it with no subcommand performs a
// single combine over the target directory.
var RootCmd = &cobra.Command{
	Use:   "aifeed",
	Short: "Combine a directory's text files into one artifact",
	Long: `aifeed walks a directory tree, renders its structure, and concatenates
the text files it keeps into a single output file suitable for feeding
to an AI assistant.

Paths are filtered through directory whitelists and blacklists, the
repository's .gitignore, and filename, extension, and size rules. All of
them can come from flags or from an aifeed.yaml config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
			logging.SetDebug()
		}
	},
	RunE: runRoot,
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	registerRunFlags(RootCmd)
}

// registerRunFlags declares the flags shared by every command that performs
// a combine.
func registerRunFlags(cmd *cobra.Command) {
	config.Register(cmd)
	cmd.Flags().BoolP("clipboard", "c", false, "Copy the combined output to the clipboard")
	cmd.Flags().Int("workers", 0, "Number of concurrent file readers (0 = number of CPUs)")
	cmd.Flags().String("config", "", "Path to a config file (overrides discovery)")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, logger)
	if err != nil {
		return err
	}
	opts, err := optionsFromCommand(cmd)
	if err != nil {
		return err
	}
	return combine.Run(cfg, opts, logger)
}

// resolveConfig merges flag values with the discovered (or explicitly named)
// config file. Flags the user set explicitly always win.
func resolveConfig(cmd *cobra.Command, logger *zap.Logger) (config.Config, error) {
	cli, explicit, err := config.FromCommand(cmd)
	if err != nil {
		return config.Config{}, err
	}

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("error reading flags: %w", err)
	}
	if path == "" {
		var found bool
		path, found = config.Discover()
		if !found {
			logger.Debug("No config file found, using flag values only")
			return config.Merge(cli, explicit, nil), nil
		}
	}

	file, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrInvalidFormat) {
			logger.Warn("Ignoring unusable config file",
				zap.String("configFile", path),
				zap.Error(err))
			return config.Merge(cli, explicit, nil), nil
		}
		return config.Config{}, err
	}
	logger.Debug("Loaded config file", zap.String("configFile", path))
	return config.Merge(cli, explicit, file), nil
}

func optionsFromCommand(cmd *cobra.Command) (combine.Options, error) {
	clip, err := cmd.Flags().GetBool("clipboard")
	if err != nil {
		return combine.Options{}, fmt.Errorf("error reading flags: %w", err)
	}
	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return combine.Options{}, fmt.Errorf("error reading flags: %w", err)
	}
	return combine.Options{Clipboard: clip, MaxWorkers: workers}, nil
}

// Execute runs the root command with the given logger.
func Execute(l *zap.Logger) error {
	if l != nil {
		logger = l
	}
	return RootCmd.Execute()
}
