package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// Register declares the combine flag set on cmd. The root and watch commands
// share it so both surfaces stay identical.
func Register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("dir", "d", DefaultRootDirectory, "Root directory to combine")
	flags.StringP("output", "o", DefaultOutputPath, "Path of the combined output file")
	flags.String("include-dirs", "", "Comma-separated directory names to whitelist")
	flags.String("exclude-dirs", "", "Comma-separated directory names to skip")
	flags.String("include-ext", "", "Comma-separated extensions to keep ('.' keeps files without one)")
	flags.String("exclude-ext", "", "Comma-separated extensions to skip")
	flags.String("include-files", "", "Comma-separated file names to keep")
	flags.String("exclude-files", "", "Comma-separated file names to skip")
	flags.StringP("min-size", "n", "", "Minimum file size in bytes")
	flags.StringP("max-size", "m", "", "Maximum file size in bytes")
	flags.Bool("respect-gitignore", true, "Honor .gitignore patterns in the root directory")
	flags.Bool("tree-only", false, "Write only the directory tree, skip file contents")
}

// FromCommand reads the registered flags into a CLI-side Config and records
// which scalar flags were set explicitly.
func FromCommand(cmd *cobra.Command) (Config, ExplicitFlags, error) {
	flags := cmd.Flags()

	var cfg Config
	var err error
	if cfg.RootDirectory, err = flags.GetString("dir"); err != nil {
		return Config{}, ExplicitFlags{}, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.OutputPath, err = flags.GetString("output"); err != nil {
		return Config{}, ExplicitFlags{}, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.RespectIgnoreFile, err = flags.GetBool("respect-gitignore"); err != nil {
		return Config{}, ExplicitFlags{}, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.TreeOnly, err = flags.GetBool("tree-only"); err != nil {
		return Config{}, ExplicitFlags{}, fmt.Errorf("error reading flags: %w", err)
	}

	lists := []struct {
		name string
		dst  *[]string
		ext  bool
	}{
		{"include-dirs", &cfg.IncludeDirs, false},
		{"exclude-dirs", &cfg.ExcludeDirs, false},
		{"include-ext", &cfg.IncludeExtensions, true},
		{"exclude-ext", &cfg.ExcludeExtensions, true},
		{"include-files", &cfg.IncludeFilenames, false},
		{"exclude-files", &cfg.ExcludeFilenames, false},
	}
	for _, list := range lists {
		raw, err := flags.GetString(list.name)
		if err != nil {
			return Config{}, ExplicitFlags{}, fmt.Errorf("error reading flags: %w", err)
		}
		if list.ext {
			*list.dst = splitExtList(raw)
		} else {
			*list.dst = splitList(raw)
		}
	}

	minRaw, err := flags.GetString("min-size")
	if err != nil {
		return Config{}, ExplicitFlags{}, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.MinSize, err = parseSize(minRaw, "--min-size"); err != nil {
		return Config{}, ExplicitFlags{}, err
	}
	maxRaw, err := flags.GetString("max-size")
	if err != nil {
		return Config{}, ExplicitFlags{}, fmt.Errorf("error reading flags: %w", err)
	}
	if cfg.MaxSize, err = parseSize(maxRaw, "--max-size"); err != nil {
		return Config{}, ExplicitFlags{}, err
	}

	explicit := ExplicitFlags{
		RootDirectory:     flags.Changed("dir"),
		OutputPath:        flags.Changed("output"),
		RespectIgnoreFile: flags.Changed("respect-gitignore"),
		TreeOnly:          flags.Changed("tree-only"),
	}
	return cfg, explicit, nil
}

// parseSize parses a size flag given in decimal bytes. An empty value means
// the bound is unset.
func parseSize(raw, flag string) (*uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", ErrInvalidNumber, flag, raw)
	}
	return &n, nil
}
