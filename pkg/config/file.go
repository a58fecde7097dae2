package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up during discovery.
const FileName = "aifeed.yaml"

// FileConfig mirrors Config with optional fields, one per aifeed.yaml key.
// A nil field means the key was absent from the file.
type FileConfig struct {
	Directory        *string  `yaml:"directory"`
	Output           *string  `yaml:"output"`
	IncludeDirs      []string `yaml:"include_dirs"`
	ExcludeDirs      []string `yaml:"exclude_dirs"`
	IncludeExt       []string `yaml:"include_ext"`
	ExcludeExt       []string `yaml:"exclude_ext"`
	IncludeFiles     []string `yaml:"include_files"`
	ExcludeFiles     []string `yaml:"exclude_files"`
	MinSize          *uint64  `yaml:"min_size"`
	MaxSize          *uint64  `yaml:"max_size"`
	RespectGitignore *bool    `yaml:"respect_gitignore"`
	TreeOnly         *bool    `yaml:"tree_only"`
}

// Load reads and parses a YAML config file. Failures wrap ErrInvalidFormat;
// the caller decides whether to continue without the file.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidFormat, path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidFormat, path, err)
	}
	return &fc, nil
}

// Discover returns the first config file found: aifeed.yaml in the current
// directory, then under the per-user config directory. The bool reports
// whether a file was found. Resolution itself never probes the filesystem;
// only this collaborator does.
func Discover() (string, bool) {
	if _, err := os.Stat(FileName); err == nil {
		return FileName, true
	}
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "aifeed", FileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
