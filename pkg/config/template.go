package config

import (
	"fmt"
	"os"
)

// template is the starter config written by `aifeed init`. Every key is
// present but commented out so the file documents itself.
const template = `# aifeed configuration.
# Uncomment a key to set it. Typed command-line flags always win.

# directory: .
# output: aifeed.txt

# include_dirs: [src, docs]
# exclude_dirs: [testdata, tmp]

# include_ext: [go, md]
# exclude_ext: [lock]
# Use "." in include_ext to keep files without an extension.

# include_files: [Makefile]
# exclude_files: [CHANGELOG.md]

# Size bounds in bytes, both inclusive.
# min_size: 1
# max_size: 1048576

# respect_gitignore: true
# tree_only: false
`

// Template returns the starter aifeed.yaml contents.
func Template() string {
	return template
}

// WriteTemplate writes the starter config to path. An existing file is left
// alone unless force is set.
func WriteTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.WriteFile(path, []byte(template), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
