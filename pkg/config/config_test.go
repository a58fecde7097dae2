package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	Register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func strPtr(s string) *string  { return &s }
func boolPtr(b bool) *bool     { return &b }
func sizePtr(n uint64) *uint64 { return &n }

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"only separators", " , ,", nil},
		{"trims and lowercases", " SRC, Docs ", []string{"src", "docs"}},
		{"drops empty entries", "a,,b", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.raw))
		})
	}
}

func TestSplitExtList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"strips leading dots", ".RS, .Md", []string{"rs", "md"}},
		{"bare names untouched", "go,md", []string{"go", "md"}},
		{"dot means no extension", ".", []string{""}},
		{"mixed", ".go, ., md", []string{"go", "", "md"}},
		{"only separators", " , ,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitExtList(tt.raw))
		})
	}
}

func TestFromCommandDefaults(t *testing.T) {
	cmd := newTestCommand(t)

	cfg, explicit, err := FromCommand(cmd)
	require.NoError(t, err)

	assert.Equal(t, DefaultRootDirectory, cfg.RootDirectory)
	assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
	assert.True(t, cfg.RespectIgnoreFile)
	assert.False(t, cfg.TreeOnly)
	assert.Nil(t, cfg.IncludeDirs)
	assert.Nil(t, cfg.IncludeExtensions)
	assert.Nil(t, cfg.MinSize)
	assert.Nil(t, cfg.MaxSize)
	assert.Equal(t, ExplicitFlags{}, explicit)
}

func TestFromCommandExplicitValues(t *testing.T) {
	cmd := newTestCommand(t,
		"-d", "/repo",
		"-o", "out.txt",
		"--include-ext", ".Go,md",
		"--exclude-dirs", "Vendor",
		"--min-size", "10",
		"--max-size", "100",
		"--tree-only",
	)

	cfg, explicit, err := FromCommand(cmd)
	require.NoError(t, err)

	assert.Equal(t, "/repo", cfg.RootDirectory)
	assert.Equal(t, "out.txt", cfg.OutputPath)
	assert.Equal(t, []string{"go", "md"}, cfg.IncludeExtensions)
	assert.Equal(t, []string{"vendor"}, cfg.ExcludeDirs)
	require.NotNil(t, cfg.MinSize)
	require.NotNil(t, cfg.MaxSize)
	assert.Equal(t, uint64(10), *cfg.MinSize)
	assert.Equal(t, uint64(100), *cfg.MaxSize)
	assert.True(t, cfg.TreeOnly)

	assert.True(t, explicit.RootDirectory)
	assert.True(t, explicit.OutputPath)
	assert.True(t, explicit.TreeOnly)
	assert.False(t, explicit.RespectIgnoreFile)
}

func TestFromCommandInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
	}{
		{"min not a number", []string{"--min-size", "abc"}, "--min-size"},
		{"max negative", []string{"--max-size=-5"}, "--max-size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newTestCommand(t, tt.args...)
			_, _, err := FromCommand(cmd)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidNumber))
			assert.Contains(t, err.Error(), tt.flag)
		})
	}
}

func TestMergeNilFile(t *testing.T) {
	cmd := newTestCommand(t, "-d", "/repo")
	cli, explicit, err := FromCommand(cmd)
	require.NoError(t, err)

	merged := Merge(cli, explicit, nil)
	assert.Equal(t, cli, merged)
}

func TestMergeScalarPrecedence(t *testing.T) {
	file := &FileConfig{
		Directory:        strPtr("/from-file"),
		Output:           strPtr("file-out.txt"),
		RespectGitignore: boolPtr(false),
	}

	t.Run("file overrides defaults", func(t *testing.T) {
		cli, explicit, err := FromCommand(newTestCommand(t))
		require.NoError(t, err)

		merged := Merge(cli, explicit, file)
		assert.Equal(t, "/from-file", merged.RootDirectory)
		assert.Equal(t, "file-out.txt", merged.OutputPath)
		assert.False(t, merged.RespectIgnoreFile)
	})

	t.Run("typed flag beats file even at default value", func(t *testing.T) {
		cli, explicit, err := FromCommand(newTestCommand(t, "-d", "."))
		require.NoError(t, err)

		merged := Merge(cli, explicit, file)
		assert.Equal(t, ".", merged.RootDirectory)
		assert.Equal(t, "file-out.txt", merged.OutputPath)
	})
}

func TestMergeListsAndSizes(t *testing.T) {
	file := &FileConfig{
		IncludeExt: []string{".RS", "Md"},
		MinSize:    sizePtr(1),
		MaxSize:    sizePtr(100),
	}

	t.Run("file fills unset values, normalized", func(t *testing.T) {
		cli, explicit, err := FromCommand(newTestCommand(t))
		require.NoError(t, err)

		merged := Merge(cli, explicit, file)
		assert.Equal(t, []string{"rs", "md"}, merged.IncludeExtensions)
		require.NotNil(t, merged.MinSize)
		require.NotNil(t, merged.MaxSize)
		assert.Equal(t, uint64(1), *merged.MinSize)
		assert.Equal(t, uint64(100), *merged.MaxSize)
	})

	t.Run("flag list beats file list", func(t *testing.T) {
		cli, explicit, err := FromCommand(newTestCommand(t, "--include-ext", "go"))
		require.NoError(t, err)

		merged := Merge(cli, explicit, file)
		assert.Equal(t, []string{"go"}, merged.IncludeExtensions)
	})

	t.Run("flag list of empties collapses and yields to file", func(t *testing.T) {
		cli, explicit, err := FromCommand(newTestCommand(t, "--include-ext", " , ,"))
		require.NoError(t, err)
		require.Nil(t, cli.IncludeExtensions)

		merged := Merge(cli, explicit, file)
		assert.Equal(t, []string{"rs", "md"}, merged.IncludeExtensions)
	})
}

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		content := "directory: /repo\noutput: out.txt\ninclude_ext: [go, md]\nmin_size: 100\ntree_only: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		fc, err := Load(path)
		require.NoError(t, err)
		require.NotNil(t, fc.Directory)
		assert.Equal(t, "/repo", *fc.Directory)
		assert.Equal(t, []string{"go", "md"}, fc.IncludeExt)
		require.NotNil(t, fc.MinSize)
		assert.Equal(t, uint64(100), *fc.MinSize)
		require.NotNil(t, fc.TreeOnly)
		assert.True(t, *fc.TreeOnly)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte("{{{ not yaml"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidFormat))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidFormat))
	})
}

func TestTemplateIsValidYAML(t *testing.T) {
	var fc FileConfig
	require.NoError(t, yaml.Unmarshal([]byte(Template()), &fc))

	// Every key ships commented out, so parsing it sets nothing.
	assert.Equal(t, FileConfig{}, fc)
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	require.NoError(t, WriteTemplate(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Template(), string(data))

	err = WriteTemplate(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, WriteTemplate(path, true))
}
