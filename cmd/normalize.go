package cmd

import (
	"fmt"
	"path/filepath"

	"aifeed/pkg/ignore"

	"github.com/spf13/cobra"
)

// normalizeCmd rewrites a .gitignore into the canonical shape aifeed
// expects. Ordinary combine runs never touch the file; this command is the
// only operation that edits it.
var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Rewrite a .gitignore into canonical form",
	Long: `Rewrite the .gitignore in the target directory so plain directory
entries cover their whole subtree (build -> build/**) and the builtin
ignored directories and lock files are present. Comments, negations,
and patterns that already carry wildcards are left alone. Running it
again on an already normalized file changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cmd.Flags().GetString("dir")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		path := filepath.Join(dir, ignore.PatternFileName)
		changed, err := ignore.NormalizeFile(path)
		if err != nil {
			return fmt.Errorf("failed to normalize %s: %w", path, err)
		}
		if changed {
			fmt.Fprintf(cmd.OutOrStdout(), "Normalized %s\n", path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already normalized\n", path)
		}
		return nil
	},
}

func init() {
	normalizeCmd.Flags().StringP("dir", "d", ".", "Directory whose .gitignore to normalize")
	RootCmd.AddCommand(normalizeCmd)
}
