package cmd

import (
	"fmt"

	"aifeed/pkg/config"

	"github.com/spf13/cobra"
)

// initCmd writes a commented aifeed.yaml starter file into the current
// directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter aifeed.yaml config file",
	Long: `Write a commented aifeed.yaml into the current directory. The file
documents every supported key; all of them start commented out, so a
fresh config changes nothing until edited.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if err := config.WriteTemplate(config.FileName, force); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", config.FileName)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	RootCmd.AddCommand(initCmd)
}
