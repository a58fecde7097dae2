package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"aifeed/pkg/watch"

	"github.com/spf13/cobra"
)

// watchCmd runs a combine, then keeps rebuilding the artifact as files
// change, until interrupted.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the combined output whenever files change",
	Long: `Run a combine, then watch the directory tree and rebuild the output
file whenever something under it is created, written, removed, or
renamed. Changes are debounced so a burst of saves produces a single
rebuild. Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, logger)
		if err != nil {
			return err
		}
		opts, err := optionsFromCommand(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watch.Run(ctx, cfg, opts, logger)
	},
}

func init() {
	registerRunFlags(watchCmd)
	RootCmd.AddCommand(watchCmd)
}
