package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/shocker-link/internal/config"
	"github.com/oshokin/shocker-link/internal/service/ctl"
	"github.com/oshokin/shocker-link/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// address overrides the control API address from the settings.
	address string

	// rootCmd represents the base command for controlling a running daemon.
	rootCmd = &cobra.Command{
		Use:   "shocker-ctl",
		Short: "Inspect and edit a running shocker-link.",
		Long: `Talks to the control API of a running shocker-link.

Shows the live curve and toggles, edits control points, duration and view
bounds, walks the undo history and fires test triggers.`,
		SilenceUsage: true,
	}
)

// Execute runs the shocker-ctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runAction executes action against the daemon with signal-aware cancellation.
func runAction(cmd *cobra.Command, action ctl.Action) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return ctl.Run(ctx, &ctl.Options{
		ConfigPath: cfgPath,
		Address:    address,
		Out:        cmd.OutOrStdout(),
	}, action)
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&address, "address", "a", "", "control API address (overrides control_addr)")

	rootCmd.AddCommand(newCommands()...)
}
