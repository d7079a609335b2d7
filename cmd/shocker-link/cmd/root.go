package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/shocker-link/internal/config"
	"github.com/oshokin/shocker-link/internal/service/link"
	"github.com/oshokin/shocker-link/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// curveFile overrides the curve state path from the settings.
	curveFile string
	// logLevel overrides the log level from the settings.
	logLevel string
	// allowMultiple skips the single instance check.
	allowMultiple bool

	// rootCmd represents the base command for running the daemon.
	rootCmd = &cobra.Command{
		Use:   "shocker-link",
		Short: "Turn avatar OSC triggers into shocks on a serial transmitter.",
		Long: `Listens for avatar parameter updates over OSC and, for every admitted trigger,
samples an intensity from the editable probability curve and a duration from
the configured bounds, then sends the command to the transmitter over serial.

Triggers are rate limited by a cooldown that grows with recent activity.
The curve is edited through shocker-ctl and persisted to a JSON file that is
reloaded when edited externally.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return link.Run(ctx, &link.Options{
				ConfigPath:    configPath,
				CurveFile:     curveFile,
				LogLevel:      logLevel,
				AllowMultiple: allowMultiple,
			})
		},
	}
)

// Execute runs the shocker-link CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&curveFile, "curve-file", "f", "", "path to the curve state JSON (overrides curve_file)")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "debug, info, warn or error (overrides log_level)")
	rootCmd.Flags().BoolVar(&allowMultiple, "allow-multiple", false, "start even if another instance is running")
}
