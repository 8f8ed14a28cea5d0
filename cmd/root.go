package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"bootstrap-machine/internal/bootstrap"
	"bootstrap-machine/internal/config"
	"bootstrap-machine/internal/logger"
)

// configPath holds the path to the main configuration YAML file.
// It's passed via the `--config` or `-c` flag.
var configPath string

// verbose enables execution tracing via the `-v/--verbose` flag.
var verbose bool

// noColor disables colored diagnostic output via the `--no-color` flag.
var noColor bool

// rootCmd is the single command of the CLI. There are no subcommands: one
// invocation performs the whole bootstrap sequence from start to finish.
var rootCmd = &cobra.Command{
	Use:   "bootstrap-machine",
	Short: "Ubuntu workstation bootstrap",
	Long: "bootstrap-machine installs OS packages, a terminal emulator, fonts, runtimes,\n" +
		"dotfiles, and a declarative list of language servers on a fresh Ubuntu machine.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun initializes the logger once flags are parsed.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose, noColor)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		// An interrupt triggers the same context cancellation as normal exit,
		// so the privilege keep-alive task always stops.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return bootstrap.Run(ctx, cfg)
	},
}

// Execute registers flags, runs the command, and maps any failure to exit code 1.
// Unknown flags are rejected by cobra and reach the same fatal path.
func Execute() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable execution tracing")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored diagnostic output")

	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}
