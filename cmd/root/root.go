// Package root contains the root command for the application
package root

import (
	"fjacquet/charge-calc/internal/config"
	"fjacquet/charge-calc/internal/container"
	"fjacquet/charge-calc/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer is built from the loaded configuration before any subcommand runs
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "charge-calc",
		Short: "A CLI tool to compute per-step and per-cycle charge from cycling records.",
		Long: `charge-calc is a CLI tool that reads electrochemical cycling records
(.xlsx workbooks or .edf line files) and computes the charge of every step and
the total charge of every cycle. Results can be printed, exported to CSV, XLSX,
JSON or YAML, and plotted.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to charge-calc!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}

			c, err := container.NewContainer(cfg)
			if err != nil {
				Log.Fatalf("Failed to initialize application: %v", err)
			}
			AppContainer = c
			Log = c.GetLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer == nil {
				return
			}
			if err := AppContainer.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close container")
			}
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (or directory for batch)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (or directory for batch)")
}

// GetContainer returns the application container, or nil before PersistentPreRun.
func GetContainer() *container.Container {
	return AppContainer
}

// MustContainer returns the application container or exits when it is missing.
func MustContainer() *container.Container {
	if AppContainer == nil {
		Log.Fatalf("Container not initialized")
	}
	return AppContainer
}
