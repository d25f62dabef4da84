package commands

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"

	configFile   string
	envPath      string
	outputFormat string
	showWebView  bool
)

// SetVersion sets the version reported by the version command
func SetVersion(v string) {
	version = v
}

// NewRootCmd creates the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dbp",
		Short: "Data broker protection control",
		Long: `Control data broker protection.

Saves the profile to search for, and drives the background agent that
scans people-search sites and submits opt-out requests.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&envPath, "env", "config/", "Path to environment files")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format (text|json)")

	cmd.AddCommand(
		NewProfileCmd(),
		NewScanCmd(),
		NewScheduleCmd(),
		NewOptOutsCmd(),
		NewOpenCmd(),
		NewLaunchCmd(),
		NewDebugCmd(),
		NewStatusCmd(),
		NewVersionCmd(),
	)
	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
