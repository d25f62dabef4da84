package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brokerguard/dbp/internal/loginitem"
)

// newAgentCmd creates a command that relays one call to the agent
func newAgentCmd(use, short, done string, relay func(a *app, args []string) func(loginitem.Completion)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.requireEnabled(cmd.Context()); err != nil {
				return err
			}
			if err := call(cmd.Context(), relay(a, args)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), done)
			return nil
		},
	}
}

// NewScanCmd creates the scan command
func NewScanCmd() *cobra.Command {
	cmd := newAgentCmd("scan", "Scan every broker now, then run due opt-outs", "Immediate operations started",
		func(a *app, _ []string) func(loginitem.Completion) {
			return func(c loginitem.Completion) { a.bridge.StartImmediateOperations(showWebView, c) }
		})
	cmd.Flags().BoolVar(&showWebView, "show-web-view", false, "Show the automation browser")
	return cmd
}

// NewScheduleCmd creates the schedule command
func NewScheduleCmd() *cobra.Command {
	cmd := newAgentCmd("schedule", "Run due scans and opt-outs periodically", "Scheduled operations started",
		func(a *app, _ []string) func(loginitem.Completion) {
			return func(c loginitem.Completion) { a.bridge.StartScheduledOperations(showWebView, c) }
		})
	cmd.Flags().BoolVar(&showWebView, "show-web-view", false, "Show the automation browser")
	return cmd
}

// NewOptOutsCmd creates the optouts command
func NewOptOutsCmd() *cobra.Command {
	cmd := newAgentCmd("optouts", "Run every pending opt-out now", "Opt-outs started",
		func(a *app, _ []string) func(loginitem.Completion) {
			return func(c loginitem.Completion) { a.bridge.RunAllOptOuts(showWebView, c) }
		})
	cmd.Flags().BoolVar(&showWebView, "show-web-view", false, "Show the automation browser")
	return cmd
}

// NewOpenCmd creates the open command
func NewOpenCmd() *cobra.Command {
	cmd := newAgentCmd("open <domain>", "Open a broker site from the agent", "Browser opened",
		func(a *app, args []string) func(loginitem.Completion) {
			return func(c loginitem.Completion) { a.bridge.OpenBrowser(args[0], c) }
		})
	cmd.Args = cobra.ExactArgs(1)
	return cmd
}

// NewLaunchCmd creates the launch command, run when the app starts
func NewLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch",
		Short: "Notify the agent that the app started",
		Long: `Notify the agent that the app started.

Wipes the feature's data first when this install is no longer allowed to use it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			ctx := cmd.Context()

			disabled, err := a.disabler.DisableIfNotAllowed(ctx)
			if err != nil {
				return err
			}
			if disabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Data broker protection is no longer available, data deleted")
				return nil
			}
			return call(ctx, a.bridge.AppLaunched)
		},
	}
}
