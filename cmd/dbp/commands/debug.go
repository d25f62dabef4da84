package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// NewDebugCmd creates the debug command
func NewDebugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Show debug metadata of the running agent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			md, err := a.bridge.GetDebugMetadata(cmd.Context())
			if err != nil {
				return err
			}
			if outputFormat == "json" {
				return printJSON(cmd, md)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Agent version\t%s\n", md.AgentVersion)
			fmt.Fprintf(w, "Agent pid\t%d\n", md.AgentPID)
			fmt.Fprintf(w, "Ready since\t%s\n", formatTime(md.ReadySince))
			fmt.Fprintf(w, "Scheduled\t%t\n", md.Scheduled)
			fmt.Fprintf(w, "Running\t%t\n", md.Running)
			fmt.Fprintf(w, "Last run started\t%s\n", formatTime(md.LastRunStarted))
			fmt.Fprintf(w, "Last run finished\t%s\n", formatTime(md.LastRunFinished))
			fmt.Fprintf(w, "Scans run\t%d\n", md.ScansRun)
			fmt.Fprintf(w, "Opt-outs run\t%d\n", md.OptOutsRun)
			fmt.Fprintf(w, "Failures\t%d\n", md.Failures)
			return w.Flush()
		},
	}
}

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the feature is available and the agent is running",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			status, err := a.gatekeeper.Status(cmd.Context())
			if err != nil {
				return err
			}
			out := map[string]bool{
				"privacyEnabled": status.PrivacyEnabled,
				"inRollout":      status.InRollout,
				"entitled":       status.Entitled,
				"enabled":        status.Enabled(),
				"agentEnabled":   a.item.IsEnabled(),
				"agentRunning":   a.item.IsRunning(),
			}
			if outputFormat == "json" {
				return printJSON(cmd, out)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Privacy config\t%s\n", onOff(status.PrivacyEnabled))
			fmt.Fprintf(w, "Rollout\t%s\n", onOff(status.InRollout))
			fmt.Fprintf(w, "Entitlement\t%s\n", onOff(status.Entitled))
			fmt.Fprintf(w, "Feature\t%s\n", onOff(status.Enabled()))
			fmt.Fprintf(w, "Agent enabled\t%s\n", onOff(a.item.IsEnabled()))
			fmt.Fprintf(w, "Agent running\t%s\n", onOff(a.item.IsRunning()))
			return w.Flush()
		},
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Local().Format(time.RFC3339)
}
