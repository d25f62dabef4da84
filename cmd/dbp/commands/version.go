package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brokerguard/dbp/internal/adapter"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "dbp %s\n", version)
			return nil
		},
	}
}

// printJSON writes v as indented JSON
func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := adapter.NewJSON().MarshalIndent(v)
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
	return nil
}
