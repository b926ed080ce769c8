package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewstudio/crewcanvas/pkg/snapshot"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate <snapshot.json>",
		Short: "Validate an exported canvas snapshot",
		Long: `Validate a canvas export against the snapshot schema.

This checks:
- Every node carries a non-empty id
- Node kinds are known (agent, task, flow-step, composite)
- Positions have numeric x/y coordinates

Examples:
  crewcanvas validate export.json
  crewcanvas validate export.json --verbose`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read snapshot: %w", err)
			}

			if err := snapshot.Validate(data); err != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "✗ Snapshot is invalid")
				if verbose {
					_, _ = fmt.Fprintf(cmd.OutOrStderr(), "  Error: %v\n", err)
				}
				return err
			}

			snap, err := snapshot.Parse(data)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Snapshot is valid (%d nodes)\n", len(snap.Nodes))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed validation errors")

	return cmd
}
