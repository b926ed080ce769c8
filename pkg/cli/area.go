package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewAreaCommand creates the area command
func NewAreaCommand() *cobra.Command {
	var src chromeSource
	var canvasID string

	cmd := &cobra.Command{
		Use:   "area",
		Short: "Show the available canvas area under the current chrome",
		Long: `Compute the rectangle of free canvas space left after subtracting
the top bar, side rails, assistant panel, history panel, and split share.

Examples:
  crewcanvas area
  crewcanvas area --canvas secondary --chrome chrome.yaml
  crewcanvas area --preset wide-with-history`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCanvasID(canvasID)
			if err != nil {
				return err
			}

			engine, err := src.buildEngine()
			if err != nil {
				return err
			}

			area := engine.AvailableArea(id)
			out, err := json.MarshalIndent(area, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode area: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&canvasID, "canvas", "single", "Canvas identity (primary, secondary, single)")
	cmd.Flags().StringVar(&src.chromePath, "chrome", "", "Chrome state YAML file")
	cmd.Flags().StringVar(&src.presetName, "preset", "", "Saved chrome preset name")

	return cmd
}
