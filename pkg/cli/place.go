package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crewstudio/crewcanvas/pkg/canvas"
	operrors "github.com/crewstudio/crewcanvas/pkg/errors"
	"github.com/crewstudio/crewcanvas/pkg/snapshot"
)

// placeableKinds maps the place argument to a node kind.
var placeableKinds = map[string]canvas.NodeKind{
	"agent":     canvas.KindAgent,
	"task":      canvas.KindTask,
	"flow-step": canvas.KindFlowStep,
}

// NewPlaceCommand creates the place command
func NewPlaceCommand() *cobra.Command {
	var src chromeSource
	var canvasID string
	var nodesPath string

	cmd := &cobra.Command{
		Use:   "place <agent|task|flow-step>",
		Short: "Compute the position for the next node of a kind",
		Long: `Compute where the builder would place the next node of the given kind,
optionally against an exported canvas snapshot.

When the snapshot carries a chrome block it is used unless --chrome or
--preset overrides it.

Examples:
  crewcanvas place agent
  crewcanvas place task --nodes export.json
  crewcanvas place flow-step --nodes export.json --canvas primary`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := placeableKinds[args[0]]
			if !ok {
				return fmt.Errorf("invalid node kind %q: must be agent, task, or flow-step", args[0])
			}

			id, err := parseCanvasID(canvasID)
			if err != nil {
				return err
			}

			var nodes []canvas.ExistingNode
			var snapChrome *canvas.ChromeState
			if nodesPath != "" {
				data, err := os.ReadFile(nodesPath)
				if err != nil {
					return fmt.Errorf("failed to read snapshot: %w", err)
				}
				snap, err := snapshot.Parse(data)
				if err != nil {
					return operrors.NewOperationalError("parsing snapshot", string(id), string(kind), err)
				}
				nodes = snap.Nodes
				snapChrome = snap.Chrome
			}

			engine, err := src.buildEngine()
			if err != nil {
				return err
			}
			// Snapshot chrome applies only when no explicit source was given
			if snapChrome != nil && src.chromePath == "" && src.presetName == "" {
				engine.SetChrome(*snapChrome)
			}

			var pos canvas.Point
			switch kind {
			case canvas.KindAgent:
				pos = engine.AgentNodePosition(nodes, id)
			case canvas.KindTask:
				pos = engine.TaskNodePosition(nodes, id)
			case canvas.KindFlowStep:
				pos = engine.FlowStepNodePosition(nodes, id)
			}

			out, err := json.MarshalIndent(pos, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode position: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&canvasID, "canvas", "single", "Canvas identity (primary, secondary, single)")
	cmd.Flags().StringVar(&nodesPath, "nodes", "", "Exported canvas snapshot JSON")
	cmd.Flags().StringVar(&src.chromePath, "chrome", "", "Chrome state YAML file")
	cmd.Flags().StringVar(&src.presetName, "preset", "", "Saved chrome preset name")

	return cmd
}
