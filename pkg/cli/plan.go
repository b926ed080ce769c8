package cli

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/crewstudio/crewcanvas/pkg/canvas"
)

// plannedNode pairs a generated node ID with its planned position.
type plannedNode struct {
	ID       string       `json:"id"`
	Position canvas.Point `json:"position"`
}

// planOutput is the JSON shape of a crew layout plan.
type planOutput struct {
	Agents      []plannedNode `json:"agents"`
	Tasks       []plannedNode `json:"tasks"`
	Bounds      canvas.Rect   `json:"bounds"`
	ExceedsArea bool          `json:"exceeds_area"`
	AutoFitZoom float64       `json:"auto_fit_zoom,omitempty"`
}

// NewPlanCommand creates the plan command
func NewPlanCommand() *cobra.Command {
	var src chromeSource
	var canvasID string
	var agentCount, taskCount int

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a bulk crew layout",
		Long: `Compute positions for creating several agents and tasks at once, the
way chat-driven generation drops a whole crew onto the canvas.

When the layout exceeds the available area the output includes the
auto-fit zoom the viewer would apply.

Examples:
  crewcanvas plan --agents 3 --tasks 2
  crewcanvas plan --agents 8 --tasks 4 --canvas primary --preset split-view`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if agentCount < 0 || taskCount < 0 {
				return fmt.Errorf("agent and task counts must be non-negative")
			}

			id, err := parseCanvasID(canvasID)
			if err != nil {
				return err
			}

			engine, err := src.buildEngine()
			if err != nil {
				return err
			}

			result := engine.PlanCrewLayout(agentCount, taskCount, id)

			out := planOutput{
				Agents:      make([]plannedNode, 0, len(result.AgentPositions)),
				Tasks:       make([]plannedNode, 0, len(result.TaskPositions)),
				Bounds:      result.Bounds,
				ExceedsArea: result.ExceedsArea,
			}
			for _, pos := range result.AgentPositions {
				out.Agents = append(out.Agents, plannedNode{ID: newNodeID("agent"), Position: pos})
			}
			for _, pos := range result.TaskPositions {
				out.Tasks = append(out.Tasks, plannedNode{ID: newNodeID("task"), Position: pos})
			}
			if result.ExceedsArea {
				out.AutoFitZoom = engine.AutoFitZoom(result.Bounds, id)
			}

			encoded, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode plan: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}

	cmd.Flags().IntVar(&agentCount, "agents", 0, "Number of agents to place")
	cmd.Flags().IntVar(&taskCount, "tasks", 0, "Number of tasks to place")
	cmd.Flags().StringVar(&canvasID, "canvas", "single", "Canvas identity (primary, secondary, single)")
	cmd.Flags().StringVar(&src.chromePath, "chrome", "", "Chrome state YAML file")
	cmd.Flags().StringVar(&src.presetName, "preset", "", "Saved chrome preset name")

	return cmd
}

// newNodeID generates a short unique node ID like the builder does.
func newNodeID(kind string) string {
	return kind + "-" + uuid.New().String()[:8]
}
