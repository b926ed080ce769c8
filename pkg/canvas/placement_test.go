package canvas

import (
	"fmt"
	"testing"
)

func TestFirstAgentAnchorsTopLeft(t *testing.T) {
	e := newBareEngine()

	pos := e.AgentNodePosition(nil, CanvasSingle)

	if pos.X != 20 || pos.Y != 68 {
		t.Errorf("first agent = (%v, %v), want (20, 68)", pos.X, pos.Y)
	}
}

func TestSecondAgentStacksBelow(t *testing.T) {
	e := newBareEngine()

	nodes := []ExistingNode{
		{ID: "agent-1", Kind: KindAgent, Position: Point{X: 20, Y: 68}},
	}
	pos := e.AgentNodePosition(nodes, CanvasSingle)

	// 68 + agent height 150 + spacing 50
	if pos.X != 20 || pos.Y != 268 {
		t.Errorf("second agent = (%v, %v), want (20, 268)", pos.X, pos.Y)
	}
}

func TestAgentOverflowStartsNewColumn(t *testing.T) {
	e := newBareEngine()
	area := e.AvailableArea(CanvasSingle)

	// Fill one column down to the bottom edge
	nodes := []ExistingNode{}
	y := area.Y
	for y+150 <= area.Bottom() {
		nodes = append(nodes, ExistingNode{
			ID:       fmt.Sprintf("agent-%d", len(nodes)),
			Kind:     KindAgent,
			Position: Point{X: area.X, Y: y},
		})
		y += 150 + 50
	}

	pos := e.AgentNodePosition(nodes, CanvasSingle)
	if pos.X != area.X+200+50 {
		t.Errorf("X = %v, want new column at %v", pos.X, area.X+200+50)
	}
	if pos.Y != area.Y {
		t.Errorf("Y = %v, want column top %v", pos.Y, area.Y)
	}
}

func TestAgentOverflowToleratedWhenNoColumnFits(t *testing.T) {
	// 640x400 screen: a 600x312 area where neither stacking nor a
	// new column fits once two columns exist
	chrome := bareChrome()
	chrome.ScreenWidth = 640
	chrome.ScreenHeight = 400
	e := NewEngineWithOptions(Options{Chrome: &chrome})
	area := e.AvailableArea(CanvasSingle)

	nodes := []ExistingNode{
		{ID: "agent-1", Kind: KindAgent, Position: Point{X: area.X, Y: area.Y}},
		{ID: "agent-2", Kind: KindAgent, Position: Point{X: area.X + 250, Y: area.Y}},
	}
	pos := e.AgentNodePosition(nodes, CanvasSingle)

	// Falls back to stacking below the lowest node, past the bottom edge
	if pos.X != area.X || pos.Y != area.Y+150+50 {
		t.Errorf("fallback = (%v, %v), want (%v, %v)", pos.X, pos.Y, area.X, area.Y+150+50)
	}
}

func TestFirstTaskAnchorsRightOfAgents(t *testing.T) {
	e := newBareEngine()

	nodes := []ExistingNode{
		{ID: "agent-1", Kind: KindAgent, Position: Point{X: 20, Y: 68}},
		{ID: "agent-2", Kind: KindAgent, Position: Point{X: 20, Y: 268}},
	}
	pos := e.TaskNodePosition(nodes, CanvasSingle)

	// Right of the agent column: agent x + agent width + spacing
	if pos.X != 20+200+50 {
		t.Errorf("X = %v, want %v", pos.X, 20+200+50)
	}
	if pos.Y != 68 {
		t.Errorf("Y = %v, want area top 68", pos.Y)
	}
}

func TestFirstTaskWithoutAgentsAnchorsTopLeft(t *testing.T) {
	e := newBareEngine()

	pos := e.TaskNodePosition(nil, CanvasSingle)
	if pos.X != 20 || pos.Y != 68 {
		t.Errorf("first task = (%v, %v), want (20, 68)", pos.X, pos.Y)
	}
}

func TestTasksStayInSingleColumn(t *testing.T) {
	e := newBareEngine()
	area := e.AvailableArea(CanvasSingle)

	// Stack tasks well past the bottom edge; the rail must never
	// wrap into a second column.
	nodes := []ExistingNode{
		{ID: "task-0", Kind: KindTask, Position: Point{X: 270, Y: area.Y}},
	}
	for i := 0; i < 10; i++ {
		pos := e.TaskNodePosition(nodes, CanvasSingle)
		if pos.X != 270 {
			t.Fatalf("task %d X = %v, want column x 270", i+1, pos.X)
		}
		last := nodes[len(nodes)-1].Position
		if pos.Y != last.Y+120+50 {
			t.Fatalf("task %d Y = %v, want %v", i+1, pos.Y, last.Y+120+50)
		}
		nodes = append(nodes, ExistingNode{
			ID:       fmt.Sprintf("task-%d", i+1),
			Kind:     KindTask,
			Position: pos,
		})
	}
}

func TestFirstFlowStepCentersHorizontally(t *testing.T) {
	e := newBareEngine()
	area := e.AvailableArea(CanvasSingle)

	pos := e.FlowStepNodePosition(nil, CanvasSingle)

	wantX := area.X + (area.Width-180)/2
	if pos.X != wantX {
		t.Errorf("X = %v, want centered %v", pos.X, wantX)
	}
	if pos.Y != area.Y {
		t.Errorf("Y = %v, want area top %v", pos.Y, area.Y)
	}
}

func TestNarrowPlacementHalvesSpacing(t *testing.T) {
	// 540px screen gives a 500px area, below the narrow threshold
	chrome := bareChrome()
	chrome.ScreenWidth = 540
	e := NewEngineWithOptions(Options{Chrome: &chrome})

	nodes := []ExistingNode{
		{ID: "agent-1", Kind: KindAgent, Position: Point{X: 20, Y: 68}},
	}
	pos := e.AgentNodePosition(nodes, CanvasSingle)

	// Halved spacing: 68 + 150 + 25
	if pos.Y != 68+150+25 {
		t.Errorf("Y = %v, want %v", pos.Y, 68+150+25.0)
	}
}

func TestNarrowPlacementNewColumnWithoutRightEdgeCheck(t *testing.T) {
	chrome := bareChrome()
	chrome.ScreenWidth = 540
	chrome.ScreenHeight = 400
	e := NewEngineWithOptions(Options{Chrome: &chrome})
	area := e.AvailableArea(CanvasSingle)

	// One agent at the top, no vertical room for a second
	nodes := []ExistingNode{
		{ID: "agent-1", Kind: KindAgent, Position: Point{X: area.X, Y: area.Y}},
		{ID: "agent-2", Kind: KindAgent, Position: Point{X: area.X, Y: area.Y + 175}},
	}
	pos := e.AgentNodePosition(nodes, CanvasSingle)

	// New column right of the rightmost, even if it lands outside
	if pos.X != area.X+200+25 {
		t.Errorf("X = %v, want %v", pos.X, area.X+200+25)
	}
	if pos.Y != area.Y {
		t.Errorf("Y = %v, want %v", pos.Y, area.Y)
	}
}

// Successive placements of the same kind must never land on an
// existing node of that kind.
func TestPlacementNeverRepeatsPosition(t *testing.T) {
	kinds := []struct {
		kind  NodeKind
		place func(e *Engine, nodes []ExistingNode) Point
	}{
		{KindAgent, func(e *Engine, nodes []ExistingNode) Point {
			return e.AgentNodePosition(nodes, CanvasSingle)
		}},
		{KindTask, func(e *Engine, nodes []ExistingNode) Point {
			return e.TaskNodePosition(nodes, CanvasSingle)
		}},
		{KindFlowStep, func(e *Engine, nodes []ExistingNode) Point {
			return e.FlowStepNodePosition(nodes, CanvasSingle)
		}},
	}

	for _, k := range kinds {
		t.Run(string(k.kind), func(t *testing.T) {
			e := newBareEngine()
			var nodes []ExistingNode
			for i := 0; i < 12; i++ {
				pos := k.place(e, nodes)
				for _, n := range nodes {
					if n.Position == pos {
						t.Fatalf("placement %d returned occupied position (%v, %v)", i, pos.X, pos.Y)
					}
				}
				nodes = append(nodes, ExistingNode{
					ID:       fmt.Sprintf("%s-%d", k.kind, i),
					Kind:     k.kind,
					Position: pos,
				})
			}
		})
	}
}

func TestPlacementIgnoresOtherKinds(t *testing.T) {
	e := newBareEngine()

	// A task sitting at the agent anchor must not move the first agent
	nodes := []ExistingNode{
		{ID: "task-1", Kind: KindTask, Position: Point{X: 20, Y: 68}},
	}
	pos := e.AgentNodePosition(nodes, CanvasSingle)
	if pos.X != 20 || pos.Y != 68 {
		t.Errorf("first agent = (%v, %v), want (20, 68) regardless of tasks", pos.X, pos.Y)
	}
}
