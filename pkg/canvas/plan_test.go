package canvas

import "testing"

func TestPlanCrewLayoutWideArea(t *testing.T) {
	e := newBareEngine() // 1160px area, well above 900

	result := e.PlanCrewLayout(3, 2, CanvasPrimary)

	if len(result.AgentPositions) != 3 {
		t.Fatalf("agent positions = %d, want 3", len(result.AgentPositions))
	}
	if len(result.TaskPositions) != 2 {
		t.Fatalf("task positions = %d, want 2", len(result.TaskPositions))
	}

	// Tasks occupy exactly one column
	taskX := result.TaskPositions[0].X
	for i, p := range result.TaskPositions {
		if p.X != taskX {
			t.Errorf("task %d X = %v, want shared column x %v", i, p.X, taskX)
		}
	}

	if result.ExceedsArea {
		t.Errorf("ExceedsArea = true, want false on a wide area")
	}
}

func TestPlanCrewLayoutGridColumns(t *testing.T) {
	e := newBareEngine()
	area := e.AvailableArea(CanvasSingle)

	// 692px of height fits 3 agent rows (floor(692/200)); the 7th
	// agent must start a third column.
	result := e.PlanCrewLayout(7, 1, CanvasSingle)

	rows := 3
	for i, p := range result.AgentPositions {
		col := i / rows
		row := i % rows
		wantX := area.X + float64(col)*250
		wantY := area.Y + float64(row)*200
		if p.X != wantX || p.Y != wantY {
			t.Errorf("agent %d = (%v, %v), want (%v, %v)", i, p.X, p.Y, wantX, wantY)
		}
	}

	// Task column sits right of all three agent columns
	wantTaskX := area.X + 3*250
	if result.TaskPositions[0].X != wantTaskX {
		t.Errorf("task X = %v, want %v", result.TaskPositions[0].X, wantTaskX)
	}
}

func TestPlanCrewLayoutCompactOverflow(t *testing.T) {
	// 540px screen gives a 500px-wide area; the history panel leaves
	// only the floor height, so three stacked agents overflow.
	chrome := bareChrome()
	chrome.ScreenWidth = 540
	chrome.HistoryPanel = HistoryPanelState{Visible: true, Height: 700}
	e := NewEngineWithOptions(Options{Chrome: &chrome})
	area := e.AvailableArea(CanvasPrimary)

	result := e.PlanCrewLayout(3, 2, CanvasPrimary)

	if len(result.AgentPositions) != 3 || len(result.TaskPositions) != 2 {
		t.Fatalf("positions = %d agents, %d tasks; want 3 and 2",
			len(result.AgentPositions), len(result.TaskPositions))
	}
	if !result.ExceedsArea {
		t.Errorf("ExceedsArea = false, want true (bounds %+v vs area %+v)", result.Bounds, area)
	}

	// Each kind keeps a single column
	for i, p := range result.AgentPositions {
		if p.X != area.X {
			t.Errorf("agent %d X = %v, want %v", i, p.X, area.X)
		}
	}
	taskX := area.X + area.Width/2
	for i, p := range result.TaskPositions {
		if p.X != taskX {
			t.Errorf("task %d X = %v, want %v", i, p.X, taskX)
		}
	}
}

func TestPlanCrewLayoutCompactSingleKind(t *testing.T) {
	chrome := bareChrome()
	chrome.ScreenWidth = 540
	e := NewEngineWithOptions(Options{Chrome: &chrome})
	area := e.AvailableArea(CanvasSingle)

	// Tasks only: the single column claims the full slot at the origin
	result := e.PlanCrewLayout(0, 3, CanvasSingle)
	if len(result.AgentPositions) != 0 {
		t.Fatalf("agent positions = %d, want 0", len(result.AgentPositions))
	}
	for i, p := range result.TaskPositions {
		if p.X != area.X {
			t.Errorf("task %d X = %v, want %v", i, p.X, area.X)
		}
		wantY := area.Y + float64(i)*(120+25)
		if p.Y != wantY {
			t.Errorf("task %d Y = %v, want %v", i, p.Y, wantY)
		}
	}
}

func TestPlanCrewLayoutEmpty(t *testing.T) {
	e := newBareEngine()

	result := e.PlanCrewLayout(0, 0, CanvasSingle)

	if len(result.AgentPositions) != 0 || len(result.TaskPositions) != 0 {
		t.Errorf("empty plan returned positions: %+v", result)
	}
	if result.ExceedsArea {
		t.Errorf("empty plan flagged as exceeding the area")
	}
	if result.Bounds.Width != 0 || result.Bounds.Height != 0 {
		t.Errorf("empty plan bounds = %+v, want zero size", result.Bounds)
	}
}

func TestPlanCrewLayoutBoundsTight(t *testing.T) {
	e := newBareEngine()
	area := e.AvailableArea(CanvasSingle)

	result := e.PlanCrewLayout(2, 1, CanvasSingle)

	// Two agents in one column plus one task column to the right:
	// width spans agent column + gap + task width, height spans the
	// taller agent column.
	wantWidth := 250 + 200.0
	wantHeight := 150 + 50 + 150.0
	if result.Bounds.Width != wantWidth {
		t.Errorf("Bounds.Width = %v, want %v", result.Bounds.Width, wantWidth)
	}
	if result.Bounds.Height != wantHeight {
		t.Errorf("Bounds.Height = %v, want %v", result.Bounds.Height, wantHeight)
	}
	if result.Bounds.X != area.X || result.Bounds.Y != area.Y {
		t.Errorf("Bounds origin = (%v, %v), want area origin (%v, %v)",
			result.Bounds.X, result.Bounds.Y, area.X, area.Y)
	}
}
