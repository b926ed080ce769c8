package canvas

import "math"

// PlanResult is the output of bulk crew planning.
type PlanResult struct {
	// AgentPositions holds one position per requested agent
	AgentPositions []Point `json:"agent_positions"`
	// TaskPositions holds one position per requested task
	TaskPositions []Point `json:"task_positions"`
	// Bounds is the tight bounding box over all positions plus each
	// node's footprint
	Bounds Rect `json:"bounds"`
	// ExceedsArea reports that the bounding box does not fit the
	// available area and the caller should auto-fit the view
	ExceedsArea bool `json:"exceeds_area"`
}

// PlanCrewLayout computes positions for creating agentCount agents
// and taskCount tasks at once, e.g. when chat generation produces a
// whole crew in one shot.
//
// Wide areas use a column grid: agents pack into columns sized by how
// many agent slots fit vertically, and tasks occupy a single column
// to the right of all agent columns. Narrow areas (< 600) use the
// compact layout: one column per kind, column width split evenly and
// clamped to a usable range.
//
// The planner never refuses: an arbitrarily large crew still gets
// coordinates, with ExceedsArea set when the bounding box outgrows
// the area.
func (e *Engine) PlanCrewLayout(agentCount, taskCount int, canvas CanvasID) PlanResult {
	area := e.AvailableArea(canvas)

	var result PlanResult
	if e.isNarrow(area) {
		result = e.planCompact(area, agentCount, taskCount)
	} else {
		result = e.planGrid(area, agentCount, taskCount)
	}

	result.ExceedsArea = result.Bounds.Width > area.Width || result.Bounds.Height > area.Height
	return result
}

// planGrid is the standard wide-area layout: agents in as many
// columns as needed, tasks in exactly one column to their right.
func (e *Engine) planGrid(area Rect, agentCount, taskCount int) PlanResult {
	agentDims := e.DimensionsFor(KindAgent)
	taskDims := e.DimensionsFor(KindTask)
	spacing := e.nodeSpacing

	rowsPerColumn := int(math.Floor(area.Height / (agentDims.Height + spacing)))
	if rowsPerColumn < 1 {
		rowsPerColumn = 1
	}

	agents := make([]Point, 0, agentCount)
	for i := 0; i < agentCount; i++ {
		col := i / rowsPerColumn
		row := i % rowsPerColumn
		agents = append(agents, Point{
			X: area.X + float64(col)*(agentDims.Width+spacing),
			Y: area.Y + float64(row)*(agentDims.Height+spacing),
		})
	}

	agentColumns := 0
	if agentCount > 0 {
		agentColumns = (agentCount + rowsPerColumn - 1) / rowsPerColumn
	}

	taskX := area.X + float64(agentColumns)*(agentDims.Width+spacing)
	tasks := make([]Point, 0, taskCount)
	for i := 0; i < taskCount; i++ {
		tasks = append(tasks, Point{
			X: taskX,
			Y: area.Y + float64(i)*(taskDims.Height+spacing),
		})
	}

	return PlanResult{
		AgentPositions: agents,
		TaskPositions:  tasks,
		Bounds:         e.planBounds(area, agents, agentDims, tasks, taskDims),
	}
}

// Compact column widths are clamped to keep nodes readable when the
// area is split between two kinds.
const (
	compactMinColumnWidth = 140
	compactMaxColumnWidth = 200
)

// planCompact is the narrow-area layout: at most one column per kind,
// both kinds stacked vertically, column width split evenly among the
// columns present.
func (e *Engine) planCompact(area Rect, agentCount, taskCount int) PlanResult {
	agentDims := e.DimensionsFor(KindAgent)
	taskDims := e.DimensionsFor(KindTask)
	spacing := e.nodeSpacing / 2

	columns := 0
	if agentCount > 0 {
		columns++
	}
	if taskCount > 0 {
		columns++
	}
	if columns == 0 {
		return PlanResult{
			AgentPositions: []Point{},
			TaskPositions:  []Point{},
			Bounds:         Rect{X: area.X, Y: area.Y},
		}
	}

	slotWidth := area.Width / float64(columns)
	columnWidth := slotWidth - spacing
	if columnWidth < compactMinColumnWidth {
		columnWidth = compactMinColumnWidth
	}
	if columnWidth > compactMaxColumnWidth {
		columnWidth = compactMaxColumnWidth
	}

	agentFootprint := Size{Width: columnWidth, Height: agentDims.Height}
	taskFootprint := Size{Width: columnWidth, Height: taskDims.Height}

	agents := make([]Point, 0, agentCount)
	for i := 0; i < agentCount; i++ {
		agents = append(agents, Point{
			X: area.X,
			Y: area.Y + float64(i)*(agentDims.Height+spacing),
		})
	}

	taskX := area.X
	if agentCount > 0 {
		taskX = area.X + slotWidth
	}
	tasks := make([]Point, 0, taskCount)
	for i := 0; i < taskCount; i++ {
		tasks = append(tasks, Point{
			X: taskX,
			Y: area.Y + float64(i)*(taskDims.Height+spacing),
		})
	}

	return PlanResult{
		AgentPositions: agents,
		TaskPositions:  tasks,
		Bounds:         e.planBounds(area, agents, agentFootprint, tasks, taskFootprint),
	}
}

// planBounds computes the tight bounding box over both position sets
// including node footprints. An empty plan collapses to a zero-size
// box at the area origin.
func (e *Engine) planBounds(area Rect, agents []Point, agentDims Size, tasks []Point, taskDims Size) Rect {
	if len(agents) == 0 && len(tasks) == 0 {
		return Rect{X: area.X, Y: area.Y}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	extend := func(p Point, dims Size) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X+dims.Width)
		maxY = math.Max(maxY, p.Y+dims.Height)
	}
	for _, p := range agents {
		extend(p, agentDims)
	}
	for _, p := range tasks {
		extend(p, taskDims)
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
