package canvas

// Single-node placement.
//
// Placement avoids collisions within a kind structurally, by stacking
// below the lowest node or opening a new column, rather than by
// overlap testing. Nodes of other kinds are deliberately ignored: the
// builder keeps agents, tasks, and flow steps in separate regions by
// convention, and same-kind stacking is sufficient for that. Callers
// that need a hard guarantee can check WouldOverlap themselves.

// placementStrategy decides coordinates for one (kind, viewport
// class) pair. placeFirst sees the full node list because some empty
// cases anchor relative to other kinds; placeNext only sees nodes of
// its own kind.
type placementStrategy interface {
	placeFirst(e *Engine, area Rect, nodes []ExistingNode) Point
	placeNext(e *Engine, area Rect, same []ExistingNode) Point
}

// strategyKey selects a placement strategy.
type strategyKey struct {
	kind   NodeKind
	narrow bool
}

var strategies = map[strategyKey]placementStrategy{
	{KindAgent, false}:    agentStrategy{},
	{KindAgent, true}:     agentStrategy{narrow: true},
	{KindTask, false}:     taskStrategy{},
	{KindTask, true}:      taskStrategy{narrow: true},
	{KindFlowStep, false}: flowStepStrategy{},
	{KindFlowStep, true}:  flowStepStrategy{narrow: true},
}

// AgentNodePosition returns the position for a new agent node.
func (e *Engine) AgentNodePosition(nodes []ExistingNode, canvas CanvasID) Point {
	return e.place(KindAgent, nodes, canvas)
}

// TaskNodePosition returns the position for a new task node.
func (e *Engine) TaskNodePosition(nodes []ExistingNode, canvas CanvasID) Point {
	return e.place(KindTask, nodes, canvas)
}

// FlowStepNodePosition returns the position for a new flow-step node.
func (e *Engine) FlowStepNodePosition(nodes []ExistingNode, canvas CanvasID) Point {
	return e.place(KindFlowStep, nodes, canvas)
}

// place runs the shared decision structure: compute the area, pick
// the (kind, viewport class) strategy, then branch on whether any
// node of the kind already exists.
func (e *Engine) place(kind NodeKind, nodes []ExistingNode, canvas CanvasID) Point {
	area := e.AvailableArea(canvas)
	strat := strategies[strategyKey{kind: kind, narrow: e.isNarrow(area)}]

	same := filterKind(nodes, kind)
	if len(same) == 0 {
		return strat.placeFirst(e, area, nodes)
	}
	return strat.placeNext(e, area, same)
}

// spacingFor returns the inter-node gap, halved on narrow viewports.
func (e *Engine) spacingFor(narrow bool) float64 {
	if narrow {
		return e.nodeSpacing / 2
	}
	return e.nodeSpacing
}

// lowestNode returns the node with the greatest y coordinate.
func lowestNode(same []ExistingNode) ExistingNode {
	lowest := same[0]
	for _, n := range same[1:] {
		if n.Position.Y > lowest.Position.Y {
			lowest = n
		}
	}
	return lowest
}

// rightmostNode returns the node with the greatest x coordinate.
func rightmostNode(same []ExistingNode) ExistingNode {
	rightmost := same[0]
	for _, n := range same[1:] {
		if n.Position.X > rightmost.Position.X {
			rightmost = n
		}
	}
	return rightmost
}

// nextStackedPosition stacks below the lowest node of the kind. If
// that would overflow the bottom edge it opens a new column to the
// right of the rightmost node, provided the column still fits within
// the right edge. When neither fits it stacks anyway: overflow is
// tolerated and the caller auto-fits the view.
func nextStackedPosition(area Rect, same []ExistingNode, dims Size, spacing float64) Point {
	lowest := lowestNode(same)
	stacked := Point{X: lowest.Position.X, Y: lowest.Position.Y + dims.Height + spacing}
	if stacked.Y+dims.Height <= area.Bottom() {
		return stacked
	}

	rightmost := rightmostNode(same)
	column := Point{X: rightmost.Position.X + dims.Width + spacing, Y: area.Y}
	if column.X+dims.Width <= area.Right() {
		return column
	}

	return stacked
}

// nextCompactPosition is the narrow-viewport variant: stack beneath
// the lowest node while vertical room remains, otherwise start a new
// column right of the rightmost node without checking the right edge.
func nextCompactPosition(area Rect, same []ExistingNode, dims Size, spacing float64) Point {
	lowest := lowestNode(same)
	stacked := Point{X: lowest.Position.X, Y: lowest.Position.Y + dims.Height + spacing}
	if stacked.Y+dims.Height <= area.Bottom() {
		return stacked
	}

	rightmost := rightmostNode(same)
	return Point{X: rightmost.Position.X + dims.Width + spacing, Y: area.Y}
}

// agentStrategy anchors the first agent at the top-left of the area
// and stacks the rest in columns.
type agentStrategy struct {
	narrow bool
}

func (s agentStrategy) placeFirst(e *Engine, area Rect, nodes []ExistingNode) Point {
	return Point{X: area.X, Y: area.Y}
}

func (s agentStrategy) placeNext(e *Engine, area Rect, same []ExistingNode) Point {
	dims := e.DimensionsFor(KindAgent)
	spacing := e.spacingFor(s.narrow)
	if s.narrow {
		return nextCompactPosition(area, same, dims, spacing)
	}
	return nextStackedPosition(area, same, dims, spacing)
}

// taskStrategy anchors the first task right of the agent column and
// keeps all tasks in a single vertical rail: new tasks stack below
// the lowest task at the column's x even when that overflows.
// A uniform task rail beats horizontal sprawl.
type taskStrategy struct {
	narrow bool
}

func (s taskStrategy) placeFirst(e *Engine, area Rect, nodes []ExistingNode) Point {
	agents := filterKind(nodes, KindAgent)
	if len(agents) == 0 {
		return Point{X: area.X, Y: area.Y}
	}
	agentDims := e.DimensionsFor(KindAgent)
	rightmost := rightmostNode(agents)
	return Point{
		X: rightmost.Position.X + agentDims.Width + e.spacingFor(s.narrow),
		Y: area.Y,
	}
}

func (s taskStrategy) placeNext(e *Engine, area Rect, same []ExistingNode) Point {
	dims := e.DimensionsFor(KindTask)
	lowest := lowestNode(same)
	return Point{
		X: lowest.Position.X,
		Y: lowest.Position.Y + dims.Height + e.spacingFor(s.narrow),
	}
}

// flowStepStrategy centers the first step horizontally near the top
// and stacks the rest like agents.
type flowStepStrategy struct {
	narrow bool
}

func (s flowStepStrategy) placeFirst(e *Engine, area Rect, nodes []ExistingNode) Point {
	dims := e.DimensionsFor(KindFlowStep)
	return Point{X: area.X + (area.Width-dims.Width)/2, Y: area.Y}
}

func (s flowStepStrategy) placeNext(e *Engine, area Rect, same []ExistingNode) Point {
	dims := e.DimensionsFor(KindFlowStep)
	spacing := e.spacingFor(s.narrow)
	if s.narrow {
		return nextCompactPosition(area, same, dims, spacing)
	}
	return nextStackedPosition(area, same, dims, spacing)
}
