package canvas

// CanvasID identifies which canvas an operation targets when the
// builder shows a split view.
type CanvasID string

const (
	// CanvasPrimary is the left canvas of a split view.
	CanvasPrimary CanvasID = "primary"
	// CanvasSecondary is the right canvas of a split view.
	CanvasSecondary CanvasID = "secondary"
	// CanvasSingle is the sole canvas when no split is active.
	CanvasSingle CanvasID = "single"
)

// NodeKind identifies the visual node type being placed.
type NodeKind string

const (
	KindAgent     NodeKind = "agent"
	KindTask      NodeKind = "task"
	KindFlowStep  NodeKind = "flow-step"
	KindComposite NodeKind = "composite"
)

// Point represents a coordinate in canvas pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size represents the dimensions of a rectangular area.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect represents a rectangular area in canvas pixel space.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Intersects checks if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	// No intersection if one rect is completely to the left, right,
	// above, or below the other
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ExistingNode is a read-only view of a node already on the canvas.
// The engine never mutates caller-supplied nodes; it only reads their
// kind and position to decide where the next node goes.
type ExistingNode struct {
	ID       string   `json:"id"`
	Kind     NodeKind `json:"kind"`
	Position Point    `json:"position"`
}

// defaultDimensions is the static footprint table by node kind.
// Unknown kinds fall back to the agent footprint.
func defaultDimensions() map[NodeKind]Size {
	return map[NodeKind]Size{
		KindAgent:     {Width: 200, Height: 150},
		KindTask:      {Width: 200, Height: 120},
		KindFlowStep:  {Width: 180, Height: 100},
		KindComposite: {Width: 240, Height: 180},
	}
}

// filterKind returns the nodes of a single kind, preserving order.
func filterKind(nodes []ExistingNode, kind NodeKind) []ExistingNode {
	var same []ExistingNode
	for _, n := range nodes {
		if n.Kind == kind {
			same = append(same, n)
		}
	}
	return same
}
