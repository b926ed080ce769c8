// Package canvas implements the layout engine for the visual crew
// builder. It computes where new agent, task, and flow-step nodes are
// placed on a 2D canvas given the occluding UI chrome (rails, the
// assistant panel, the history panel, an optional split view), plans
// bulk crew layouts, and provides fit/scale/zoom utilities.
//
// The engine is a pure function of (chrome snapshot, existing node
// list): it owns no nodes, caches nothing between calls, and has no
// failure modes. Degenerate geometry is clamped, layouts that do not
// fit are flagged rather than refused, and callers are expected to
// auto-fit the viewport instead of the engine ever returning an
// error. One engine is created per canvas session; callers that
// update chrome and place nodes from multiple goroutines must
// serialize those calls themselves.
package canvas

// Layout constants
const (
	defaultMargin          = 20  // Pixels between chrome edges and placeable area
	defaultNodeSpacing     = 50  // Minimum gap between nodes of the same kind
	defaultNarrowThreshold = 600 // Area width below which compact placement kicks in

	minAreaWidth  = 200 // Floor width of any computed area
	minAreaHeight = 150 // Floor height of any computed area
)

// Engine computes node placements for one canvas session.
type Engine struct {
	chrome          ChromeState
	margin          float64
	nodeSpacing     float64
	narrowThreshold float64
	dims            map[NodeKind]Size
}

// Options customizes engine construction. Zero values fall back to
// the compiled-in defaults.
type Options struct {
	Margin          float64
	NodeSpacing     float64
	NarrowThreshold float64
	Chrome          *ChromeState
	// Dimensions overrides the footprint of individual node kinds.
	Dimensions map[NodeKind]Size
}

// NewEngine creates an engine with default chrome, margin, spacing,
// and node dimensions.
func NewEngine() *Engine {
	return NewEngineWithOptions(Options{})
}

// NewEngineWithOptions creates an engine with the given overrides.
func NewEngineWithOptions(opts Options) *Engine {
	e := &Engine{
		chrome:          DefaultChrome(),
		margin:          defaultMargin,
		nodeSpacing:     defaultNodeSpacing,
		narrowThreshold: defaultNarrowThreshold,
		dims:            defaultDimensions(),
	}
	if opts.Margin > 0 {
		e.margin = opts.Margin
	}
	if opts.NodeSpacing > 0 {
		e.nodeSpacing = opts.NodeSpacing
	}
	if opts.NarrowThreshold > 0 {
		e.narrowThreshold = opts.NarrowThreshold
	}
	if opts.Chrome != nil {
		e.chrome = *opts.Chrome
	}
	for kind, size := range opts.Dimensions {
		e.dims[kind] = size
	}
	return e
}

// Chrome returns a copy of the current chrome snapshot.
func (e *Engine) Chrome() ChromeState {
	return e.chrome
}

// Margin returns the placeable-area margin in pixels.
func (e *Engine) Margin() float64 {
	return e.margin
}

// NodeSpacing returns the minimum same-kind node gap in pixels.
func (e *Engine) NodeSpacing() float64 {
	return e.nodeSpacing
}

// DimensionsFor returns the footprint for a node kind. Unknown kinds
// fall back to the agent footprint so placement always has a size to
// work with.
func (e *Engine) DimensionsFor(kind NodeKind) Size {
	if size, ok := e.dims[kind]; ok {
		return size
	}
	return e.dims[KindAgent]
}

// UpdateChrome merges a partial chrome state into the current
// snapshot. Each non-nil field replaces its top-level key wholesale.
// Values are taken as-is; the available-area floors are the safety
// net for out-of-range input.
func (e *Engine) UpdateChrome(update ChromeUpdate) {
	if update.ScreenWidth != nil {
		e.chrome.ScreenWidth = *update.ScreenWidth
	}
	if update.ScreenHeight != nil {
		e.chrome.ScreenHeight = *update.ScreenHeight
	}
	if update.TopBarHeight != nil {
		e.chrome.TopBarHeight = *update.TopBarHeight
	}
	if update.LeftRail != nil {
		e.chrome.LeftRail = *update.LeftRail
	}
	if update.RightRail != nil {
		e.chrome.RightRail = *update.RightRail
	}
	if update.AssistantPanel != nil {
		e.chrome.AssistantPanel = *update.AssistantPanel
	}
	if update.HistoryPanel != nil {
		e.chrome.HistoryPanel = *update.HistoryPanel
	}
	if update.SplitPosition != nil {
		e.chrome.SplitPosition = *update.SplitPosition
	}
	if update.SecondaryVisible != nil {
		e.chrome.SecondaryVisible = *update.SecondaryVisible
	}
}

// SetChrome replaces the entire chrome snapshot.
func (e *Engine) SetChrome(chrome ChromeState) {
	e.chrome = chrome
}

// UpdateViewport updates only the screen dimensions.
func (e *Engine) UpdateViewport(width, height float64) {
	e.chrome.ScreenWidth = width
	e.chrome.ScreenHeight = height
}
