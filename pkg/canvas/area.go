package canvas

// AvailableArea reduces the full viewport to the rectangle of free
// canvas space for the given canvas identity.
//
// The calculation subtracts chrome in a fixed order: top bar, side
// rails, assistant panel (an overlay, so it claims width regardless
// of rail state), history panel, then the split share for
// primary/secondary canvases, and finally the margin on every side.
// A request for the secondary area while the secondary canvas is
// hidden still yields a valid rectangle; callers are expected not to
// place into it.
//
// The result is floored at 200x150 so placement always has a usable
// rectangle, no matter how much of the screen the chrome consumes.
// The function is pure and never fails.
func (e *Engine) AvailableArea(canvas CanvasID) Rect {
	c := e.chrome

	x := 0.0
	y := c.TopBarHeight
	width := c.ScreenWidth
	height := c.ScreenHeight - c.TopBarHeight

	if lw := c.LeftRail.Width(); lw > 0 {
		x += lw
		width -= lw
	}
	if c.RightRail.Visible {
		width -= c.RightRail.Width
	}
	width -= c.AssistantPanel.CurrentWidth()
	if c.HistoryPanel.Visible {
		height -= c.HistoryPanel.Height
	}

	switch canvas {
	case CanvasPrimary:
		if c.SecondaryVisible {
			width = width * c.SplitPosition / 100
		}
	case CanvasSecondary:
		primaryWidth := width * c.SplitPosition / 100
		x += primaryWidth
		width -= primaryWidth
	}

	x += e.margin
	y += e.margin
	width -= 2 * e.margin
	height -= 2 * e.margin

	if width < minAreaWidth {
		width = minAreaWidth
	}
	if height < minAreaHeight {
		height = minAreaHeight
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

// isNarrow reports whether an area triggers the compact placement
// branch.
func (e *Engine) isNarrow(area Rect) bool {
	return area.Width < e.narrowThreshold
}
