package canvas

import "math"

// Auto-fit zoom clamps. The engine only ever recommends zooming out,
// never past 100%.
const (
	zoomMax         = 1.0
	zoomFloorNormal = 0.5
	zoomFloorNarrow = 0.3

	fitPaddingNormal = 40
	fitPaddingNarrow = 16
)

// WouldOverlap checks whether a node with the given footprint at the
// given position would collide with any existing node, requiring the
// configured node spacing as a gap on all sides. Placement does not
// call this internally; it is for callers that want a hard check
// across kinds.
func (e *Engine) WouldOverlap(pos Point, dims Size, nodes []ExistingNode) bool {
	padded := Rect{
		X:      pos.X - e.nodeSpacing,
		Y:      pos.Y - e.nodeSpacing,
		Width:  dims.Width + 2*e.nodeSpacing,
		Height: dims.Height + 2*e.nodeSpacing,
	}
	for _, n := range nodes {
		nd := e.DimensionsFor(n.Kind)
		other := Rect{X: n.Position.X, Y: n.Position.Y, Width: nd.Width, Height: nd.Height}
		if padded.Intersects(other) {
			return true
		}
	}
	return false
}

// ScalePositionsToFit shrinks a layout of same-sized nodes so it fits
// the available area, rewriting every position proportionally from
// the area's origin. A layout that already fits is returned
// unchanged. The scale factor never exceeds 1.0: layouts are shrunk,
// never inflated.
func (e *Engine) ScalePositionsToFit(positions []Point, dims Size, canvas CanvasID) []Point {
	if len(positions) == 0 {
		return positions
	}

	area := e.AvailableArea(canvas)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range positions {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X+dims.Width)
		maxY = math.Max(maxY, p.Y+dims.Height)
	}
	boundsWidth := maxX - minX
	boundsHeight := maxY - minY

	if boundsWidth <= area.Width && boundsHeight <= area.Height {
		return positions
	}

	scaleX, scaleY := 1.0, 1.0
	if boundsWidth > area.Width && boundsWidth > 0 {
		scaleX = area.Width / boundsWidth
	}
	if boundsHeight > area.Height && boundsHeight > 0 {
		scaleY = area.Height / boundsHeight
	}
	scale := math.Min(scaleX, scaleY)

	scaled := make([]Point, len(positions))
	for i, p := range positions {
		scaled[i] = Point{
			X: area.X + (p.X-minX)*scale,
			Y: area.Y + (p.Y-minY)*scale,
		}
	}
	return scaled
}

// AutoFitZoom computes the zoom level at which a layout's bounding
// box fits the available area, so a viewer can auto-frame around it.
// Padding is subtracted from the usable area (less on narrow
// viewports), the smaller of the two per-axis ratios wins, and the
// result is clamped to [0.3, 1.0] on narrow viewports or [0.5, 1.0]
// otherwise.
func (e *Engine) AutoFitZoom(bounds Rect, canvas CanvasID) float64 {
	area := e.AvailableArea(canvas)
	narrow := e.isNarrow(area)

	if bounds.Width <= 0 || bounds.Height <= 0 {
		return zoomMax
	}

	padding := float64(fitPaddingNormal)
	if narrow {
		padding = fitPaddingNarrow
	}
	usableWidth := math.Max(area.Width-2*padding, 1)
	usableHeight := math.Max(area.Height-2*padding, 1)

	zoom := math.Min(usableWidth/bounds.Width, usableHeight/bounds.Height)

	floor := zoomFloorNormal
	if narrow {
		floor = zoomFloorNarrow
	}
	if zoom > zoomMax {
		zoom = zoomMax
	}
	if zoom < floor {
		zoom = floor
	}
	return zoom
}
