package pinchzoom

import "math"

// Bounds is the valid offset range for one zoom level.
type Bounds struct {
	Min, Max Vec2
}

// Clamp returns v limited to the range per axis.
func (b Bounds) Clamp(v Vec2) Vec2 {
	return Vec2{
		X: math.Min(math.Max(v.X, b.Min.X), b.Max.X),
		Y: math.Min(math.Max(v.Y, b.Min.Y), b.Max.Y),
	}
}

// Contains reports whether v is already inside the range.
func (b Bounds) Contains(v Vec2) bool {
	return b.Clamp(v) == v
}

// OffsetBounds computes the valid offset range for element drawn at
// baseZoom*zoomFactor inside container. Per axis the range is
// [min(0, overflow) - pad, max(0, overflow) + pad] where overflow is the
// scaled element size minus the container size.
func OffsetBounds(container, element Size, baseZoom, zoomFactor, padH, padV float64) Bounds {
	overflowX := element.Width*baseZoom*zoomFactor - container.Width
	overflowY := element.Height*baseZoom*zoomFactor - container.Height
	return Bounds{
		Min: Vec2{X: math.Min(0, overflowX) - padH, Y: math.Min(0, overflowY) - padV},
		Max: Vec2{X: math.Max(0, overflowX) + padH, Y: math.Max(0, overflowY) + padV},
	}
}

// OffsetBounds returns the valid offset range at the current zoom factor.
func (c *Controller) OffsetBounds() Bounds {
	return OffsetBounds(c.geom.ContainerSize(), c.geom.ElementSize(), c.BaseZoom(),
		c.state.ZoomFactor, c.cfg.HorizontalPadding, c.cfg.VerticalPadding)
}

// SanitizeOffset clamps offset into the valid range at the current zoom.
func (c *Controller) SanitizeOffset(offset Vec2) Vec2 {
	return c.OffsetBounds().Clamp(offset)
}

// IsInsaneOffset reports whether clamping would change offset.
func (c *Controller) IsInsaneOffset(offset Vec2) bool {
	return c.SanitizeOffset(offset) != offset
}

// Sanitize schedules the end-of-interaction correction. A zoom factor below
// ZoomOutFactor animates back to 1, which also restores a valid offset;
// otherwise an out-of-range offset snaps back. Values already in range are
// left untouched. At exactly zoom factor 1 there is nothing to zoom out, so
// an overscrolled offset snaps back instead.
func (c *Controller) Sanitize() {
	switch {
	case c.state.ZoomFactor < c.cfg.ZoomOutFactor && c.state.ZoomFactor != 1:
		c.debugf("sanitize: zoom %.3f below %.3f, zooming out", c.state.ZoomFactor, c.cfg.ZoomOutFactor)
		c.zoomOutAnimation()
	case c.IsInsaneOffset(c.state.Offset):
		c.debugf("sanitize: offset (%.1f, %.1f) out of range, snapping back", c.state.Offset.X, c.state.Offset.Y)
		c.sanitizeOffsetAnimation()
	}
}

// sanitizeOffsetAnimation eases the offset to its clamped value.
func (c *Controller) sanitizeOffsetAnimation() {
	start := c.state.Offset
	target := c.SanitizeOffset(start)
	c.animate(StateAnimatingSnapback, func(progress float64) {
		c.state.Offset = Vec2{
			X: towards(start.X, target.X, progress),
			Y: towards(start.Y, target.Y, progress),
		}
	}, nil)
}

// zoomOutAnimation eases the zoom factor back to 1 about the current zoom
// center. No-op when already at 1.
func (c *Controller) zoomOutAnimation() {
	if c.state.ZoomFactor == 1 {
		return
	}
	start := c.state.ZoomFactor
	center := c.CurrentZoomCenter()
	c.animate(StateAnimatingSnapback, func(progress float64) {
		c.scaleTo(towards(start, 1, progress), center, TouchEvent{})
	}, nil)
}
