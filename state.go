package pinchzoom

import "math"

// Geometry supplies the live layout of the container and the managed element.
// It is read on demand and never cached across calls.
type Geometry interface {
	// ContainerSize is the size of the fixed viewport.
	ContainerSize() Size
	// ElementSize is the natural size of the managed element.
	ElementSize() Size
	// ContainerOrigin is the container's top-left corner in the coordinate
	// space touch points are reported in (bounding rect plus scroll).
	ContainerOrigin() Vec2
}

// BaseZoom returns the scale at which element exactly fits container on at
// least one axis. Zero sizes give zero or infinite results; callers must not
// use the transform math before layout is ready.
func BaseZoom(container, element Size) float64 {
	return math.Min(container.Width/element.Width, container.Height/element.Height)
}

// InitialOffset returns the offset that centers element inside container at
// the given base zoom.
func InitialOffset(container, element Size, baseZoom float64) Vec2 {
	return Vec2{
		X: -math.Abs(element.Width*baseZoom-container.Width) / 2,
		Y: -math.Abs(element.Height*baseZoom-container.Height) / 2,
	}
}

// TransformState is the zoom factor and pan offset of the managed element.
// Every mutator keeps ZoomFactor within [MinZoom, MaxZoom]. Offset is left
// unclamped; bounds are corrected at interaction end.
type TransformState struct {
	ZoomFactor    float64
	Offset        Vec2
	InitialOffset Vec2

	MinZoom, MaxZoom float64
}

// NewTransformState returns a state at zoom factor 1 with zero offset.
func NewTransformState(minZoom, maxZoom float64) TransformState {
	return TransformState{ZoomFactor: 1, MinZoom: minZoom, MaxZoom: maxZoom}
}

// ScaleZoomFactor multiplies the zoom factor by delta, clamps it to the zoom
// limits and returns the ratio that was actually applied.
func (s *TransformState) ScaleZoomFactor(delta float64) float64 {
	original := s.ZoomFactor
	s.ZoomFactor = math.Min(s.MaxZoom, math.Max(s.ZoomFactor*delta, s.MinZoom))
	return s.ZoomFactor / original
}

// Scale zooms by ratio about center (container coordinates) so that the
// point under center stays fixed. Returns the applied ratio.
func (s *TransformState) Scale(ratio float64, center Vec2) float64 {
	applied := s.ScaleZoomFactor(ratio)
	s.AddOffset(center.Add(s.Offset).Scale(applied - 1))
	return applied
}

// ScaleTo zooms to the target zoom factor about center. Returns the applied
// ratio. A target inside the zoom limits is stored exactly, so that checks
// such as ZoomFactor == 1 hold after zooming back out.
func (s *TransformState) ScaleTo(zoomFactor float64, center Vec2) float64 {
	applied := s.Scale(zoomFactor/s.ZoomFactor, center)
	if zoomFactor >= s.MinZoom && zoomFactor <= s.MaxZoom {
		s.ZoomFactor = zoomFactor
	}
	return applied
}

// Drag pans by the movement from lastCenter to center and returns the offset
// change. With lockAxis only the axis with the larger movement is applied.
func (s *TransformState) Drag(center, lastCenter Vec2, lockAxis bool) Vec2 {
	d := center.Sub(lastCenter)
	delta := Vec2{X: -d.X, Y: -d.Y}
	if lockAxis {
		if math.Abs(d.X) > math.Abs(d.Y) {
			delta.Y = 0
		} else {
			delta.X = 0
		}
	}
	s.AddOffset(delta)
	return delta
}

// AddOffset translates the offset by d.
func (s *TransformState) AddOffset(d Vec2) {
	s.Offset = s.Offset.Add(d)
}

// ResetOffset moves the offset back to InitialOffset.
func (s *TransformState) ResetOffset() {
	s.Offset = s.InitialOffset
}

// CurrentZoomCenter infers the container point that the current zoom is
// focused on, so that zooming back out keeps the same focus. At zoom factor
// exactly 1 every point is a fixed point and fallback is returned.
func (s *TransformState) CurrentZoomCenter(fallback Vec2) Vec2 {
	if s.ZoomFactor == 1 {
		return fallback
	}
	k := 1/s.ZoomFactor - 1
	moved := s.Offset.Sub(s.InitialOffset)
	return Vec2{
		X: -s.Offset.X - moved.X/k,
		Y: -s.Offset.Y - moved.Y/k,
	}
}

// Transform returns the render transform for the given base zoom.
func (s *TransformState) Transform(baseZoom float64) Transform {
	z := baseZoom * s.ZoomFactor
	return Transform{
		Scale:     z,
		Translate: Vec2{X: -s.Offset.X / z, Y: -s.Offset.Y / z},
	}
}

// StaticGeometry is a Geometry with fixed values, for hosts that manage
// layout themselves and for headless use.
type StaticGeometry struct {
	Container Size
	Element   Size
	Origin    Vec2
}

// ContainerSize returns g.Container.
func (g *StaticGeometry) ContainerSize() Size { return g.Container }

// ElementSize returns g.Element.
func (g *StaticGeometry) ElementSize() Size { return g.Element }

// ContainerOrigin returns g.Origin.
func (g *StaticGeometry) ContainerOrigin() Vec2 { return g.Origin }
