package pinchzoom

import "math"

// Vec2 is a 2D point or displacement in pixels. The origin is the top-left
// corner of the container, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Size is a width and height in pixels.
type Size struct {
	Width, Height float64
}

// Transform describes how the managed element is drawn: a uniform scale
// followed by a translation expressed in pre-scale (element-local) units.
//
//	screen = Scale * (local + Translate)
type Transform struct {
	Scale     float64
	Translate Vec2
}

// Apply maps an element-local point to container coordinates.
func (t Transform) Apply(p Vec2) Vec2 {
	return p.Add(t.Translate).Scale(t.Scale)
}

// Unapply maps a container point back to element-local coordinates. The
// scale must be non-zero.
func (t Transform) Unapply(p Vec2) Vec2 {
	return p.Scale(1 / t.Scale).Sub(t.Translate)
}

// InteractionKind is the classification of an ongoing touch sequence.
type InteractionKind uint8

const (
	InteractionNone InteractionKind = iota // touch is not captured
	InteractionDrag                        // one finger panning
	InteractionZoom                        // two finger pinch
)

// String returns the lowercase name of the kind.
func (k InteractionKind) String() string {
	switch k {
	case InteractionDrag:
		return "drag"
	case InteractionZoom:
		return "zoom"
	default:
		return "none"
	}
}

// State is the controller's interaction state.
type State uint8

const (
	StateIdle               State = iota // no gesture and no animation
	StateDragging                        // single finger drag in progress
	StateZooming                         // pinch in progress
	StateAnimatingSnapback               // offset snap-back or zoom-out-to-1 running
	StateAnimatingDoubleTap              // double-tap zoom toggle running
)

// String returns a short name used in debug output.
func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateZooming:
		return "zooming"
	case StateAnimatingSnapback:
		return "animating-snapback"
	case StateAnimatingDoubleTap:
		return "animating-doubletap"
	default:
		return "idle"
	}
}

// zoomEpsilon is the tolerance used when testing whether zoom is at 1.
const zoomEpsilon = 0.01

// isCloseTo reports whether value lies within zoomEpsilon of expected.
func isCloseTo(value, expected float64) bool {
	return math.Abs(value-expected) < zoomEpsilon
}

// centroid returns the arithmetic mean of the points. Returns the zero
// vector for an empty slice.
func centroid(points []Vec2) Vec2 {
	if len(points) == 0 {
		return Vec2{}
	}
	var sum Vec2
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}

func distance(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Size returns the rectangle's width and height.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Contains reports whether the point lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}
