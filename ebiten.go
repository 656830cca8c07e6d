package pinchzoom

import (
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// View hosts a Controller on Ebitengine. It draws an image inside a fixed
// screen viewport, polls touch input (and optionally the left mouse button as
// a single finger) every frame, and implements Geometry and Renderer for its
// controller.
//
//	view := pinchzoom.NewView(img, pinchzoom.Rect{Width: 640, Height: 480}, pinchzoom.DefaultConfig())
//	// in Game.Update:
//	view.Update()
//	// in Game.Draw:
//	view.Draw(screen)
type View struct {
	// MouseAsTouch treats the left mouse button as one finger when no touch
	// is active. Enabled by default.
	MouseAsTouch bool
	// ScreenshotDir is the directory screenshots are written to.
	ScreenshotDir string

	ctrl      *Controller
	image     *ebiten.Image
	viewport  Rect
	transform Transform

	tracker  touchTracker
	touchIDs []ebiten.TouchID
	points   []Vec2

	screenshotQueue []string
}

// NewView creates a view of img inside viewport and lays it out.
func NewView(img *ebiten.Image, viewport Rect, cfg Config) *View {
	v := &View{
		MouseAsTouch:  true,
		ScreenshotDir: "screenshots",
		image:         img,
		viewport:      viewport,
	}
	v.ctrl = NewController(cfg, v, SystemClock{})
	v.ctrl.SetRenderer(v)
	v.ctrl.Layout()
	return v
}

// Controller returns the view's controller.
func (v *View) Controller() *Controller { return v.ctrl }

// Viewport returns the screen rectangle the view draws into.
func (v *View) Viewport() Rect { return v.viewport }

// SetViewport moves or resizes the viewport and re-runs layout.
func (v *View) SetViewport(r Rect) {
	v.viewport = r
	v.ctrl.Layout()
}

// SetImage replaces the managed image and re-runs layout.
func (v *View) SetImage(img *ebiten.Image) {
	v.image = img
	v.ctrl.Layout()
}

// ContainerSize implements Geometry.
func (v *View) ContainerSize() Size { return v.viewport.Size() }

// ElementSize implements Geometry.
func (v *View) ElementSize() Size {
	if v.image == nil {
		return Size{}
	}
	b := v.image.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// ContainerOrigin implements Geometry. Touch positions are screen
// coordinates, so the origin is the viewport's top-left corner.
func (v *View) ContainerOrigin() Vec2 { return Vec2{X: v.viewport.X, Y: v.viewport.Y} }

// SetTransform implements Renderer.
func (v *View) SetTransform(t Transform) { v.transform = t }

// GeoM returns the image transform in screen space: translate, scale, then
// move into the viewport.
func (v *View) GeoM() ebiten.GeoM {
	return v.transform.GeoM(Vec2{X: v.viewport.X, Y: v.viewport.Y})
}

// ScreenToElement converts a screen position to element pixel coordinates,
// e.g. to find which part of the image is under the cursor.
func (v *View) ScreenToElement(p Vec2) Vec2 {
	return v.transform.Unapply(p.Sub(v.ContainerOrigin()))
}

// GeoM converts the transform into an ebiten.GeoM whose output is offset by
// origin.
func (t Transform) GeoM(origin Vec2) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(t.Translate.X, t.Translate.Y)
	m.Scale(t.Scale, t.Scale)
	m.Translate(origin.X, origin.Y)
	return m
}

// Update polls input and advances the controller by one frame. Real input
// is skipped while synthetic input is queued.
func (v *View) Update() {
	if v.ctrl.PendingInput() == 0 {
		v.pollInput()
	}
	v.ctrl.Update()
}

// pollInput reads the active touches, falls back to the mouse, and feeds
// any change to the controller.
func (v *View) pollInput() {
	v.touchIDs = ebiten.AppendTouchIDs(v.touchIDs[:0])
	slices.Sort(v.touchIDs)

	v.points = v.points[:0]
	for _, id := range v.touchIDs {
		x, y := ebiten.TouchPosition(id)
		v.points = append(v.points, Vec2{X: float64(x), Y: float64(y)})
	}

	if len(v.points) == 0 && v.MouseAsTouch && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		p := Vec2{X: float64(mx), Y: float64(my)}
		// Only start a mouse touch inside the viewport; keep it once started.
		if v.tracker.active() > 0 || v.viewport.Contains(p) {
			v.points = append(v.points, p)
		}
	}

	if ev, ok := v.tracker.diff(v.points); ok {
		v.ctrl.HandleTouch(ev)
	}
}

// Draw renders the image clipped to the viewport, then flushes queued
// screenshots.
func (v *View) Draw(screen *ebiten.Image) {
	if v.image != nil {
		vp := v.viewport
		target := screen.SubImage(image.Rect(
			int(vp.X), int(vp.Y),
			int(vp.X+vp.Width), int(vp.Y+vp.Height),
		)).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.GeoM = v.GeoM()
		op.Filter = ebiten.FilterLinear
		target.DrawImage(v.image, op)
	}
	v.flushScreenshots(screen)
}
