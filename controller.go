package pinchzoom

import (
	"io"
	"os"
)

// pinchWarmupSamples is the number of pinch samples at the start of a zoom
// interaction that update tracking state without being applied.
const pinchWarmupSamples = 3

// Renderer receives the element transform every time it changes.
type Renderer interface {
	SetTransform(t Transform)
}

// Controller is the interaction state machine. It owns the TransformState,
// the gesture Recognizer and the animation Scheduler of one managed element.
//
// A Controller is not safe for concurrent use. The host calls HandleTouch,
// Update and Layout from a single goroutine, typically its update loop.
type Controller struct {
	cfg        Config
	geom       Geometry
	clock      Clock
	state      TransformState
	scheduler  *Scheduler
	recognizer *Recognizer
	renderer   Renderer
	sink       NotificationSink
	registry   handlerRegistry

	enabled        bool
	mode           State
	hasInteraction bool
	offsetsSet     bool

	// Per-interaction tracking.
	lastScale           float64
	warmup              int
	lastZoomCenter      Vec2
	hasLastZoomCenter   bool
	lastDragPosition    Vec2
	hasLastDragPosition bool

	// Synthetic input (see inject.go) and scripted sessions.
	injectQueue   [][]Vec2
	injectTracker touchTracker
	testRunner    *TestRunner

	debug    bool
	debugOut io.Writer
}

// NewController creates an enabled controller for the element described by
// geom. A nil clock uses SystemClock. Call Layout once the geometry is valid
// to center the element.
func NewController(cfg Config, geom Geometry, clock Clock) *Controller {
	if clock == nil {
		clock = SystemClock{}
	}
	c := &Controller{
		cfg:       cfg,
		geom:      geom,
		clock:     clock,
		state:     NewTransformState(cfg.MinZoom, cfg.MaxZoom),
		scheduler: NewScheduler(clock),
		enabled:   true,
		lastScale: 1,
		debugOut:  os.Stderr,
	}
	c.recognizer = newRecognizer(c, clock)
	return c
}

// --- Accessors ---

// Config returns the options the controller was created with.
func (c *Controller) Config() Config { return c.cfg }

// State returns the current state machine state.
func (c *Controller) State() State { return c.mode }

// ZoomFactor returns the zoom factor on top of BaseZoom.
func (c *Controller) ZoomFactor() float64 { return c.state.ZoomFactor }

// Offset returns the current pan offset.
func (c *Controller) Offset() Vec2 { return c.state.Offset }

// InitialOffset returns the centering offset computed by Layout.
func (c *Controller) InitialOffset() Vec2 { return c.state.InitialOffset }

// TransformState returns a copy of the zoom and offset state.
func (c *Controller) TransformState() TransformState { return c.state }

// Interaction returns the recognizer's current classification.
func (c *Controller) Interaction() InteractionKind { return c.recognizer.Interaction() }

// HasInteraction reports whether a drag or zoom is in progress.
func (c *Controller) HasInteraction() bool { return c.hasInteraction }

// IsAnimating reports whether a tween is running.
func (c *Controller) IsAnimating() bool { return c.scheduler.Active() }

// BaseZoom returns the fit-to-container scale from the live geometry.
func (c *Controller) BaseZoom() float64 {
	return BaseZoom(c.geom.ContainerSize(), c.geom.ElementSize())
}

// Transform returns the transform to apply to the managed element.
func (c *Controller) Transform() Transform {
	return c.state.Transform(c.BaseZoom())
}

// SetRenderer sets the receiver of transform updates.
func (c *Controller) SetRenderer(r Renderer) {
	c.renderer = r
}

// CanDrag reports whether a single finger touch should be captured as a
// drag. Dragging is blocked only at native scale with DraggableUnzoomed off.
func (c *Controller) CanDrag() bool {
	return c.cfg.DraggableUnzoomed || !isCloseTo(c.state.ZoomFactor, 1)
}

// --- Enable / disable ---

// Enable makes the controller respond to input.
func (c *Controller) Enable() { c.enabled = true }

// Disable makes the controller ignore all input and drops queued synthetic
// input. State is left unchanged.
func (c *Controller) Disable() {
	c.enabled = false
	c.injectQueue = c.injectQueue[:0]
	c.injectTracker.reset()
}

// Enabled reports whether input is processed.
func (c *Controller) Enabled() bool { return c.enabled }

func (c *Controller) isEnabled() bool { return c.enabled }

// --- Host entry points ---

// HandleTouch feeds one touch snapshot to the recognizer and reports
// whether it was captured.
func (c *Controller) HandleTouch(ev TouchEvent) bool {
	return c.recognizer.HandleTouch(ev)
}

// Update is called once per frame. It runs the attached test script, feeds
// one queued synthetic snapshot and renders one animation frame.
func (c *Controller) Update() {
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.processInjectedInput()
	if c.scheduler.Update() {
		c.refresh()
	}
}

// Layout recomputes the centering offset from the current geometry and
// resets the offset to it. With SetOffsetsOnce only the first call does so.
// Call it when the element becomes ready and whenever the container resizes.
func (c *Controller) Layout() {
	if !c.cfg.SetOffsetsOnce || !c.offsetsSet {
		c.offsetsSet = true
		c.state.InitialOffset = InitialOffset(c.geom.ContainerSize(), c.geom.ElementSize(), c.BaseZoom())
		c.state.ResetOffset()
		c.debugf("layout: initial offset (%.1f, %.1f)", c.state.InitialOffset.X, c.state.InitialOffset.Y)
	}
	c.refresh()
}

// refresh pushes the current transform to the renderer.
func (c *Controller) refresh() {
	if c.renderer != nil {
		c.renderer.SetTransform(c.Transform())
	}
}

// --- Programmatic transforms ---

// Scale zooms by ratio about center (container coordinates) immediately.
func (c *Controller) Scale(ratio float64, center Vec2) {
	c.scale(ratio, center, TouchEvent{})
	c.refresh()
}

// ScaleTo zooms to zoomFactor about center immediately. The result is
// clamped to the zoom limits.
func (c *Controller) ScaleTo(zoomFactor float64, center Vec2) {
	c.scaleTo(zoomFactor, center, TouchEvent{})
	c.refresh()
}

// Drag pans by the movement from lastCenter to center immediately.
func (c *Controller) Drag(center, lastCenter Vec2) {
	c.drag(center, lastCenter, TouchEvent{})
	c.refresh()
}

// ZoomTo animates to zoomFactor about center.
func (c *Controller) ZoomTo(zoomFactor float64, center Vec2) {
	start := c.state.ZoomFactor
	c.animate(StateAnimatingSnapback, func(progress float64) {
		c.scaleTo(towards(start, zoomFactor, progress), center, TouchEvent{})
	}, nil)
}

// ZoomOut animates back to zoom factor 1 about the current zoom center.
func (c *Controller) ZoomOut() {
	c.zoomOutAnimation()
}

// CurrentZoomCenter returns the container point the current zoom focuses
// on. At zoom factor 1 it returns the container center.
func (c *Controller) CurrentZoomCenter() Vec2 {
	cs := c.geom.ContainerSize()
	return c.state.CurrentZoomCenter(Vec2{X: cs.Width / 2, Y: cs.Height / 2})
}

func (c *Controller) scale(ratio float64, center Vec2, ev TouchEvent) {
	c.state.Scale(ratio, center)
	c.fire(EventZoomUpdate, ev)
}

func (c *Controller) scaleTo(zoomFactor float64, center Vec2, ev TouchEvent) {
	c.state.ScaleTo(zoomFactor, center)
	c.fire(EventZoomUpdate, ev)
}

// towards interpolates from start to target. The final frame lands exactly
// on target.
func towards(start, target, progress float64) float64 {
	if progress >= 1 {
		return target
	}
	return start + progress*(target-start)
}

func (c *Controller) drag(center, lastCenter Vec2, ev TouchEvent) {
	c.state.Drag(center, lastCenter, c.cfg.LockDragAxis)
	c.fire(EventDragUpdate, ev)
}

// --- Gesture handlers (driven by the Recognizer) ---

// touches converts snapshot points to container coordinates.
func (c *Controller) touches(ev TouchEvent) []Vec2 {
	origin := c.geom.ContainerOrigin()
	out := make([]Vec2, len(ev.Points))
	for i, p := range ev.Points {
		out[i] = p.Sub(origin)
	}
	return out
}

// beginInteraction cancels any running tween and enters mode.
func (c *Controller) beginInteraction(mode State) {
	c.stopAnimation()
	c.hasInteraction = true
	c.setMode(mode)
}

// end finishes an interaction and schedules the bounds correction.
func (c *Controller) end() {
	c.hasInteraction = false
	c.setMode(StateIdle)
	c.Sanitize()
	c.refresh()
}

func (c *Controller) handleDragStart(ev TouchEvent) {
	c.fire(EventDragStart, ev)
	c.beginInteraction(StateDragging)
	c.hasLastDragPosition = false
	c.handleDrag(ev)
}

func (c *Controller) handleDrag(ev TouchEvent) {
	touches := c.touches(ev)
	if len(touches) == 0 {
		return
	}
	touch := touches[0]
	if c.hasLastDragPosition {
		c.drag(touch, c.lastDragPosition, ev)
	}
	c.lastDragPosition = touch
	c.hasLastDragPosition = true
}

func (c *Controller) handleDragEnd(ev TouchEvent, handoff bool) {
	c.fire(EventDragEnd, ev)
	if !handoff {
		c.end()
	}
}

func (c *Controller) handleZoomStart(ev TouchEvent) {
	c.fire(EventZoomStart, ev)
	c.beginInteraction(StateZooming)
	c.lastScale = 1
	c.warmup = 0
	c.hasLastZoomCenter = false
}

// handleZoom applies one pinch sample. newScale is the cumulative scale
// since the interaction's start touches.
func (c *Controller) handleZoom(ev TouchEvent, newScale float64) {
	center := centroid(c.touches(ev))
	ratio := newScale / c.lastScale
	c.lastScale = newScale
	c.warmup++
	if c.warmup > pinchWarmupSamples {
		c.scale(ratio, center, ev)
		if c.hasLastZoomCenter {
			c.drag(center, c.lastZoomCenter, ev)
		}
	}
	c.lastZoomCenter = center
	c.hasLastZoomCenter = true
}

func (c *Controller) handleZoomEnd(ev TouchEvent, handoff bool) {
	c.fire(EventZoomEnd, ev)
	if !handoff {
		c.end()
	}
}

// handleDoubleTap toggles between zoom factor 1 and TapZoomFactor. Zooming
// in centers on the tapped point, zooming out on the current zoom center.
// Ignored while an interaction is in progress. Reports whether the tap was
// accepted.
func (c *Controller) handleDoubleTap(ev TouchEvent) bool {
	if c.hasInteraction {
		c.debugf("double tap ignored: interaction in progress")
		return false
	}
	touches := c.touches(ev)
	if len(touches) == 0 {
		return false
	}
	center := touches[0]
	start := c.state.ZoomFactor
	target := c.cfg.TapZoomFactor
	if start > 1 {
		target = 1
	}
	if start > target {
		center = c.CurrentZoomCenter()
	}
	c.debugf("double tap: zoom %.3f -> %.3f about (%.1f, %.1f)", start, target, center.X, center.Y)
	c.animate(StateAnimatingDoubleTap, func(progress float64) {
		c.scaleTo(towards(start, target, progress), center, TouchEvent{})
	}, nil)
	c.fire(EventDoubleTap, ev)
	return true
}

// --- Animation ---

// animate starts a swing-eased tween of AnimationDuration in the given
// mode. The mode returns to idle when the tween completes.
func (c *Controller) animate(mode State, draw func(progress float64), done func()) {
	c.setMode(mode)
	c.scheduler.Animate(swingEase, draw, c.cfg.AnimationDuration, func() {
		c.setMode(StateIdle)
		if done != nil {
			done()
		}
	})
}

// stopAnimation cancels the running tween.
func (c *Controller) stopAnimation() {
	c.scheduler.Stop()
	if c.mode == StateAnimatingSnapback || c.mode == StateAnimatingDoubleTap {
		c.setMode(StateIdle)
	}
}

func (c *Controller) setMode(mode State) {
	if c.mode == mode {
		return
	}
	c.debugf("state: %s -> %s", c.mode, mode)
	c.mode = mode
}
