package pinchzoom

// Injected input is a queue of finger snapshots in page coordinates. One
// snapshot is consumed per Update and diffed against the previous one, so a
// snapshot with more fingers is a touch start, fewer is a touch end and the
// same count with new positions is a move. While the queue is non-empty
// hosts skip real input.

// InjectTouch queues a snapshot with the given fingers down.
func (c *Controller) InjectTouch(points ...Vec2) {
	c.injectQueue = append(c.injectQueue, append([]Vec2(nil), points...))
}

// InjectRelease queues a snapshot with every finger lifted.
func (c *Controller) InjectRelease() {
	c.injectQueue = append(c.injectQueue, nil)
}

// InjectTap queues a single finger press and release at (x, y). Consumes
// two frames.
func (c *Controller) InjectTap(x, y float64) {
	c.InjectTouch(Vec2{x, y})
	c.InjectRelease()
}

// InjectDoubleTap queues two taps at (x, y). Consumes four frames, so the
// host's frame interval must keep them within DoubleTapInterval.
func (c *Controller) InjectDoubleTap(x, y float64) {
	c.InjectTap(x, y)
	c.InjectTap(x, y)
}

// InjectDrag queues a one finger drag: press at from, moves linearly
// interpolated over frames-2 intermediate frames, and release. The total
// sequence consumes frames frames. Minimum frames is 3 (press, move,
// release) because the first move only classifies the gesture.
func (c *Controller) InjectDrag(from, to Vec2, frames int) {
	if frames < 3 {
		frames = 3
	}
	c.InjectTouch(from)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.InjectTouch(lerp(from, to, t))
	}
	c.InjectRelease()
}

// InjectPinch queues a two finger pinch from (a0, b0) to (a1, b1) with the
// same frame accounting as InjectDrag. The first move classifies the
// gesture and the next pinchWarmupSamples moves are absorbed by the
// warm-up, so short pinches leave the zoom unchanged.
func (c *Controller) InjectPinch(a0, b0, a1, b1 Vec2, frames int) {
	if frames < 3 {
		frames = 3
	}
	c.InjectTouch(a0, b0)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.InjectTouch(lerp(a0, a1, t), lerp(b0, b1, t))
	}
	c.InjectRelease()
}

// PendingInput returns the number of queued synthetic snapshots.
func (c *Controller) PendingInput() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one snapshot and feeds the resulting event to
// the recognizer. Returns true if a snapshot was consumed.
func (c *Controller) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	points := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue[len(c.injectQueue)-1] = nil
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	if ev, ok := c.injectTracker.diff(points); ok {
		c.HandleTouch(ev)
	}
	return true
}

func lerp(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Scale(t))
}
