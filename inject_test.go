package pinchzoom

import (
	"testing"
	"time"
)

const frame = 16 * time.Millisecond

// runFrames advances the clock by one frame and calls Update n times.
func runFrames(c *Controller, clock *ManualClock, n int) {
	for i := 0; i < n; i++ {
		clock.Advance(frame)
		c.Update()
	}
}

func TestInjectDragFrames(t *testing.T) {
	c, clock, _ := newTestController(t, DefaultConfig())
	c.InjectDrag(Vec2{100, 150}, Vec2{160, 150}, 5)
	if c.PendingInput() != 5 {
		t.Fatalf("PendingInput = %d, want 5", c.PendingInput())
	}

	runFrames(c, clock, 4)
	// The first move only classifies, so 120 -> 160 is applied.
	if c.Offset() != (Vec2{-40, -50}) {
		t.Fatalf("Offset = %v, want (-40, -50)", c.Offset())
	}
	if c.State() != StateDragging {
		t.Errorf("State = %v, want dragging", c.State())
	}

	runFrames(c, clock, 1)
	if c.PendingInput() != 0 {
		t.Errorf("PendingInput = %d, want 0", c.PendingInput())
	}
	if c.State() != StateAnimatingSnapback {
		t.Errorf("State = %v, want animating-snapback", c.State())
	}
	runFrames(c, clock, 20)
	if c.Offset() != (Vec2{0, -50}) || c.State() != StateIdle {
		t.Errorf("after snapback: %v %v", c.Offset(), c.State())
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	c, _, _ := newTestController(t, DefaultConfig())
	c.InjectDrag(Vec2{0, 0}, Vec2{10, 0}, 1)
	if c.PendingInput() != 3 {
		t.Errorf("PendingInput = %d, want 3", c.PendingInput())
	}
}

func TestInjectDoubleTap(t *testing.T) {
	c, clock, _ := newTestController(t, DefaultConfig())
	taps := 0
	c.On(EventDoubleTap, func(*Controller, TouchEvent) { taps++ })

	c.InjectDoubleTap(150, 150)
	runFrames(c, clock, 4)
	if taps != 1 {
		t.Fatalf("double taps = %d, want 1", taps)
	}
	runFrames(c, clock, 20)
	if !approxEqual(c.ZoomFactor(), 2, 1e-9) {
		t.Errorf("ZoomFactor = %v, want 2", c.ZoomFactor())
	}
}

func TestInjectPinch(t *testing.T) {
	c, clock, _ := newTestController(t, DefaultConfig())
	// 8 moves at t = i/8: the first classifies, the next three warm up and
	// the last four take the scale from distance 150 to 200.
	c.InjectPinch(Vec2{100, 150}, Vec2{200, 150}, Vec2{50, 150}, Vec2{250, 150}, 10)
	runFrames(c, clock, 10)

	if !approxEqual(c.ZoomFactor(), 200.0/150.0, 1e-9) {
		t.Errorf("ZoomFactor = %v, want %v", c.ZoomFactor(), 200.0/150.0)
	}
	// The offset stays in range, so nothing is animated.
	if c.State() != StateIdle || c.IsAnimating() {
		t.Errorf("State = %v, animating = %v", c.State(), c.IsAnimating())
	}
}

func TestShortInjectPinchAbsorbedByWarmup(t *testing.T) {
	c, clock, _ := newTestController(t, DefaultConfig())
	c.InjectPinch(Vec2{100, 150}, Vec2{200, 150}, Vec2{50, 150}, Vec2{250, 150}, 6)
	runFrames(c, clock, 6)
	if c.ZoomFactor() != 1 {
		t.Errorf("ZoomFactor = %v, want 1", c.ZoomFactor())
	}
}

func TestDisableDropsInjectedInput(t *testing.T) {
	c, clock, _ := newTestController(t, DefaultConfig())
	c.InjectTouch(Vec2{10, 10})
	c.InjectTouch(Vec2{20, 10})
	c.Disable()
	if c.PendingInput() != 0 {
		t.Fatalf("PendingInput = %d, want 0", c.PendingInput())
	}
	c.Enable()
	c.InjectTap(10, 10)
	runFrames(c, clock, 2)
	if c.PendingInput() != 0 {
		t.Errorf("PendingInput = %d, want 0", c.PendingInput())
	}
}
