package pinchzoom

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Clock is the render-timing service. Now must be monotonic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock, whose readings carry Go's monotonic
// component.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to. Used by tests and
// scripted sessions to drive frames deterministically.
type ManualClock struct {
	t time.Time
}

// NewManualClock returns a ManualClock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.t }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// Swing is the symmetric ease used by every controller animation:
// -cos(t*pi)/2 + 0.5. It matches ease.InOutSine over a unit range.
func Swing(p float64) float64 {
	return -math.Cos(p*math.Pi)/2 + 0.5
}

// swingEase adapts Swing to gween's easing signature.
var swingEase ease.TweenFunc = func(t, b, c, d float32) float32 {
	return b + c*float32(Swing(float64(t/d)))
}

// tween is one running animation. Only the Scheduler holds it.
type tween struct {
	start    time.Time
	duration time.Duration
	progress *gween.Tween
	draw     func(progress float64)
	done     func()
	live     bool
}

// Scheduler runs at most one eased tween at a time. Starting a new tween
// invalidates the previous one; the liveness check happens once per frame.
type Scheduler struct {
	clock  Clock
	active *tween
}

// NewScheduler creates an idle scheduler reading time from clock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// Animate starts a tween of duration d that calls draw with the eased
// progress every frame and done (if non-nil) after the final frame.
func (s *Scheduler) Animate(timing ease.TweenFunc, draw func(progress float64), d time.Duration, done func()) {
	if s.active != nil {
		s.active.live = false
	}
	if timing == nil {
		timing = ease.Linear
	}
	s.active = &tween{
		start:    s.clock.Now(),
		duration: d,
		progress: gween.New(0, 1, 1, timing),
		draw:     draw,
		done:     done,
		live:     true,
	}
}

// Stop cancels the running tween without calling its completion callback.
func (s *Scheduler) Stop() {
	if s.active != nil {
		s.active.live = false
		s.active = nil
	}
}

// Active reports whether a tween is running.
func (s *Scheduler) Active() bool {
	return s.active != nil && s.active.live
}

// Update samples the clock and renders one frame of the running tween.
// Returns true if a frame was drawn.
func (s *Scheduler) Update() bool {
	tw := s.active
	if tw == nil {
		return false
	}
	if !tw.live {
		s.active = nil
		return false
	}

	t := 1.0
	if tw.duration > 0 {
		elapsed := s.clock.Now().Sub(tw.start)
		t = math.Min(math.Max(float64(elapsed)/float64(tw.duration), 0), 1)
	}

	if t >= 1 {
		tw.draw(1)
		tw.live = false
		if s.active == tw {
			s.active = nil
		}
		if tw.done != nil {
			tw.done()
		}
		return true
	}

	p, _ := tw.progress.Set(float32(t))
	tw.draw(float64(p))
	return true
}
