package pinchzoom

import "time"

// DoubleTapInterval is the longest gap between two single finger touch
// starts that still counts as a double tap.
const DoubleTapInterval = 300 * time.Millisecond

// TouchPhase distinguishes the kinds of touch callbacks.
type TouchPhase uint8

const (
	TouchStart  TouchPhase = iota // a finger went down
	TouchMove                     // one or more fingers moved
	TouchEnd                      // a finger lifted
	TouchCancel                   // the host aborted the sequence; treated as TouchEnd
)

// TouchEvent is one touch snapshot. Points holds every finger still on the
// surface after the change, in the host's page coordinates. Finger identity
// is not tracked; only count and positions are used.
type TouchEvent struct {
	Phase  TouchPhase
	Points []Vec2
}

// gestureTarget is what the recognizer drives. Controller implements it.
type gestureTarget interface {
	isEnabled() bool
	CanDrag() bool
	handleDragStart(ev TouchEvent)
	handleDrag(ev TouchEvent)
	handleDragEnd(ev TouchEvent, handoff bool)
	handleZoomStart(ev TouchEvent)
	handleZoom(ev TouchEvent, scale float64)
	handleZoomEnd(ev TouchEvent, handoff bool)
	handleDoubleTap(ev TouchEvent) bool
	refresh()
}

// gestureSession is the state of one continuous touch sequence. It is reset
// when the last finger lifts.
type gestureSession struct {
	fingers      int
	firstMove    bool
	startTouches []Vec2
	interaction  InteractionKind
	doubleTap    bool
}

// Recognizer turns touch snapshots into classified interactions. Drag and
// zoom are decided on the first move after any touch start and re-evaluated
// whenever a finger lifts.
type Recognizer struct {
	target  gestureTarget
	clock   Clock
	session gestureSession

	lastTap    time.Time
	hasLastTap bool
}

func newRecognizer(target gestureTarget, clock Clock) *Recognizer {
	return &Recognizer{target: target, clock: clock}
}

// Interaction returns the current classification.
func (r *Recognizer) Interaction() InteractionKind {
	return r.session.interaction
}

// Fingers returns the finger count of the last snapshot.
func (r *Recognizer) Fingers() int {
	return r.session.fingers
}

// HandleTouch processes one snapshot and reports whether it was captured,
// i.e. whether the host should stop it from propagating further.
func (r *Recognizer) HandleTouch(ev TouchEvent) bool {
	if !r.target.isEnabled() {
		return false
	}
	switch ev.Phase {
	case TouchStart:
		return r.touchStart(ev)
	case TouchMove:
		return r.touchMove(ev)
	case TouchEnd, TouchCancel:
		return r.touchEnd(ev)
	}
	return false
}

func (r *Recognizer) touchStart(ev TouchEvent) bool {
	r.session.firstMove = true
	r.session.fingers = len(ev.Points)
	return r.detectDoubleTap(ev)
}

// detectDoubleTap fires a double tap when two single finger starts fall
// within DoubleTapInterval. A start with more than one finger resets the
// timer. A tap the target rejects is treated as an ordinary touch start.
func (r *Recognizer) detectDoubleTap(ev TouchEvent) bool {
	now := r.clock.Now()
	if r.session.fingers > 1 {
		r.hasLastTap = false
	}

	captured := false
	r.session.doubleTap = false
	if r.hasLastTap && now.Sub(r.lastTap) < DoubleTapInterval && r.target.handleDoubleTap(ev) {
		// Only an accepted double tap suppresses the moves that follow.
		captured = true
		r.session.doubleTap = true
		r.setInteraction(InteractionNone, ev)
	}

	if r.session.fingers == 1 {
		r.lastTap = now
		r.hasLastTap = true
	}
	return captured
}

func (r *Recognizer) touchMove(ev TouchEvent) bool {
	if r.session.doubleTap {
		return false
	}
	if r.session.firstMove {
		r.updateInteraction(ev)
		r.session.startTouches = append(r.session.startTouches[:0], ev.Points...)
	} else {
		switch r.session.interaction {
		case InteractionZoom:
			if scale, ok := PinchScale(r.session.startTouches, ev.Points); ok {
				r.target.handleZoom(ev, scale)
			}
		case InteractionDrag:
			r.target.handleDrag(ev)
		}
		if r.session.interaction != InteractionNone {
			r.target.refresh()
		}
	}
	r.session.firstMove = false
	return r.session.interaction != InteractionNone
}

func (r *Recognizer) touchEnd(ev TouchEvent) bool {
	captured := r.session.interaction != InteractionNone
	r.session.fingers = len(ev.Points)
	r.updateInteraction(ev)
	if r.session.fingers == 0 {
		r.session = gestureSession{startTouches: r.session.startTouches[:0]}
	}
	return captured
}

// updateInteraction classifies from the current finger count.
func (r *Recognizer) updateInteraction(ev TouchEvent) {
	switch {
	case r.session.fingers == 2:
		r.setInteraction(InteractionZoom, ev)
	case r.session.fingers == 1 && r.target.CanDrag():
		r.setInteraction(InteractionDrag, ev)
	default:
		r.setInteraction(InteractionNone, ev)
	}
}

// setInteraction ends the old kind and starts the new one when they differ.
// A change between drag and zoom is a hand-off: the old kind's end is
// reported but the interaction stays in progress.
func (r *Recognizer) setInteraction(next InteractionKind, ev TouchEvent) {
	prev := r.session.interaction
	if prev == next {
		return
	}
	handoff := next != InteractionNone
	switch prev {
	case InteractionZoom:
		r.target.handleZoomEnd(ev, handoff)
	case InteractionDrag:
		r.target.handleDragEnd(ev, handoff)
	}
	r.session.interaction = next
	switch next {
	case InteractionZoom:
		r.target.handleZoomStart(ev)
	case InteractionDrag:
		r.target.handleDragStart(ev)
	}
}

// PinchScale returns the ratio of the finger distance in current to the
// distance in start. It needs exactly two points on both sides and a
// non-zero start distance.
func PinchScale(start, current []Vec2) (float64, bool) {
	if len(start) != 2 || len(current) != 2 {
		return 0, false
	}
	d0 := distance(start[0], start[1])
	if d0 == 0 {
		return 0, false
	}
	return distance(current[0], current[1]) / d0, true
}
