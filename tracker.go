package pinchzoom

// touchTracker turns polled point sets into touch events by comparing each
// poll with the previous one. Hosts that only expose "which fingers are down
// right now" (ebiten, injected input) go through it.
type touchTracker struct {
	prev []Vec2
}

// diff compares points with the previous poll. A higher finger count is a
// start, a lower count an end, equal counts with any moved point a move.
// Returns false when nothing changed. points is copied.
func (t *touchTracker) diff(points []Vec2) (TouchEvent, bool) {
	var phase TouchPhase
	switch {
	case len(points) > len(t.prev):
		phase = TouchStart
	case len(points) < len(t.prev):
		phase = TouchEnd
	case len(points) == 0:
		return TouchEvent{}, false
	default:
		moved := false
		for i := range points {
			if points[i] != t.prev[i] {
				moved = true
				break
			}
		}
		if !moved {
			return TouchEvent{}, false
		}
		phase = TouchMove
	}
	t.prev = append(t.prev[:0], points...)

	ev := TouchEvent{Phase: phase}
	if len(points) > 0 {
		ev.Points = append([]Vec2(nil), points...)
	}
	return ev, true
}

// reset forgets the previous poll.
func (t *touchTracker) reset() {
	t.prev = t.prev[:0]
}

// active returns the finger count of the previous poll.
func (t *touchTracker) active() int {
	return len(t.prev)
}
