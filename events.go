package pinchzoom

import "slices"

// EventType identifies one of the gesture lifecycle moments that the
// controller reports through handlers and notifications.
type EventType uint8

const (
	EventZoomStart  EventType = iota // pinch classified
	EventZoomUpdate                  // zoom factor changed by Scale
	EventZoomEnd                     // pinch finished
	EventDragStart                   // single finger drag classified
	EventDragUpdate                  // offset changed by Drag
	EventDragEnd                     // drag finished
	EventDoubleTap                   // double tap accepted

	eventTypeCount
)

// DefaultEventNames are the notification identifiers used when
// Config.EventNames has no entry for an event type.
var DefaultEventNames = map[EventType]string{
	EventZoomStart:  "pz_zoomstart",
	EventZoomUpdate: "pz_zoomupdate",
	EventZoomEnd:    "pz_zoomend",
	EventDragStart:  "pz_dragstart",
	EventDragUpdate: "pz_dragupdate",
	EventDragEnd:    "pz_dragend",
	EventDoubleTap:  "pz_doubletap",
}

// String returns the default notification name for the event type.
func (e EventType) String() string {
	if name, ok := DefaultEventNames[e]; ok {
		return name
	}
	return "pz_unknown"
}

// HandlerFunc is a lifecycle callback. ev is the touch event that caused the
// moment; it is the zero TouchEvent when the moment was produced by an
// animation frame or a programmatic call.
type HandlerFunc func(c *Controller, ev TouchEvent)

// Notification is the named event fired to a NotificationSink. It carries a
// copy of the transform state at the moment it fired.
type Notification struct {
	Type       EventType
	Name       string
	ZoomFactor float64
	Offset     Vec2
	Transform  Transform
	Touch      TouchEvent
}

// NotificationSink receives named notifications, the equivalent of events
// bubbling from the managed element to the host.
type NotificationSink interface {
	Notify(n Notification)
}

// --- Handler registry ---

type registeredHandler struct {
	id uint32
	fn HandlerFunc
}

type handlerRegistry struct {
	handlers [eventTypeCount][]registeredHandler
	nextID   uint32
}

// CallbackHandle allows removing a handler registered with Controller.On.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	s := h.reg.handlers[h.event]
	for i := range s {
		if s[i].id == h.id {
			// Build a new slice; fire may be ranging over the old one.
			h.reg.handlers[h.event] = slices.Delete(slices.Clone(s), i, i+1)
			return
		}
	}
}

func (r *handlerRegistry) add(event EventType, fn HandlerFunc) CallbackHandle {
	if event >= eventTypeCount || fn == nil {
		return CallbackHandle{}
	}
	r.nextID++
	id := r.nextID
	r.handlers[event] = append(r.handlers[event], registeredHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

// On registers a runtime handler for the given lifecycle event. Runtime
// handlers fire after the Config.Handlers entry for the same event.
func (c *Controller) On(event EventType, fn HandlerFunc) CallbackHandle {
	return c.registry.add(event, fn)
}

// SetNotificationSink sets the optional named-notification channel.
func (c *Controller) SetNotificationSink(sink NotificationSink) {
	c.sink = sink
}

// fire runs the configured handler, the registered handlers and then the
// notification sink for one lifecycle moment.
func (c *Controller) fire(event EventType, ev TouchEvent) {
	if fn := c.cfg.Handlers[event]; fn != nil {
		fn(c, ev)
	}
	// Handlers may register or remove handlers; iterate a snapshot.
	for _, h := range c.registry.handlers[event] {
		h.fn(c, ev)
	}
	if c.sink == nil {
		return
	}
	c.sink.Notify(Notification{
		Type:       event,
		Name:       c.cfg.eventName(event),
		ZoomFactor: c.state.ZoomFactor,
		Offset:     c.state.Offset,
		Transform:  c.Transform(),
		Touch:      ev,
	})
}
