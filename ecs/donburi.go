package ecs

import (
	"github.com/phanxgames/pinchzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NotificationEventType is the Donburi event type for pinchzoom
// notifications.
var NotificationEventType = events.NewEventType[pinchzoom.Notification]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a NotificationSink backed by a Donburi world.
// Notifications are published to NotificationEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) pinchzoom.NotificationSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Notify(n pinchzoom.Notification) {
	NotificationEventType.Publish(s.world, n)
}
