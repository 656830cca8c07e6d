// Package ecs provides ECS adapters for pinchzoom notifications.
//
// [NewDonburiSink] bridges controller notifications (zoom, drag and double
// tap lifecycle moments) into a [Donburi] world as typed events. Subscribe to
// [NotificationEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ctrl.SetNotificationSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
