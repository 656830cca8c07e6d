package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/pinchzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_Notify(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []pinchzoom.Notification
	NotificationEventType.Subscribe(world, func(w donburi.World, n pinchzoom.Notification) {
		received = append(received, n)
	})

	sink.Notify(pinchzoom.Notification{Type: pinchzoom.EventZoomStart, Name: "pz_zoomstart"})
	sink.Notify(pinchzoom.Notification{Type: pinchzoom.EventZoomUpdate, ZoomFactor: 2})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before processing", len(received))
	}
	NotificationEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != pinchzoom.EventZoomStart || received[0].Name != "pz_zoomstart" {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].ZoomFactor != 2 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ControllerDoubleTap(t *testing.T) {
	world := donburi.NewWorld()
	geom := &pinchzoom.StaticGeometry{
		Container: pinchzoom.Size{Width: 300, Height: 300},
		Element:   pinchzoom.Size{Width: 600, Height: 400},
	}
	clock := pinchzoom.NewManualClock(time.Unix(0, 0))
	ctrl := pinchzoom.NewController(pinchzoom.DefaultConfig(), geom, clock)
	ctrl.Layout()
	ctrl.SetNotificationSink(NewDonburiSink(world))

	var names []string
	NotificationEventType.Subscribe(world, func(w donburi.World, n pinchzoom.Notification) {
		names = append(names, n.Name)
	})

	tap := func() {
		ctrl.HandleTouch(pinchzoom.TouchEvent{Phase: pinchzoom.TouchStart, Points: []pinchzoom.Vec2{{X: 100, Y: 100}}})
		ctrl.HandleTouch(pinchzoom.TouchEvent{Phase: pinchzoom.TouchEnd})
	}
	tap()
	clock.Advance(100 * time.Millisecond)
	tap()
	events.ProcessAllEvents(world)

	if len(names) != 1 || names[0] != "pz_doubletap" {
		t.Errorf("names = %v, want [pz_doubletap]", names)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	NotificationEventType.Subscribe(world, func(w donburi.World, n pinchzoom.Notification) {
		count1++
	})
	NotificationEventType.Subscribe(world, func(w donburi.World, n pinchzoom.Notification) {
		count2++
	})

	sink.Notify(pinchzoom.Notification{Type: pinchzoom.EventDragEnd})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
