package pinchzoom

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestSwing(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{0.25, 0.5 - math.Sqrt2/4},
		{0.5, 0.5},
		{1, 1},
	}
	for _, tt := range tests {
		if got := Swing(tt.in); !approxEqual(got, tt.want, 1e-12) {
			t.Errorf("Swing(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSwingMatchesInOutSine(t *testing.T) {
	for i := 0; i <= 20; i++ {
		p := float64(i) / 20
		sine := float64(ease.InOutSine(float32(p), 0, 1, 1))
		if !approxEqual(Swing(p), sine, 1e-5) {
			t.Errorf("Swing(%v) = %v, InOutSine = %v", p, Swing(p), sine)
		}
	}
}

func TestSwingEaseScalesRange(t *testing.T) {
	tests := []struct {
		t, b, c, d float32
		want       float64
	}{
		{0, 10, 20, 2, 10},
		{1, 10, 20, 2, 20},
		{2, 10, 20, 2, 30},
		{0.5, 0, 1, 1, 0.5},
	}
	for _, tt := range tests {
		got := float64(swingEase(tt.t, tt.b, tt.c, tt.d))
		if !approxEqual(got, tt.want, 1e-5) {
			t.Errorf("swingEase(%v, %v, %v, %v) = %v, want %v", tt.t, tt.b, tt.c, tt.d, got, tt.want)
		}
	}
}

func TestSchedulerFrames(t *testing.T) {
	clock := NewManualClock(testEpoch)
	s := NewScheduler(clock)

	var got []float64
	done := 0
	s.Animate(nil, func(p float64) { got = append(got, p) }, 300*time.Millisecond, func() { done++ })
	if !s.Active() {
		t.Fatal("scheduler should be active after Animate")
	}

	s.Update()
	clock.Advance(150 * time.Millisecond)
	s.Update()
	if done != 0 {
		t.Fatal("done called before the end")
	}
	clock.Advance(150 * time.Millisecond)
	s.Update()

	want := []float64{0, 0.5, 1}
	if len(got) != len(want) {
		t.Fatalf("frames = %v, want %v", got, want)
	}
	for i := range want {
		if !approxEqual(got[i], want[i], 1e-6) {
			t.Errorf("frame %d = %v, want %v", i, got[i], want[i])
		}
	}
	if done != 1 {
		t.Errorf("done called %d times, want 1", done)
	}
	if s.Active() {
		t.Error("scheduler should be idle after the last frame")
	}
	if s.Update() {
		t.Error("Update after completion should draw nothing")
	}
}

func TestSchedulerSwingMidpoint(t *testing.T) {
	clock := NewManualClock(testEpoch)
	s := NewScheduler(clock)
	var last float64
	s.Animate(swingEase, func(p float64) { last = p }, 300*time.Millisecond, nil)

	clock.Advance(75 * time.Millisecond)
	s.Update()
	if !approxEqual(last, Swing(0.25), 1e-5) {
		t.Errorf("progress at 25%% = %v, want %v", last, Swing(0.25))
	}
	clock.Advance(75 * time.Millisecond)
	s.Update()
	if !approxEqual(last, 0.5, 1e-5) {
		t.Errorf("progress at 50%% = %v, want 0.5", last)
	}
}

func TestSchedulerSingleFlight(t *testing.T) {
	clock := NewManualClock(testEpoch)
	s := NewScheduler(clock)

	var first, second, firstDone int
	s.Animate(ease.Linear, func(float64) { first++ }, 300*time.Millisecond, func() { firstDone++ })
	s.Animate(ease.Linear, func(float64) { second++ }, 300*time.Millisecond, nil)

	for i := 0; i < 5; i++ {
		clock.Advance(100 * time.Millisecond)
		s.Update()
	}
	if first != 0 || firstDone != 0 {
		t.Errorf("replaced tween ran: %d frames, %d done", first, firstDone)
	}
	if second != 3 {
		t.Errorf("second tween drew %d frames, want 3", second)
	}
}

func TestSchedulerStop(t *testing.T) {
	clock := NewManualClock(testEpoch)
	s := NewScheduler(clock)
	frames, done := 0, 0
	s.Animate(nil, func(float64) { frames++ }, 300*time.Millisecond, func() { done++ })
	s.Update()
	s.Stop()
	clock.Advance(time.Second)
	if s.Update() {
		t.Error("Update after Stop should draw nothing")
	}
	if frames != 1 || done != 0 {
		t.Errorf("frames = %d, done = %d, want 1, 0", frames, done)
	}
	if s.Active() {
		t.Error("scheduler should be idle after Stop")
	}
}

func TestSchedulerZeroDuration(t *testing.T) {
	s := NewScheduler(NewManualClock(testEpoch))
	var got []float64
	done := false
	s.Animate(nil, func(p float64) { got = append(got, p) }, 0, func() { done = true })
	s.Update()
	if len(got) != 1 || got[0] != 1 || !done {
		t.Errorf("frames = %v, done = %v, want [1], true", got, done)
	}
}

func TestSchedulerDoneMayStartNewTween(t *testing.T) {
	clock := NewManualClock(testEpoch)
	s := NewScheduler(clock)
	chained := 0
	s.Animate(nil, func(float64) {}, 100*time.Millisecond, func() {
		s.Animate(nil, func(float64) { chained++ }, 100*time.Millisecond, nil)
	})
	clock.Advance(100 * time.Millisecond)
	s.Update()
	if !s.Active() {
		t.Fatal("tween started from done should be active")
	}
	clock.Advance(100 * time.Millisecond)
	s.Update()
	if chained != 1 {
		t.Errorf("chained frames = %d, want 1", chained)
	}
}
