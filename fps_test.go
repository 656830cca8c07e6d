package pinchzoom

import "testing"

func TestStatusText(t *testing.T) {
	c, _, _ := newTestController(t, DefaultConfig())
	c.ScaleTo(2, Vec2{150, 150})
	got := statusText(c, 59.94, 60)
	want := "FPS: 59.9  TPS: 60.0\nzoom: 2.00\noffset: 150, 50\nstate: idle"
	if got != want {
		t.Errorf("statusText =\n%q\nwant\n%q", got, want)
	}
}
