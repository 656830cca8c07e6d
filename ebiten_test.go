package pinchzoom

import "testing"

func TestTransformGeoMMatchesApply(t *testing.T) {
	tests := []struct {
		name   string
		tr     Transform
		origin Vec2
	}{
		{"identity", Transform{Scale: 1}, Vec2{}},
		{"fit", Transform{Scale: 0.5, Translate: Vec2{0, 100}}, Vec2{}},
		{"zoomed in viewport", Transform{Scale: 1.5, Translate: Vec2{-40, -12}}, Vec2{20, 35}},
	}
	points := []Vec2{{0, 0}, {600, 400}, {123, 45}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.tr.GeoM(tt.origin)
			for _, p := range points {
				x, y := m.Apply(p.X, p.Y)
				want := tt.tr.Apply(p).Add(tt.origin)
				if !vecApprox(Vec2{x, y}, want, 1e-9) {
					t.Errorf("GeoM.Apply(%v) = (%v, %v), want %v", p, x, y, want)
				}
			}
		})
	}
}

func TestViewGeometry(t *testing.T) {
	v := &View{viewport: Rect{X: 10, Y: 20, Width: 300, Height: 200}}
	if got := v.ContainerSize(); got != (Size{300, 200}) {
		t.Errorf("ContainerSize = %v", got)
	}
	if got := v.ContainerOrigin(); got != (Vec2{10, 20}) {
		t.Errorf("ContainerOrigin = %v", got)
	}
	if got := v.ElementSize(); got != (Size{}) {
		t.Errorf("ElementSize without image = %v", got)
	}
}

func TestViewRendererAndGeoM(t *testing.T) {
	v := &View{viewport: Rect{X: 10, Y: 20, Width: 300, Height: 300}}
	geom := &StaticGeometry{Container: Size{300, 300}, Element: Size{600, 400}}
	c := NewController(DefaultConfig(), geom, NewManualClock(testEpoch))
	c.SetRenderer(v)
	c.Layout()

	x, y := v.GeoM().Apply(0, 0)
	// Element top-left lands 50px below the viewport's top edge.
	if !approxEqual(x, 10, 1e-9) || !approxEqual(y, 70, 1e-9) {
		t.Errorf("top-left = (%v, %v), want (10, 70)", x, y)
	}
	if got := v.ScreenToElement(Vec2{x, y}); !vecApprox(got, Vec2{}, 1e-9) {
		t.Errorf("ScreenToElement(top-left) = %v, want origin", got)
	}
	if got := v.ScreenToElement(Vec2{160, 170}); !vecApprox(got, Vec2{300, 200}, 1e-9) {
		t.Errorf("ScreenToElement(center) = %v, want (300, 200)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{10, 10}, true},
		{Vec2{29.9, 29.9}, true},
		{Vec2{30, 15}, true},
		{Vec2{30.1, 15}, false},
		{Vec2{5, 15}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
