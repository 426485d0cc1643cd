package netcomponents

import "testing"

func TestLerpNetProp(t *testing.T) {
	from := NetPropData{X: 0, Y: 10, W: 16, H: 24, Model: "barrel", Health: 20}
	to := NetPropData{X: 10, Y: 30, W: 16, H: 10, Model: "barrel_bottom", Dead: true}

	cases := []struct {
		t    float64
		x, y float64
	}{
		{0, 0, 10},
		{0.5, 5, 20},
		{1, 10, 30},
	}
	for _, c := range cases {
		got := LerpNetProp(from, to, c.t)
		if got.X != c.x || got.Y != c.y {
			t.Fatalf("t=%v: position (%v, %v), want (%v, %v)", c.t, got.X, got.Y, c.x, c.y)
		}
		if got.Model != to.Model || !got.Dead || got.H != to.H {
			t.Fatalf("t=%v: discrete state not taken from the newer snapshot: %+v", c.t, got)
		}
	}
}
