package common

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 3, 0, 18, 3},
		{"below", -0.75, 0, 18, 0},
		{"above", 18.75, 0, 18, 18},
		{"empty_range", 1, 0, -1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.lo, c.hi); got != c.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
			}
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]int{
		0:    0,
		0.49: 0,
		0.5:  1,
		1.5:  2,
		2.5:  3,
		17.7: 18,
		18:   18,
	}
	for in, want := range cases {
		if got := RoundHalfUp(in); got != want {
			t.Fatalf("RoundHalfUp(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestFitRect(t *testing.T) {
	t.Run("height_bound", func(t *testing.T) {
		f := FitRect(1000, 500, 100, 100, 0.92)
		if math.Abs(f.Scale-4.6) > 1e-9 {
			t.Fatalf("scale = %v, want 4.6", f.Scale)
		}
		if math.Abs(f.Width-460) > 1e-9 || math.Abs(f.Height-460) > 1e-9 {
			t.Fatalf("size = %vx%v", f.Width, f.Height)
		}
		if math.Abs(f.X-270) > 1e-9 || math.Abs(f.Y-20) > 1e-9 {
			t.Fatalf("offset = %v,%v", f.X, f.Y)
		}
	})

	t.Run("width_bound", func(t *testing.T) {
		f := FitRect(400, 1000, 200, 100, 1)
		if f.Scale != 2 || f.Width != 400 || f.Height != 200 {
			t.Fatalf("fit = %+v", f)
		}
		if f.X != 0 || f.Y != 400 {
			t.Fatalf("offset = %v,%v", f.X, f.Y)
		}
	})

	t.Run("degenerate", func(t *testing.T) {
		if f := FitRect(0, 100, 10, 10, 0.92); f != (Fit{}) {
			t.Fatalf("expected zero fit, got %+v", f)
		}
		if f := FitRect(100, 100, 0, 10, 0.92); f != (Fit{}) {
			t.Fatalf("expected zero fit, got %+v", f)
		}
	})
}
