package numeric

import (
	"math"
	"testing"
)

func TestLine(t *testing.T) {
	l := Line{Kind: LineTangent, Anchor: Point{1.5, 0.25}, Slope: 3}

	if got := l.At(2.5); math.Abs(got-3.25) > 1e-12 {
		t.Errorf("At: expected 3.25, got %f", got)
	}

	x, ok := l.Root()
	if !ok {
		t.Fatal("expected a root")
	}
	if math.Abs(x-(1.5-0.25/3)) > 1e-12 {
		t.Errorf("Root: got %f", x)
	}

	flat := Line{Anchor: Point{0, 1}}
	if _, ok := flat.Root(); ok {
		t.Error("flat line must have no root")
	}
}

func TestSegmentOutline(t *testing.T) {
	rect := Segment{Shape: ShapeRectangle, X0: 0, X1: 1, Samples: []Point{{0, 2}}}
	if got := len(rect.Outline(10)); got != 4 {
		t.Errorf("rectangle outline: expected 4 points, got %d", got)
	}

	trap := Segment{Shape: ShapeTrapezoid, X0: 0, X1: 1, Samples: []Point{{0, 1}, {1, 3}}}
	out := trap.Outline(10)
	if len(out) != 4 || out[2].Y != 3 {
		t.Errorf("unexpected trapezoid outline: %v", out)
	}

	failed := Segment{Shape: ShapeRectangle, X0: 0, X1: 1, Samples: []Point{{0, math.NaN()}}, Failed: true}
	if failed.Outline(10) != nil {
		t.Error("failed segment must have no outline")
	}
}

func TestParabolaInterpolates(t *testing.T) {
	f := func(x float64) float64 { return 3*x*x - x + 1 }
	s := Segment{
		Shape:   ShapeParabola,
		X0:      0,
		X1:      2,
		Samples: []Point{{0, f(0)}, {1, f(1)}, {2, f(2)}},
	}

	for _, tc := range []float64{0, 0.25, 0.5, 0.8, 1} {
		x := s.X0 + (s.X1-s.X0)*tc
		if got := s.Parabola(tc); math.Abs(got-f(x)) > 1e-12 {
			t.Errorf("t=%.2f: expected %f, got %f", tc, f(x), got)
		}
	}

	out := s.Outline(20)
	if len(out) != 23 {
		t.Errorf("expected 23 outline points, got %d", len(out))
	}
	if out[0].Y != 0 || out[len(out)-1].Y != 0 {
		t.Error("outline must start and end on the axis")
	}
}

func TestStatusString(t *testing.T) {
	if StatusConverged.String() != "converged" {
		t.Error("unexpected converged label")
	}
	if StatusStalled.String() != "stalled" {
		t.Error("unexpected stalled label")
	}
}
