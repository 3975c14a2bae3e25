package numeric

import "math"

type Shape int

const (
	ShapeRectangle Shape = iota
	ShapeTrapezoid
	ShapeParabola
)

func (s Shape) String() string {
	switch s {
	case ShapeRectangle:
		return "rectangle"
	case ShapeTrapezoid:
		return "trapezoid"
	case ShapeParabola:
		return "parabola"
	default:
		return "unknown"
	}
}

// Segment is one piece of a quadrature partition.
//
// Samples holds the points the rule evaluated: one for a rectangle, the two
// ends for a trapezoid, and x0, the midpoint and x2 for a parabola. A sample
// whose evaluation failed carries a NaN ordinate and sets Failed.
type Segment struct {
	Shape   Shape
	X0, X1  float64
	Samples []Point
	Failed  bool
}

func (s Segment) Width() float64 { return s.X1 - s.X0 }

// Outline returns the closed polygon bounding the segment's area
// contribution, starting and ending on the x-axis. Parabolic tops are
// sampled at k+1 points. A failed segment has no outline.
func (s Segment) Outline(k int) []Point {
	if s.Failed || len(s.Samples) == 0 {
		return nil
	}
	switch s.Shape {
	case ShapeRectangle:
		y := s.Samples[0].Y
		return []Point{{s.X0, 0}, {s.X0, y}, {s.X1, y}, {s.X1, 0}}
	case ShapeTrapezoid:
		if len(s.Samples) < 2 {
			return nil
		}
		return []Point{{s.X0, 0}, s.Samples[0], s.Samples[1], {s.X1, 0}}
	case ShapeParabola:
		if len(s.Samples) < 3 {
			return nil
		}
		if k < 2 {
			k = 2
		}
		pts := make([]Point, 0, k+3)
		pts = append(pts, Point{s.X0, 0})
		for i := 0; i <= k; i++ {
			t := float64(i) / float64(k)
			pts = append(pts, Point{s.X0 + (s.X1-s.X0)*t, s.Parabola(t)})
		}
		return append(pts, Point{s.X1, 0})
	}
	return nil
}

// Parabola evaluates the quadratic through the three samples at the
// normalized position t in [0, 1].
func (s Segment) Parabola(t float64) float64 {
	if len(s.Samples) < 3 {
		return math.NaN()
	}
	l0 := (1 - t) * (1 - 2*t)
	l1 := 4 * t * (1 - t)
	l2 := t * (2*t - 1)
	return s.Samples[0].Y*l0 + s.Samples[1].Y*l1 + s.Samples[2].Y*l2
}

// QuadResult is the outcome of a quadrature run.
type QuadResult struct {
	Method   string
	Value    float64
	N        int
	H        float64
	Segments []Segment
	// Failures lists the abscissae whose evaluation failed.
	Failures []float64
}

// Skipped is the number of samples whose contribution was dropped or
// poisoned by a domain error.
func (r *QuadResult) Skipped() int { return len(r.Failures) }
