package numeric

import "fmt"

type Point struct {
	X, Y float64
}

type LineKind int

const (
	LineNone LineKind = iota
	LineTangent
	LineSecant
)

func (k LineKind) String() string {
	switch k {
	case LineTangent:
		return "tangent"
	case LineSecant:
		return "secant"
	default:
		return "none"
	}
}

// Line is the straight line through Anchor with the given Slope.
type Line struct {
	Kind   LineKind
	Anchor Point
	Slope  float64
}

func (l Line) At(x float64) float64 {
	return l.Anchor.Y + l.Slope*(x-l.Anchor.X)
}

// Root returns where the line crosses y=0. ok is false for a flat line.
func (l Line) Root() (x float64, ok bool) {
	if l.Slope == 0 {
		return 0, false
	}
	return l.Anchor.X - l.Anchor.Y/l.Slope, true
}

// Span returns the endpoints of the line over [x0, x1].
func (l Line) Span(x0, x1 float64) (Point, Point) {
	return Point{x0, l.At(x0)}, Point{x1, l.At(x1)}
}

// Bracket is the interval a bracketing method keeps after a step.
type Bracket struct {
	Lo, Hi float64
}

func (b Bracket) Width() float64 { return b.Hi - b.Lo }

// IterationRecord is one step of a root-finding run.
type IterationRecord struct {
	Step int
	Prev float64
	Next float64
	// FPrev is the iterated function (f, or g for fixed-point) at Prev.
	FPrev   float64
	Line    *Line
	Bracket *Bracket
}

func (r IterationRecord) Delta() float64 { return r.Next - r.Prev }

type Status int

const (
	StatusConverged Status = iota
	StatusMaxIterations
	StatusStalled
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusMaxIterations:
		return "max_iterations"
	case StatusStalled:
		return "stalled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// RootResult is the outcome of a root-finding run.
type RootResult struct {
	Method     string
	Root       float64
	Iterations int
	Converged  bool
	Status     Status
	// Residual measures how far Root is from solving the problem: |f(Root)|
	// for equations, |g(x)-x| over the last step for fixed-point runs. It is
	// NaN when f is undefined at Root.
	Residual float64
	Records  []IterationRecord
}

func (r *RootResult) String() string {
	return fmt.Sprintf("%s: root=%.8g iterations=%d status=%s", r.Method, r.Root, r.Iterations, r.Status)
}
