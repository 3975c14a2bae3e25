package viz

import (
	"fmt"
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// OutlinePoints is the number of interior samples used for parabola
// outlines.
const OutlinePoints = 20

// Scene is a function together with the trace of one run. Steps counts
// the frames a replay can show; frame k draws the first k steps.
type Scene struct {
	Title    string
	Method   string
	Function numeric.Func
	Records  []numeric.IterationRecord
	Segments []numeric.Segment
	Lo, Hi   float64
}

// NewRootScene frames every iterate of res with some margin.
func NewRootScene(title string, f numeric.Func, res *numeric.RootResult) *Scene {
	s := &Scene{Title: title, Method: res.Method, Function: f, Records: res.Records}

	lo, hi := res.Root, res.Root
	for _, r := range res.Records {
		for _, x := range []float64{r.Prev, r.Next} {
			if numeric.IsFinite(x) {
				lo, hi = math.Min(lo, x), math.Max(hi, x)
			}
		}
		if r.Bracket != nil {
			lo, hi = math.Min(lo, r.Bracket.Lo), math.Max(hi, r.Bracket.Hi)
		}
	}
	span := hi - lo
	if span < 1e-9 || !numeric.IsFinite(span) {
		span = 1
	}
	s.Lo, s.Hi = lo-span/4, hi+span/4
	return s
}

func NewQuadScene(title string, f numeric.Func, res *numeric.QuadResult) *Scene {
	s := &Scene{Title: title, Method: res.Method, Function: f, Segments: res.Segments}
	if n := len(res.Segments); n > 0 {
		// a > b gives segments running right to left
		a, b := res.Segments[0].X0, res.Segments[n-1].X1
		s.Lo, s.Hi = math.Min(a, b), math.Max(a, b)
	}
	return s
}

func (s *Scene) Steps() int {
	if s.Segments != nil {
		return len(s.Segments)
	}
	return len(s.Records)
}

// Frame fits the function over the scene window plus the traced points.
func (s *Scene) Frame() Frame {
	fr := FitFrame(s.Function, s.Lo, s.Hi, 200)
	for _, r := range s.Records {
		if s.Method == "fixed_point" {
			fr.Include(r.Prev, r.Next)
		}
		fr.Include(r.Prev, r.FPrev)
	}
	return fr
}

// Render draws the function with the first step steps of the trace.
func (s *Scene) Render(cols, rows, step int) string {
	return s.Draw(cols, rows, step).String()
}

// Draw is Render without the final conversion to text.
func (s *Scene) Draw(cols, rows, step int) *Plotter {
	step = max(0, min(step, s.Steps()))

	p := NewPlotter(cols, rows, s.Frame())
	p.Axes()
	p.Curve(s.Function)

	switch {
	case s.Segments != nil:
		for _, seg := range s.Segments[:step] {
			p.Polyline(seg.Outline(OutlinePoints))
		}
	case s.Method == "fixed_point":
		s.cobweb(p, step)
	default:
		for _, r := range s.Records[:step] {
			s.drawRecord(p, r)
		}
	}
	return p
}

// cobweb draws y = x and the staircase (x_k, x_k) -> (x_k, g(x_k)) ->
// (x_{k+1}, x_{k+1}).
func (s *Scene) cobweb(p *Plotter, step int) {
	fr := p.Frame
	lo, hi := math.Max(fr.XMin, fr.YMin), math.Min(fr.XMax, fr.YMax)
	if lo < hi {
		p.DashedSegment(numeric.Point{X: lo, Y: lo}, numeric.Point{X: hi, Y: hi})
	}
	for _, r := range s.Records[:step] {
		p.Segment(numeric.Point{X: r.Prev, Y: r.Prev}, numeric.Point{X: r.Prev, Y: r.Next})
		p.Segment(numeric.Point{X: r.Prev, Y: r.Next}, numeric.Point{X: r.Next, Y: r.Next})
	}
}

func (s *Scene) drawRecord(p *Plotter, r numeric.IterationRecord) {
	if r.Bracket != nil {
		p.VLine(r.Bracket.Lo)
		p.VLine(r.Bracket.Hi)
		p.Mark(numeric.Point{X: r.Prev, Y: r.FPrev})
		return
	}
	if r.Line != nil {
		a, b := r.Line.Span(p.Frame.XMin, p.Frame.XMax)
		p.Segment(a, b)
	}
	p.Mark(numeric.Point{X: r.Prev, Y: r.FPrev})
	p.VLine(r.Next)
}

// Caption describes step k (1-based) of the trace.
func (s *Scene) Caption(k int) string {
	if k < 1 || k > s.Steps() {
		return fmt.Sprintf("%s: %d steps", s.Method, s.Steps())
	}
	if s.Segments != nil {
		seg := s.Segments[k-1]
		if seg.Failed {
			return fmt.Sprintf("segment %d [%.4g, %.4g] %s: undefined sample", k, seg.X0, seg.X1, seg.Shape)
		}
		return fmt.Sprintf("segment %d [%.4g, %.4g] %s", k, seg.X0, seg.X1, seg.Shape)
	}
	r := s.Records[k-1]
	switch {
	case r.Bracket != nil:
		return fmt.Sprintf("step %d: [%.6g, %.6g] mid %.6g", k, r.Bracket.Lo, r.Bracket.Hi, r.Prev)
	case r.Line != nil:
		return fmt.Sprintf("step %d: %s slope %.4g, x %.6g -> %.6g", k, r.Line.Kind, r.Line.Slope, r.Prev, r.Next)
	default:
		return fmt.Sprintf("step %d: x %.6g -> %.6g", k, r.Prev, r.Next)
	}
}

// Deltas returns |x_{k+1} - x_k| per record, for convergence charts.
func Deltas(recs []numeric.IterationRecord) []float64 {
	out := make([]float64, 0, len(recs))
	for _, r := range recs {
		out = append(out, math.Abs(r.Delta()))
	}
	return out
}
