package viz

import (
	"math"

	"github.com/san-kum/numlab/internal/numeric"
)

// ClipLimit bounds the |y| values taken into account when drawing.
// Larger values are treated like undefined points.
const ClipLimit = 1e4

// Frame is the world rectangle mapped onto a canvas.
type Frame struct {
	XMin, XMax float64
	YMin, YMax float64
}

func drawable(y float64) bool {
	return numeric.IsFinite(y) && math.Abs(y) <= ClipLimit
}

// FitFrame samples f over [a, b] and returns a frame that holds the curve
// and the x axis, with a little vertical padding.
func FitFrame(f numeric.Func, a, b float64, samples int) Frame {
	if a > b {
		a, b = b, a
	}
	fr := Frame{XMin: a, XMax: b, YMin: 0, YMax: 0}
	if samples < 2 {
		samples = 2
	}
	for i := 0; i < samples; i++ {
		x := a + (b-a)*float64(i)/float64(samples-1)
		y, err := f.Eval(x)
		if err != nil || !drawable(y) {
			continue
		}
		fr.Include(x, y)
	}
	return fr.Padded(0.1)
}

// Include grows the frame to contain (x, y).
func (fr *Frame) Include(x, y float64) {
	if !drawable(y) || !numeric.IsFinite(x) {
		return
	}
	fr.XMin = math.Min(fr.XMin, x)
	fr.XMax = math.Max(fr.XMax, x)
	fr.YMin = math.Min(fr.YMin, y)
	fr.YMax = math.Max(fr.YMax, y)
}

// Padded returns the frame widened by frac of its height on both sides.
// Degenerate extents are opened to a unit range.
func (fr Frame) Padded(frac float64) Frame {
	if fr.XMax-fr.XMin < 1e-12 {
		fr.XMin, fr.XMax = fr.XMin-0.5, fr.XMax+0.5
	}
	dy := fr.YMax - fr.YMin
	if dy < 1e-12 {
		fr.YMin, fr.YMax = fr.YMin-1, fr.YMax+1
		return fr
	}
	fr.YMin -= dy * frac
	fr.YMax += dy * frac
	return fr
}

func (fr Frame) Contains(p numeric.Point) bool {
	return p.X >= fr.XMin && p.X <= fr.XMax && p.Y >= fr.YMin && p.Y <= fr.YMax
}

// Clip trims the segment pq to the frame (Liang-Barsky). ok is false when
// nothing of it is visible.
func (fr Frame) Clip(p, q numeric.Point) (numeric.Point, numeric.Point, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := q.X-p.X, q.Y-p.Y

	edges := [4][2]float64{
		{-dx, p.X - fr.XMin},
		{dx, fr.XMax - p.X},
		{-dy, p.Y - fr.YMin},
		{dy, fr.YMax - p.Y},
	}
	for _, e := range edges {
		pe, qe := e[0], e[1]
		if pe == 0 {
			if qe < 0 {
				return p, q, false
			}
			continue
		}
		r := qe / pe
		if pe < 0 {
			if r > t1 {
				return p, q, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return p, q, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return numeric.Point{X: p.X + t0*dx, Y: p.Y + t0*dy},
		numeric.Point{X: p.X + t1*dx, Y: p.Y + t1*dy}, true
}

// Plotter draws world coordinates onto a canvas through a frame.
type Plotter struct {
	Canvas *Canvas
	Frame  Frame
}

func NewPlotter(cols, rows int, fr Frame) *Plotter {
	return &Plotter{Canvas: NewCanvas(cols, rows), Frame: fr}
}

func (p *Plotter) dot(pt numeric.Point) (int, int) {
	w, h := p.Canvas.Dots()
	fr := p.Frame
	x := (pt.X - fr.XMin) / (fr.XMax - fr.XMin) * float64(w-1)
	y := (fr.YMax - pt.Y) / (fr.YMax - fr.YMin) * float64(h-1)
	return int(math.Round(x)), int(math.Round(y))
}

// Segment draws the visible part of pq.
func (p *Plotter) Segment(a, b numeric.Point) {
	if !numeric.IsFinite(a.X) || !numeric.IsFinite(a.Y) || !numeric.IsFinite(b.X) || !numeric.IsFinite(b.Y) {
		return
	}
	a, b, ok := p.Frame.Clip(a, b)
	if !ok {
		return
	}
	x0, y0 := p.dot(a)
	x1, y1 := p.dot(b)
	p.Canvas.Line(x0, y0, x1, y1)
}

func (p *Plotter) DashedSegment(a, b numeric.Point) {
	a, b, ok := p.Frame.Clip(a, b)
	if !ok {
		return
	}
	x0, y0 := p.dot(a)
	x1, y1 := p.dot(b)
	p.Canvas.Dashed(x0, y0, x1, y1, 2)
}

// Polyline joins consecutive points. A nil outline draws nothing.
func (p *Plotter) Polyline(pts []numeric.Point) {
	for i := 1; i < len(pts); i++ {
		p.Segment(pts[i-1], pts[i])
	}
}

// Axes draws the x and y axes where they fall inside the frame.
func (p *Plotter) Axes() {
	fr := p.Frame
	if fr.YMin <= 0 && fr.YMax >= 0 {
		p.DashedSegment(numeric.Point{X: fr.XMin, Y: 0}, numeric.Point{X: fr.XMax, Y: 0})
	}
	if fr.XMin <= 0 && fr.XMax >= 0 {
		p.DashedSegment(numeric.Point{X: 0, Y: fr.YMin}, numeric.Point{X: 0, Y: fr.YMax})
	}
}

// Curve samples f across the frame. The curve is broken wherever f is
// undefined or beyond ClipLimit.
func (p *Plotter) Curve(f numeric.Func) {
	w, _ := p.Canvas.Dots()
	fr := p.Frame
	var prev *numeric.Point
	for i := 0; i < w; i++ {
		x := fr.XMin + (fr.XMax-fr.XMin)*float64(i)/float64(w-1)
		y, err := f.Eval(x)
		if err != nil || !drawable(y) {
			prev = nil
			continue
		}
		pt := numeric.Point{X: x, Y: y}
		if prev != nil {
			p.Segment(*prev, pt)
		} else if fr.Contains(pt) {
			p.Canvas.Set(p.dot(pt))
		}
		prev = &pt
	}
}

// VLine draws a dashed vertical line at x.
func (p *Plotter) VLine(x float64) {
	p.DashedSegment(numeric.Point{X: x, Y: p.Frame.YMin}, numeric.Point{X: x, Y: p.Frame.YMax})
}

// Mark draws a small cross at pt.
func (p *Plotter) Mark(pt numeric.Point) {
	if !p.Frame.Contains(pt) {
		return
	}
	x, y := p.dot(pt)
	for d := -1; d <= 1; d++ {
		p.Canvas.Set(x+d, y)
		p.Canvas.Set(x, y+d)
	}
}

func (p *Plotter) String() string { return p.Canvas.String() }
