package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/viz"
)

const (
	background = "#0a0a0a"
	curveColor = "#e0e0e0"
	axisColor  = "#555566"
	traceColor = "#00ccff"
	fillColor  = "#00ff88"
)

// CanvasToSVG turns every lit Braille dot into a circle.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	w, h := canvas.Dots()
	width, height := float64(w)*scale, float64(h)*scale

	var sb strings.Builder
	header(&sb, width, height)
	sb.WriteString(`<g fill="#00ff00">` + "\n")

	r := scale * 0.4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", cx, cy, r)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func header(sb *strings.Builder, width, height float64) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}

// projector maps world coordinates into the SVG viewport.
type projector struct {
	fr            viz.Frame
	width, height float64
}

func (p projector) at(pt numeric.Point) (float64, float64) {
	x := (pt.X - p.fr.XMin) / (p.fr.XMax - p.fr.XMin) * p.width
	y := (p.fr.YMax - pt.Y) / (p.fr.YMax - p.fr.YMin) * p.height
	return x, y
}

func (p projector) line(sb *strings.Builder, a, b numeric.Point, color string, dashed bool) {
	a, b, ok := p.fr.Clip(a, b)
	if !ok {
		return
	}
	x0, y0 := p.at(a)
	x1, y1 := p.at(b)
	dash := ""
	if dashed {
		dash = ` stroke-dasharray="4 3"`
	}
	fmt.Fprintf(sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.2"%s/>`+"\n",
		x0, y0, x1, y1, color, dash)
}

// path writes pts as one polyline, starting a new subpath after every
// point outside the frame.
func (p projector) path(sb *strings.Builder, pts []numeric.Point, stroke, fill string) {
	var d strings.Builder
	pen := false
	for _, pt := range pts {
		if !p.fr.Contains(pt) {
			pen = false
			continue
		}
		x, y := p.at(pt)
		if pen {
			fmt.Fprintf(&d, " L%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&d, " M%.1f,%.1f", x, y)
			pen = true
		}
	}
	if d.Len() == 0 {
		return
	}
	fillAttr := `fill="none"`
	if fill != "" {
		fillAttr = fmt.Sprintf(`fill="%s" fill-opacity="0.25"`, fill)
	}
	fmt.Fprintf(sb, `<path %s stroke="%s" stroke-width="1.5" d="%s"/>`+"\n", fillAttr, stroke, strings.TrimSpace(d.String()))
}

// SceneToSVG renders the function and the first step steps of the trace
// as vector graphics.
func SceneToSVG(scene *viz.Scene, step, width, height int) string {
	step = max(0, min(step, scene.Steps()))
	p := projector{fr: scene.Frame(), width: float64(width), height: float64(height)}
	fr := p.fr

	var sb strings.Builder
	header(&sb, p.width, p.height)

	p.line(&sb, numeric.Point{X: fr.XMin, Y: 0}, numeric.Point{X: fr.XMax, Y: 0}, axisColor, false)
	p.line(&sb, numeric.Point{X: 0, Y: fr.YMin}, numeric.Point{X: 0, Y: fr.YMax}, axisColor, false)

	if scene.Segments != nil {
		for _, seg := range scene.Segments[:step] {
			p.path(&sb, seg.Outline(viz.OutlinePoints), fillColor, fillColor)
		}
	}

	p.path(&sb, sampleCurve(scene.Function, fr, width), curveColor, "")

	if scene.Records != nil {
		writeRecords(&sb, p, scene, step)
	}

	fmt.Fprintf(&sb, `<text x="8" y="18" fill="%s" font-family="monospace" font-size="12">%s</text>`+"\n",
		curveColor, escape(scene.Title))
	sb.WriteString("</svg>")
	return sb.String()
}

func writeRecords(sb *strings.Builder, p projector, scene *viz.Scene, step int) {
	fr := p.fr
	if scene.Method == "fixed_point" {
		lo, hi := math.Max(fr.XMin, fr.YMin), math.Min(fr.XMax, fr.YMax)
		p.line(sb, numeric.Point{X: lo, Y: lo}, numeric.Point{X: hi, Y: hi}, axisColor, true)
		for _, r := range scene.Records[:step] {
			p.line(sb, numeric.Point{X: r.Prev, Y: r.Prev}, numeric.Point{X: r.Prev, Y: r.Next}, traceColor, false)
			p.line(sb, numeric.Point{X: r.Prev, Y: r.Next}, numeric.Point{X: r.Next, Y: r.Next}, traceColor, false)
		}
		return
	}

	for _, r := range scene.Records[:step] {
		if r.Bracket != nil {
			for _, x := range []float64{r.Bracket.Lo, r.Bracket.Hi} {
				p.line(sb, numeric.Point{X: x, Y: fr.YMin}, numeric.Point{X: x, Y: fr.YMax}, traceColor, true)
			}
			continue
		}
		if r.Line != nil {
			a, b := r.Line.Span(fr.XMin, fr.XMax)
			p.line(sb, a, b, traceColor, false)
		}
		p.line(sb, numeric.Point{X: r.Next, Y: fr.YMin}, numeric.Point{X: r.Next, Y: fr.YMax}, axisColor, true)
	}
}

// sampleCurve evaluates f at k points; undefined points become NaN so the
// path breaks there.
func sampleCurve(f numeric.Func, fr viz.Frame, k int) []numeric.Point {
	pts := make([]numeric.Point, 0, k)
	for i := 0; i < k; i++ {
		x := fr.XMin + (fr.XMax-fr.XMin)*float64(i)/float64(k-1)
		y, err := f.Eval(x)
		if err != nil || math.Abs(y) > viz.ClipLimit {
			y = math.NaN()
		}
		pts = append(pts, numeric.Point{X: x, Y: y})
	}
	return pts
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}
