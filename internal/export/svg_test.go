package export

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/quadrature"
	"github.com/san-kum/numlab/internal/rootfind"
	"github.com/san-kum/numlab/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	svg := CanvasToSVG(c, 10)
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
	if !strings.Contains(svg, `width="40" height="40"`) {
		t.Errorf("unexpected size:\n%s", svg)
	}
	if CanvasToSVG(nil, 1) != "" {
		t.Error("nil canvas should give empty output")
	}
}

func TestSceneToSVGRoot(t *testing.T) {
	f := numeric.NewFunction("x^2-2", func(x float64) float64 { return x*x - 2 }).
		WithDerivative(func(x float64) float64 { return 2 * x })
	res, err := rootfind.Newton(f, 1.5, 1e-4, 10)
	if err != nil {
		t.Fatal(err)
	}
	sc := viz.NewRootScene("newton <x^2-2>", f, res)

	bare := SceneToSVG(sc, 0, 400, 300)
	full := SceneToSVG(sc, sc.Steps(), 400, 300)
	if !strings.HasSuffix(full, "</svg>") {
		t.Error("svg not closed")
	}
	if strings.Count(full, "<line") <= strings.Count(bare, "<line") {
		t.Error("tangents should add lines")
	}
	if !strings.Contains(full, "newton &lt;x^2-2&gt;") {
		t.Error("title should be escaped")
	}
}

func TestSceneToSVGQuadrature(t *testing.T) {
	inv := numeric.Plain(func(x float64) float64 { return 1 / (x - 1) })
	res, err := quadrature.Trapezoid(inv, 0, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	svg := SceneToSVG(viz.NewQuadScene("pole", inv, res), 4, 400, 300)

	// Two of the four trapezoids touch the pole and are not drawn.
	if got := strings.Count(svg, `fill-opacity`); got != 2 {
		t.Errorf("expected 2 filled segments, got %d", got)
	}
	if strings.Contains(svg, "NaN") {
		t.Error("undefined points leaked into the path")
	}
}

func TestSampleCurveBreaks(t *testing.T) {
	fr := viz.Frame{XMin: -1, XMax: 1, YMin: -2, YMax: 2}
	pts := sampleCurve(numeric.Plain(func(x float64) float64 { return 1 / x }), fr, 3)
	if !math.IsNaN(pts[1].Y) {
		t.Errorf("expected a break at the pole, got %v", pts[1])
	}
}
