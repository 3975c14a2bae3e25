package viz

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/numlab/internal/numeric"
	"github.com/san-kum/numlab/internal/quadrature"
	"github.com/san-kum/numlab/internal/rootfind"
)

var sqrt2 = numeric.NewFunction("x^2-2", func(x float64) float64 { return x*x - 2 }).
	WithDerivative(func(x float64) float64 { return 2 * x })

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	if !c.IsSet(0, 0) || !c.IsSet(3, 3) {
		t.Fatal("expected dots to be set")
	}
	if got := []rune(strings.TrimSpace(c.String())); got[0] != 0x2801 || got[1] != 0x2880 {
		t.Errorf("unexpected cells %U", got)
	}

	c.Unset(0, 0)
	if c.IsSet(0, 0) {
		t.Error("expected dot to be cleared")
	}

	c.Set(-1, 0)
	c.Set(100, 100)
	c.Clear()
	for _, r := range strings.TrimSpace(c.String()) {
		if r != brailleBase {
			t.Errorf("expected blank cell, got %U", r)
		}
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Line(0, 0, 7, 7)
	for i := 0; i <= 7; i++ {
		if !c.IsSet(i, i) {
			t.Errorf("diagonal dot %d missing", i)
		}
	}
}

func TestFrameClip(t *testing.T) {
	fr := Frame{XMin: 0, XMax: 1, YMin: 0, YMax: 1}

	a, b, ok := fr.Clip(numeric.Point{X: -1, Y: 0.5}, numeric.Point{X: 2, Y: 0.5})
	if !ok || a.X != 0 || b.X != 1 {
		t.Errorf("expected clip to [0,1], got %v %v %v", a, b, ok)
	}

	if _, _, ok := fr.Clip(numeric.Point{X: 2, Y: 2}, numeric.Point{X: 3, Y: 3}); ok {
		t.Error("segment outside the frame should be rejected")
	}
}

func TestFitFrameSkipsPoles(t *testing.T) {
	inv := numeric.Plain(func(x float64) float64 { return 1 / x })
	fr := FitFrame(inv, -1, 1, 3)
	if !numeric.IsFinite(fr.YMin) || !numeric.IsFinite(fr.YMax) {
		t.Fatalf("frame not finite: %+v", fr)
	}
	if fr.YMax > 2 || fr.YMin < -2 {
		t.Errorf("pole leaked into frame: %+v", fr)
	}
}

func TestRootSceneRender(t *testing.T) {
	res, err := rootfind.Newton(sqrt2, 1.5, 1e-4, 10)
	if err != nil {
		t.Fatal(err)
	}
	sc := NewRootScene("newton", sqrt2, res)
	if sc.Steps() != res.Iterations {
		t.Errorf("expected %d steps, got %d", res.Iterations, sc.Steps())
	}
	if sc.Lo > 1.41 || sc.Hi < 1.5 {
		t.Errorf("window [%v, %v] misses the iterates", sc.Lo, sc.Hi)
	}

	empty := sc.Render(30, 10, 0)
	full := sc.Render(30, 10, sc.Steps())
	if empty == full {
		t.Error("tangent overlays should change the picture")
	}
	if lines := strings.Count(full, "\n"); lines != 10 {
		t.Errorf("expected 10 rows, got %d", lines)
	}
	if !strings.Contains(sc.Caption(1), "tangent") {
		t.Errorf("unexpected caption %q", sc.Caption(1))
	}
}

func TestCobwebScene(t *testing.T) {
	g := numeric.Plain(func(x float64) float64 { return 0.5 * (x + 2/x) })
	res, err := rootfind.FixedPoint(g, 1, 1e-4, 20)
	if err != nil {
		t.Fatal(err)
	}
	sc := NewRootScene("fixed point", g, res)
	if sc.Render(30, 10, 0) == sc.Render(30, 10, sc.Steps()) {
		t.Error("cobweb should be drawn")
	}
}

func TestQuadSceneSkipsFailedSegments(t *testing.T) {
	inv := numeric.Plain(func(x float64) float64 { return 1 / (x - 1) })
	res, err := quadrature.Trapezoid(inv, 0, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	sc := NewQuadScene("pole", inv, res)
	if sc.Lo != 0 || sc.Hi != 2 {
		t.Errorf("unexpected window [%v, %v]", sc.Lo, sc.Hi)
	}
	if sc.Steps() != 4 {
		t.Errorf("expected 4 segments, got %d", sc.Steps())
	}
	_ = sc.Render(30, 10, sc.Steps())
	if !strings.Contains(sc.Caption(2), "undefined") {
		t.Errorf("segment touching the pole should be flagged: %q", sc.Caption(2))
	}
}

func TestQuadSceneReversedBounds(t *testing.T) {
	res, err := quadrature.Trapezoid(numeric.Plain(math.Sin), 2, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	sc := NewQuadScene("reversed", numeric.Plain(math.Sin), res)
	if sc.Lo != 0 || sc.Hi != 2 {
		t.Errorf("expected window [0, 2], got [%v, %v]", sc.Lo, sc.Hi)
	}

	fr := sc.Frame()
	if !(fr.XMin < fr.XMax) {
		t.Errorf("inverted x range [%v, %v]", fr.XMin, fr.XMax)
	}
	if !fr.Contains(numeric.Point{X: 1, Y: math.Sin(1)}) {
		t.Error("frame should contain the curve")
	}
	if sc.Render(30, 10, 0) == sc.Render(30, 10, sc.Steps()) {
		t.Error("segments should be drawn")
	}
}

func TestDeltas(t *testing.T) {
	recs := []numeric.IterationRecord{{Prev: 1, Next: 1.5}, {Prev: 1.5, Next: 1.25}}
	got := Deltas(recs)
	if got[0] != 0.5 || got[1] != 0.25 {
		t.Errorf("unexpected deltas %v", got)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestReplayNavigation(t *testing.T) {
	res, err := rootfind.Secant(sqrt2, 1, 2, 1e-4, 20)
	if err != nil {
		t.Fatal(err)
	}
	var m tea.Model = NewReplay(NewRootScene("secant", sqrt2, res), ThemeChalk, time.Millisecond)
	steps := res.Iterations

	m, _ = m.Update(key("right"))
	m, _ = m.Update(key("right"))
	r := m.(Replay)
	if r.Step() != 2 || r.Playing() {
		t.Errorf("expected paused at 2, got %d playing=%v", r.Step(), r.Playing())
	}

	m, _ = m.Update(key("left"))
	if m.(Replay).Step() != 1 {
		t.Errorf("expected step 1, got %d", m.(Replay).Step())
	}

	m, _ = m.Update(key("G"))
	if m.(Replay).Step() != steps {
		t.Errorf("expected last step %d, got %d", steps, m.(Replay).Step())
	}
	m, _ = m.Update(key("right"))
	if m.(Replay).Step() != steps {
		t.Error("stepping past the end should stay at the end")
	}

	if !strings.Contains(m.View(), "SECANT") {
		t.Error("view should carry the title")
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestReplayPlaysToEnd(t *testing.T) {
	res, err := quadrature.Simpson(numeric.Plain(math.Sin), 0, math.Pi, 6)
	if err != nil {
		t.Fatal(err)
	}
	var m tea.Model = NewReplay(NewQuadScene("simpson", numeric.Plain(math.Sin), res), ThemeRetro, time.Millisecond)

	for i := 0; i < 10; i++ {
		m, _ = m.Update(TickMsg(time.Now()))
	}
	r := m.(Replay)
	if r.Step() != 3 {
		t.Errorf("expected 3 parabolas, got step %d", r.Step())
	}
	if r.Playing() {
		t.Error("replay should stop at the end")
	}

	m, _ = m.Update(key(" "))
	if r := m.(Replay); !r.Playing() || r.Step() != 0 {
		t.Errorf("space at the end should restart, got step %d playing=%v", r.Step(), r.Playing())
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("retro").Name != "retro" {
		t.Error("expected retro theme")
	}
	if GetTheme("nope").Name != "chalk" {
		t.Error("unknown names fall back to chalk")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}

func TestProgressBar(t *testing.T) {
	if got := ProgressBar(1, 2, 4); got != "[==--]" {
		t.Errorf("unexpected bar %q", got)
	}
	if got := ProgressBar(0, 0, 2); got != "[--]" {
		t.Errorf("unexpected bar %q", got)
	}
}
