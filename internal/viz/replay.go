package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	defaultCols = 60
	defaultRows = 20
)

type TickMsg time.Time

// Replay steps through a finished run one record or segment at a time.
// It only navigates; the run itself is never recomputed.
type Replay struct {
	scene    *Scene
	styles   Styles
	step     int
	playing  bool
	interval time.Duration
	cols     int
	rows     int
	summary  [][2]string
}

func NewReplay(scene *Scene, theme Theme, interval time.Duration) Replay {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return Replay{
		scene:    scene,
		styles:   NewStyles(theme),
		playing:  true,
		interval: interval,
		cols:     defaultCols,
		rows:     defaultRows,
	}
}

// WithSummary adds fixed label/value rows (result, status) to the panel.
func (m Replay) WithSummary(rows [][2]string) Replay {
	m.summary = rows
	return m
}

func (m Replay) Step() int     { return m.step }
func (m Replay) Playing() bool { return m.playing }

func (m Replay) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Replay) Init() tea.Cmd { return m.tick() }

func (m Replay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	last := m.scene.Steps()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			if m.step >= last {
				m.step = 0
			}
			m.playing = !m.playing
		case "right", "l", "n":
			m.playing = false
			m.step = min(m.step+1, last)
		case "left", "h", "p":
			m.playing = false
			m.step = max(m.step-1, 0)
		case "home", "g":
			m.playing = false
			m.step = 0
		case "end", "G":
			m.playing = false
			m.step = last
		}
	case tea.WindowSizeMsg:
		m.cols = max(20, msg.Width-52)
		m.rows = max(8, msg.Height-6)
	case TickMsg:
		if m.playing {
			if m.step < last {
				m.step++
			} else {
				m.playing = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Replay) View() string {
	st := m.styles
	canvas := st.Canvas.Render(m.scene.Render(m.cols, m.rows, m.step))

	var s strings.Builder
	s.WriteString(st.Header.Render(strings.ToUpper(m.scene.Title)) + "\n")

	status := st.Warning.Render("PAUSED")
	if m.playing {
		status = st.Good.Render("PLAYING")
	}
	s.WriteString(status + "  " + ProgressBar(m.step, m.scene.Steps(), 16) +
		fmt.Sprintf(" %d/%d\n\n", m.step, m.scene.Steps()))
	s.WriteString(st.Value.Render(m.scene.Caption(m.step)) + "\n\n")

	for _, r := range m.summary {
		s.WriteString(st.Row(r[0], r[1]))
	}

	if m.scene.Records != nil && m.step > 1 {
		chart := asciigraph.Plot(logDeltas(m.scene, m.step),
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("log10 |dx|"))
		s.WriteString(st.Graph.Render(chart) + "\n")
	}

	s.WriteString(st.Help.Render("SPACE play/pause  <- -> step  g/G ends  q quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, st.Panel.Render(s.String()))
}

func logDeltas(sc *Scene, step int) []float64 {
	ds := Deltas(sc.Records[:step])
	for i, d := range ds {
		ds[i] = math.Log10(math.Max(d, 1e-16))
	}
	return ds
}
