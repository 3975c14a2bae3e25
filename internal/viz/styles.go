package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Canvas  lipgloss.Style
	Panel   lipgloss.Style
	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Good    lipgloss.Style
	Warning lipgloss.Style
	Bad     lipgloss.Style
	Graph   lipgloss.Style
	Help    lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Canvas: lipgloss.NewStyle().Foreground(t.Curve).Padding(1, 2),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(1, 2).
			Width(44),
		Header:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1),
		Label:   lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		Value:   lipgloss.NewStyle().Foreground(t.Text),
		Good:    lipgloss.NewStyle().Foreground(t.Good).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		Bad:     lipgloss.NewStyle().Foreground(t.Bad).Bold(true),
		Graph:   lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 0),
		Help:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
	}
}

// Row renders a label/value line.
func (s Styles) Row(label string, value any) string {
	return s.Label.Render(label) + s.Value.Render(fmt.Sprint(value)) + "\n"
}

// StatusText colors a run status.
func (s Styles) StatusText(status string) string {
	switch status {
	case "converged", "ok":
		return s.Good.Render(status)
	case "stalled", "max_iterations":
		return s.Warning.Render(status)
	}
	return s.Bad.Render(status)
}

// ProgressBar renders done/total as a bar of the given width.
func ProgressBar(done, total, width int) string {
	filled := 0
	if total > 0 {
		filled = width * done / total
	}
	filled = max(0, min(filled, width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// Block renders a titled report panel, used by the run command.
func (s Styles) Block(title string, rows [][2]string) string {
	var b strings.Builder
	b.WriteString(s.Header.Render(title) + "\n")
	for _, r := range rows {
		b.WriteString(s.Row(r[0], r[1]))
	}
	return s.Panel.Render(b.String())
}
