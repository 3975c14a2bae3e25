package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the palette used by the replay view and the CLI panels.
type Theme struct {
	Name    string
	Curve   lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Good    lipgloss.Color
	Warning lipgloss.Color
	Bad     lipgloss.Color
}

var (
	ThemeChalk = Theme{
		Name:    "chalk",
		Curve:   lipgloss.Color("#e0e0e0"),
		Accent:  lipgloss.Color("#00ccff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#777788"),
		Good:    lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffaa00"),
		Bad:     lipgloss.Color("#ff4444"),
	}

	ThemeRetro = Theme{
		Name:    "retro",
		Curve:   lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Good:    lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Bad:     lipgloss.Color("#ff0000"),
	}

	ThemePaper = Theme{
		Name:    "paper",
		Curve:   lipgloss.Color("#222222"),
		Accent:  lipgloss.Color("#0055aa"),
		Text:    lipgloss.Color("#111111"),
		Muted:   lipgloss.Color("#888888"),
		Good:    lipgloss.Color("#008800"),
		Warning: lipgloss.Color("#aa6600"),
		Bad:     lipgloss.Color("#cc0000"),
	}

	Themes = []Theme{ThemeChalk, ThemeRetro, ThemePaper}
)

// GetTheme returns the named theme, or chalk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeChalk
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
