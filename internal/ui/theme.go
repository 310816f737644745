package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a named palette. Fields are hex colors grouped by where they show
// up in the month browser.
type Theme struct {
	Name string

	Background string // behind overlays
	Bar        string // header and command bar

	// Text
	Text  string
	Muted string // weekday headers, labels
	Faint string
	Title string // month title, today's long date
	Key   string // key hints
	Lunar string
	Error string

	// Grid
	TodayBg   string
	TodayText string
	Weekend   string // Friday column

	Frame string // overlay borders
}

// Styles contains pre-built Lipgloss styles for a theme.
type Styles struct {
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Faint   lipgloss.Style
	Title   lipgloss.Style
	Key     lipgloss.Style
	Lunar   lipgloss.Style
	Error   lipgloss.Style
	Bar     lipgloss.Style
	Today   lipgloss.Style
	Weekend lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Text:    fg(t.Text),
		Muted:   fg(t.Muted),
		Faint:   fg(t.Faint),
		Title:   fg(t.Title).Bold(true),
		Key:     fg(t.Key).Bold(true),
		Lunar:   fg(t.Lunar),
		Error:   fg(t.Error).Bold(true),
		Bar:     fg(t.Text).Background(lipgloss.Color(t.Bar)).Padding(0, 1),
		Today:   fg(t.TodayText).Background(lipgloss.Color(t.TodayBg)).Bold(true),
		Weekend: fg(t.Weekend),
	}
}

// OnBar returns the styles with the bar color as background, so segments
// joined on the header line share an unbroken background. Today keeps its own.
func (t Theme) OnBar() Styles {
	s := t.Styles()
	bg := lipgloss.Color(t.Bar)
	return Styles{
		Text:    s.Text.Background(bg),
		Muted:   s.Muted.Background(bg),
		Faint:   s.Faint.Background(bg),
		Title:   s.Title.Background(bg),
		Key:     s.Key.Background(bg),
		Lunar:   s.Lunar.Background(bg),
		Error:   s.Error.Background(bg),
		Bar:     s.Bar,
		Today:   s.Today,
		Weekend: s.Weekend.Background(bg),
	}
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

var themes = map[string]Theme{
	// https://github.com/EdenEast/nightfox.nvim
	"Nightfox": {
		Name:       "Nightfox",
		Background: "#131a24",
		Bar:        "#192330",
		Text:       "#cdcecf",
		Muted:      "#738091",
		Faint:      "#71839b",
		Title:      "#719cd6",
		Key:        "#dbc074",
		Lunar:      "#63cdcf",
		Error:      "#c94f6d",
		TodayBg:    "#719cd6",
		TodayText:  "#131a24",
		Weekend:    "#c94f6d",
		Frame:      "#719cd6",
	},
	// https://github.com/rebelot/kanagawa.nvim
	"Kanagawa": {
		Name:       "Kanagawa",
		Background: "#16161D",
		Bar:        "#1F1F28",
		Text:       "#DCD7BA",
		Muted:      "#727169",
		Faint:      "#54546D",
		Title:      "#7E9CD8",
		Key:        "#E6C384",
		Lunar:      "#7FB4CA",
		Error:      "#E46876",
		TodayBg:    "#7E9CD8",
		TodayText:  "#16161D",
		Weekend:    "#E46876",
		Frame:      "#7E9CD8",
	},
	// Tailwind slate and sky.
	"Slate": {
		Name:       "Slate",
		Background: "#020617",
		Bar:        "#0f172a",
		Text:       "#f1f5f9",
		Muted:      "#94a3b8",
		Faint:      "#64748b",
		Title:      "#38bdf8",
		Key:        "#f59e0b",
		Lunar:      "#06b6d4",
		Error:      "#ef4444",
		TodayBg:    "#0284c7",
		TodayText:  "#f8fafc",
		Weekend:    "#f87171",
		Frame:      "#38bdf8",
	},
}

// GetTheme returns a theme by name, falling back to the first one.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[themeOrder[0]]
}

// NextTheme returns the theme after current in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns the available theme names in cycle order.
func ThemeNames() []string {
	return themeOrder
}
