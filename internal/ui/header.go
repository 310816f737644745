package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/taqvim/internal/locale"
)

// renderHeader renders the title and today's date in the three calendars.
func (m Model) renderHeader() string {
	styles := m.theme.OnBar()
	bg := NewBgStyle(m.theme.Bar)
	compact := m.width < LayoutCompactWidth

	today := m.today()
	parts := []string{
		bg.Render(m.loc.Text(locale.MsgAppTitle), styles.Key),
		bg.Render(m.loc.Text(locale.MsgLabelToday)+":", styles.Muted),
		bg.Render(m.loc.LongDate(today.Shamsi), styles.Title),
		bg.Render(m.loc.Date(today.Gregorian), styles.Text),
	}
	if !compact {
		parts = append(parts,
			bg.Render(m.loc.Date(today.Lunar), styles.Lunar),
			bg.Render(m.loc.Text(locale.MsgLabelTheme)+": "+m.theme.Name, styles.Faint),
		)
	}

	return styles.Bar.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar lists the short key bindings.
func (m Model) renderCommandBar() string {
	styles := m.theme.OnBar()
	bg := NewBgStyle(m.theme.Bar)

	bindings := m.keys.ShortHelp()
	if m.width < LayoutCompactWidth {
		bindings = []key.Binding{m.keys.Jump, m.keys.Help, m.keys.Quit}
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, bg.Render(h.Key, styles.Key)+bg.Spaces(1)+bg.Render(strings.ToLower(h.Desc), styles.Muted))
	}
	return styles.Bar.Width(m.width).Render(bg.Join(parts, "  "))
}
