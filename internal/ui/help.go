package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/taqvim/internal/locale"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: m.loc.Text(locale.MsgLabelShamsi),
			items: []helpItem{
				{m.keys.PrevMonth.Help().Key + " " + m.keys.NextMonth.Help().Key, m.loc.Text(locale.MsgHelpMonth)},
				{m.keys.PrevYear.Help().Key + " " + m.keys.NextYear.Help().Key, m.loc.Text(locale.MsgHelpYear)},
				{m.keys.Jump.Help().Key, m.loc.Text(locale.MsgHelpJump)},
				{m.keys.Today.Help().Key, m.loc.Text(locale.MsgHelpToday)},
			},
		},
		{
			title: m.loc.Text(locale.MsgLabelTheme) + " / " + m.loc.Text(locale.MsgLabelLanguage),
			items: []helpItem{
				{m.keys.CycleTheme.Help().Key, m.loc.Text(locale.MsgHelpTheme)},
				{m.keys.Language.Help().Key, m.loc.Text(locale.MsgHelpLanguage)},
				{m.keys.Help.Help().Key, m.loc.Text(locale.MsgHelpHelp)},
				{m.keys.Quit.Help().Key, m.loc.Text(locale.MsgHelpQuit)},
			},
		},
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render(m.loc.Text(locale.MsgHelpTitle)))
	b.WriteString("\n")
	b.WriteString(styles.Faint.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := styles.Key.Width(12)

	for i, section := range sections {
		b.WriteString(styles.Title.Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Frame)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
