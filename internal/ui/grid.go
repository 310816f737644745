package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/taqvim/internal/calendar"
	"github.com/five82/taqvim/internal/locale"
)

// fridayColumn is the weekend column of a Saturday-first week.
const fridayColumn = 6

// renderMonth renders the month under the cursor: title, weekday headers,
// day grid and, when there is room, the Gregorian and Lunar span.
func (m Model) renderMonth() string {
	styles := m.theme.Styles()
	grid := m.nav.Grid()

	title := m.loc.MonthName(calendar.Shamsi, grid.Month) + " " + m.loc.Digits(strconv.Itoa(grid.Year))

	var rows []string
	rows = append(rows, styles.Title.Width(GridWidth).Align(lipgloss.Center).Render(title))
	rows = append(rows, m.renderWeekdayRow(styles))

	todayDay := m.todayInGrid(grid)
	for _, week := range grid.Weeks {
		rows = append(rows, m.renderWeek(week, todayDay, styles))
	}

	if m.width >= LayoutSpanWidth {
		rows = append(rows, "", m.renderSpan(grid, styles))
	}

	panel := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel)
}

func (m Model) renderWeekdayRow(styles Styles) string {
	headers := m.loc.WeekdayHeaders()
	cells := make([]string, 7)
	for col, h := range headers {
		style := styles.Muted
		if col == fridayColumn {
			style = styles.Weekend
		}
		cells[col] = style.Width(CellWidth).Align(lipgloss.Right).Render(h)
	}
	return m.joinCells(cells)
}

func (m Model) renderWeek(week [7]int, todayDay int, styles Styles) string {
	cells := make([]string, 7)
	for col, day := range week {
		if day == 0 {
			cells[col] = strings.Repeat(" ", CellWidth)
			continue
		}
		label := m.loc.Digits(strconv.Itoa(day))
		switch {
		case day == todayDay:
			// Pad outside the highlight so only the number is lit.
			cells[col] = strings.Repeat(" ", CellWidth-lipgloss.Width(label)-2) + styles.Today.Render(" "+label+" ")
		case col == fridayColumn:
			cells[col] = styles.Weekend.Width(CellWidth).Align(lipgloss.Right).Render(label)
		default:
			cells[col] = styles.Text.Width(CellWidth).Align(lipgloss.Right).Render(label)
		}
	}
	return m.joinCells(cells)
}

// joinCells lays cells out Saturday first, mirrored for right-to-left languages.
func (m Model) joinCells(cells []string) string {
	if m.loc.RTL() {
		for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
			cells[i], cells[j] = cells[j], cells[i]
		}
	}
	return strings.Join(cells, "")
}

// todayInGrid returns today's day number if today falls in grid, else 0.
func (m Model) todayInGrid(grid calendar.MonthGrid) int {
	today := m.today().Shamsi
	if today.Year == grid.Year && today.Month == grid.Month {
		return today.Day
	}
	return 0
}

// renderSpan shows the Gregorian and Lunar dates of the month's first and
// last day.
func (m Model) renderSpan(grid calendar.MonthGrid, styles Styles) string {
	first, err := calendar.Expand(calendar.NewDate(calendar.Shamsi, grid.Year, grid.Month, 1))
	if err != nil {
		return ""
	}
	last, err := calendar.Expand(calendar.NewDate(calendar.Shamsi, grid.Year, grid.Month, grid.Days))
	if err != nil {
		return ""
	}

	line := func(label string, from, to calendar.Date) string {
		return styles.Muted.Render(label+": ") +
			styles.Text.Render(m.loc.Date(from)+" - "+m.loc.Date(to))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		line(m.loc.Text(locale.MsgLabelGregorian), first.Gregorian, last.Gregorian),
		line(m.loc.Text(locale.MsgLabelLunar), first.Lunar, last.Lunar),
	)
}

// RenderMonth renders the month opts opens on without starting a program,
// for output that is not a terminal.
func RenderMonth(opts Options, width int) string {
	m := New(opts)
	m.width = width
	return m.renderMonth()
}
