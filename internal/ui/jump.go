package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/taqvim/internal/calendar"
	"github.com/five82/taqvim/internal/locale"
	"github.com/five82/taqvim/internal/navigator"
)

var errJumpSyntax = errors.New("expected year/month")

// jumpMsg asks the model to move the navigator.
type jumpMsg struct {
	year, month int
}

// jumpModal prompts for a year and month.
type jumpModal struct {
	input textinput.Model
	loc   *locale.Localizer
	err   string
}

func newJumpModal(loc *locale.Localizer, current navigator.State) *jumpModal {
	ti := textinput.New()
	ti.Prompt = loc.Text(locale.MsgJumpPrompt)
	ti.Placeholder = loc.Digits(fmt.Sprintf("%d/%d", current.Year, current.Month))
	ti.CharLimit = 16
	ti.Focus()
	return &jumpModal{input: ti, loc: loc}
}

// Update implements Modal.
func (j *jumpModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Cancel):
			return j, nil, true
		case key.Matches(k, keys.Confirm):
			year, month, err := parseJump(j.input.Value())
			if err != nil {
				j.err = j.loc.Format(locale.MsgJumpInvalid, map[string]any{
					"Min": j.loc.Digits(strconv.Itoa(calendar.MinShamsiYear)),
					"Max": j.loc.Digits(strconv.Itoa(calendar.MaxShamsiYear)),
				})
				return j, nil, false
			}
			return j, func() tea.Msg { return jumpMsg{year: year, month: month} }, true
		}
	}

	var cmd tea.Cmd
	j.input, cmd = j.input.Update(msg)
	return j, cmd, false
}

// View implements Modal.
func (j *jumpModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(j.input.View())
	if j.err != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.Error.Render(j.err))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Frame)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// parseJump reads "1402/7", "1402-07" or "1402 7", in ASCII or Persian digits,
// and checks the result against the supported window.
func parseJump(value string) (int, int, error) {
	value = strings.TrimSpace(locale.ASCIIDigits(value))
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == '/' || r == '-' || r == ' ' || r == '.'
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", errJumpSyntax, value)
	}
	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errJumpSyntax, value)
	}
	month, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errJumpSyntax, value)
	}
	if err := calendar.Validate(calendar.NewDate(calendar.Shamsi, year, month, 1)); err != nil {
		return 0, 0, err
	}
	return year, month, nil
}
