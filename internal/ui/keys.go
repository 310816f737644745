package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/taqvim/internal/navigator"
)

// keyMap defines all keyboard bindings of the month browser.
type keyMap struct {
	// Navigation
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	Jump      key.Binding
	Today     key.Binding

	// Global
	CycleTheme key.Binding
	Language   key.Binding
	Help       key.Binding
	Quit       key.Binding

	// Prompt
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		PrevMonth: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next month"),
		),
		PrevYear: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Previous year"),
		),
		NextYear: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Next year"),
		),
		Jump: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Go to month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t", "home"),
			key.WithHelp("t", "This month"),
		),

		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Language: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Switch language"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "Quit"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

// ShortHelp returns key bindings for the command bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear, k.Jump, k.Today, k.Help, k.Quit}
}

// eventFor maps a key press to the navigator event it drives.
func eventFor(k keyMap, msg tea.KeyMsg) (navigator.Event, bool) {
	switch {
	case key.Matches(msg, k.PrevMonth):
		return navigator.PreviousMonth, true
	case key.Matches(msg, k.NextMonth):
		return navigator.NextMonth, true
	case key.Matches(msg, k.PrevYear):
		return navigator.PreviousYear, true
	case key.Matches(msg, k.NextYear):
		return navigator.NextYear, true
	case key.Matches(msg, k.Quit):
		return navigator.Close, true
	default:
		return 0, false
	}
}
