package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/taqvim/internal/age"
	"github.com/five82/taqvim/internal/calendar"
	"github.com/five82/taqvim/internal/locale"
	"github.com/five82/taqvim/internal/navigator"
	"github.com/five82/taqvim/internal/prefs"
	"github.com/five82/taqvim/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Localizer *locale.Localizer
	Logger    *zap.Logger
	Clock     age.Clock
	Prefs     prefs.Prefs
	PrefsPath string

	// Month to open on. Zero falls back to Prefs, then today.
	Year  int
	Month int

	Refresh time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	loc       *locale.Localizer
	logger    *zap.Logger
	clock     age.Clock
	prefs     prefs.Prefs
	prefsPath string
	refresh   time.Duration
	keys      keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Calendar state
	nav      *navigator.Navigator
	snapshot state.Snapshot

	// Overlays
	showHelp bool
	modal    Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = DefaultUIInterval
	}

	clock := opts.Clock
	if clock == nil {
		clock = age.RealClock{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	loc := opts.Localizer
	if loc == nil {
		loc = locale.MustNew(locale.DefaultLanguage)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		loc:       loc,
		logger:    logger,
		clock:     clock,
		prefs:     opts.Prefs,
		prefsPath: prefsPath,
		refresh:   refresh,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(opts.Prefs.Theme),
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	m.nav = m.startNavigator(opts.Year, opts.Month)
	return m
}

// startNavigator opens on the requested month, else the last viewed month,
// else today's month.
func (m Model) startNavigator(year, month int) *navigator.Navigator {
	candidates := [][2]int{{year, month}}
	if m.prefs.HasLastMonth() {
		candidates = append(candidates, [2]int{m.prefs.LastYear, m.prefs.LastMonth})
	}
	today := m.today().Shamsi
	candidates = append(candidates, [2]int{today.Year, today.Month})

	for _, c := range candidates {
		if c[0] == 0 && c[1] == 0 {
			continue
		}
		nav, err := navigator.New(c[0], c[1])
		if err == nil {
			return nav
		}
		m.logger.Debug("skipping start month", zap.Int("year", c[0]), zap.Int("month", c[1]), zap.Error(err))
	}

	// Today is outside the supported window; open on its nearest edge.
	edge := calendar.MaxShamsiYear
	if today.Year < calendar.MinShamsiYear {
		edge = calendar.MinShamsiYear
	}
	nav, _ := navigator.New(edge, 1)
	return nav
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.refresh),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case jumpMsg:
		if _, err := m.nav.Jump(msg.year, msg.month); err != nil {
			m.logger.Warn("jump rejected", zap.Int("year", msg.year), zap.Int("month", msg.month), zap.Error(err))
		}
		return m, nil
	}

	// Let an open prompt see non-key messages such as cursor blinks.
	if m.modal != nil {
		modal, cmd, _ := m.modal.Update(msg, m.keys)
		m.modal = modal
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, done := m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if ev, ok := eventFor(m.keys, msg); ok {
		m.nav.Dispatch(ev)
		if ev == navigator.Close {
			m.savePrefs()
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Jump):
		m.modal = newJumpModal(m.loc, m.nav.State())
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Today):
		today := m.today().Shamsi
		if _, err := m.nav.Jump(today.Year, today.Month); err != nil {
			m.logger.Warn("today outside supported window", zap.Stringer("today", today), zap.Error(err))
		}

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()

	case key.Matches(msg, m.keys.Language):
		next := "fa"
		if m.loc.Language() == "fa" {
			next = "en"
		}
		loc, err := locale.New(next)
		if err != nil {
			m.logger.Warn("switch language", zap.String("language", next), zap.Error(err))
			return m, nil
		}
		m.loc = loc
		m.prefs.Language = loc.Language()
		m.savePrefs()
	}

	return m, nil
}

// handleTick re-reads today from the store and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	cmds = append(cmds, tickCmd(m.refresh))
	return m, tea.Batch(cmds...)
}

// today is the poller's day when available, else the clock's.
func (m Model) today() calendar.Triple {
	if m.snapshot.HasToday {
		return m.snapshot.Today
	}
	return calendar.FromTime(m.clock.Now())
}

// savePrefs records the theme and the month under the cursor.
func (m *Model) savePrefs() {
	st := m.nav.State()
	m.prefs.Theme = m.theme.Name
	m.prefs.LastYear = st.Year
	m.prefs.LastMonth = st.Month
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n\n")
	b.WriteString(m.renderMonth())

	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		// Cancelled from outside, e.g. SIGTERM.
		return nil
	}
	return err
}
