package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tessera/internal/config"
	"github.com/five82/tessera/internal/grid"
	"github.com/five82/tessera/internal/layout"
	"github.com/five82/tessera/internal/prefs"
	"github.com/five82/tessera/internal/state"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Config     config.Config
	Classifier grid.Classifier
	Resolver   *grid.Resolver
	Prefs      prefs.Prefs
	PrefsPath  string
	PollTick   time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	store      *state.Store
	config     config.Config
	classifier grid.Classifier
	resolver   *grid.Resolver
	prefs      prefs.Prefs
	prefsPath  string
	pollTick   time.Duration

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	scroll   int

	// Breakpoint override; when pinned, width is ignored.
	pinned bool
	pin    grid.Breakpoint

	// Layout state
	def        layout.Definition
	generation uint64
	lastErr    error
	plan       layout.Plan
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultPollTick
	}

	classifier := opts.Classifier
	if classifier.Thresholds() == (grid.Thresholds{}) {
		classifier = grid.DefaultClassifier()
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = grid.DefaultResolver()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:        ctx,
		store:      opts.Store,
		config:     opts.Config,
		classifier: classifier,
		resolver:   resolver,
		prefs:      opts.Prefs,
		prefsPath:  prefsPath,
		pollTick:   pollTick,
		theme:      GetTheme(opts.Prefs.Theme),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		def:        layout.Builtin(),
	}
	m.pin, m.pinned = opts.Prefs.PinnedBreakpoint()
	if opts.Store != nil {
		m.applySnapshot(opts.Store.Snapshot())
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
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
		m.help.Width = msg.Width
		m.ready = true
		m.rebuild()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil
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
	return m.renderMain()
}

// Breakpoint returns the active tier: the pinned one, or the classification
// of the terminal width.
func (m Model) Breakpoint() grid.Breakpoint {
	if m.pinned {
		return m.pin
	}
	return m.classifier.Classify(m.config.ViewportWidth(m.width))
}

// Plan returns the currently placed grid.
func (m Model) Plan() layout.Plan {
	return m.plan
}

func (m *Model) rebuild() {
	m.plan = layout.Build(m.def, m.resolver, m.Breakpoint())
	m.clampScroll()
}

func (m *Model) applySnapshot(snap state.Snapshot) {
	m.lastErr = snap.LastError
	if !snap.HasLayout || snap.Generation == m.generation {
		return
	}
	m.def = snap.Layout
	m.generation = snap.Generation
	m.rebuild()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()

	case key.Matches(msg, m.keys.CyclePin):
		m.cyclePin()
		m.savePrefs()
		m.rebuild()

	case key.Matches(msg, m.keys.Unpin):
		if m.pinned {
			m.pinned = false
			m.prefs.Pin = ""
			m.savePrefs()
			m.rebuild()
		}

	case key.Matches(msg, m.keys.Up):
		m.scroll--
	case key.Matches(msg, m.keys.Down):
		m.scroll++
	case key.Matches(msg, m.keys.PageUp):
		m.scroll -= m.gridHeight()
	case key.Matches(msg, m.keys.PageDown):
		m.scroll += m.gridHeight()
	case key.Matches(msg, m.keys.Top):
		m.scroll = 0
	case key.Matches(msg, m.keys.Bottom):
		m.scroll = m.contentHeight()
	}

	m.clampScroll()
	return m, nil
}

// cyclePin steps auto -> mobile -> narrow -> mid -> full -> auto.
func (m *Model) cyclePin() {
	switch {
	case !m.pinned:
		m.pinned, m.pin = true, grid.Mobile
	case m.pin == grid.Full:
		m.pinned = false
	default:
		m.pin++
	}
	m.prefs.Pin = ""
	if m.pinned {
		m.prefs.Pin = m.pin.String()
	}
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return m, tea.Batch(cmds...)
}

// gridHeight is the number of terminal lines available to panels.
func (m Model) gridHeight() int {
	return max(m.height-headerLines-footerLines, 0)
}

func (m Model) rowHeight() int {
	return max(m.config.RowHeight, minRowHeight)
}

func (m Model) contentHeight() int {
	return m.plan.Rows * m.rowHeight()
}

func (m *Model) clampScroll() {
	limit := max(m.contentHeight()-m.gridHeight(), 0)
	m.scroll = min(max(m.scroll, 0), limit)
}

func (m Model) renderMain() string {
	styles := m.theme.Styles()

	cv := paintPlan(m.plan, m.def, m.theme, m.width, m.rowHeight())
	lines := cv.lines(m.scroll, m.gridHeight())
	blank := styles.Background.Width(m.width).Render("")
	for len(lines) < m.gridHeight() {
		lines = append(lines, blank)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(styles),
		strings.Join(lines, "\n"),
		m.renderFooter(styles),
	)
}

func (m Model) renderHeader(styles Styles) string {
	bp := m.Breakpoint()

	title := "Tessera"
	if t := strings.TrimSpace(m.def.Title); t != "" && t != title {
		title += " · " + t
	}
	left := styles.AccentText.Bold(true).Render(title)

	info := fmt.Sprintf(" %.0fpx · %d cols", m.config.ViewportWidth(m.width), m.plan.Columns)
	if m.pinned {
		info += " · pinned"
	}
	right := styles.TierStyle(bp).Render(bp.Label()) + styles.MutedText.Render(info)

	gap := max(m.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderFooter(styles Styles) string {
	content := m.help.View(m.keys)
	if m.lastErr != nil {
		content = styles.DangerText.Render("reload failed: "+m.lastErr.Error()) + "  " + content
	}
	return styles.Footer.Width(m.width).MaxHeight(1).Render(content)
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
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
