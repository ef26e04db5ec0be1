package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/games/blockbreaker"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

// Screen layout, in terminal rows and columns.
const (
	headerRows = 1 // elapsed counter
	footerRows = 2 // start button and help
	minCols    = 20
	minRows    = 8
)

// startLabel is the start button caption.
const startLabel = "[ ゲームスタート ]"

// nudgeSteps is how many arrow presses move the paddle across the surface.
const nudgeSteps = 40

// Model is the Bubble Tea model hosting one block breaker session at a time.
type Model struct {
	cfg     config.BlockBreakerConfig
	runtime core.RuntimeConfig
	store   *storage.Store
	logger  *log.Logger
	clock   func() time.Time

	session   *blockbreaker.Session
	canvas    *Canvas
	stopwatch stopwatch.Model
	keys      KeyMap
	help      help.Model

	reloads  int64
	notice   string // blocking notification; empty when none
	width    int
	height   int
	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithStore persists finished sessions. A nil store disables persistence.
func WithStore(store *storage.Store) ModelOption {
	return func(m *Model) {
		m.store = store
	}
}

// WithLogger sets the logger. The logger must not write to the terminal the
// program draws on.
func WithLogger(logger *log.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock replaces time.Now for session timing.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.clock = now
	}
}

// NewModel creates a model showing a fresh, not yet started session.
func NewModel(cfg config.BlockBreakerConfig, rt core.RuntimeConfig, opts ...ModelOption) Model {
	rt = rt.Normalize()
	m := Model{
		cfg:     cfg,
		runtime: rt,
		logger:  log.New(io.Discard),
		clock:   time.Now,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.session = blockbreaker.NewSession(cfg, m.seed(), blockbreaker.WithClock(m.clock))
	m.canvas = NewCanvas(cfg.Surface.Width, cfg.Surface.Height, 0, 0)
	m.stopwatch = stopwatch.NewWithInterval(time.Second)
	m.resize(rt.ScreenW, rt.ScreenH)
	return m
}

// seed returns the RNG seed for the current session. A fixed runtime seed
// gives a reproducible sequence of sessions across reloads.
func (m Model) seed() int64 {
	if m.runtime.Seed != 0 {
		return m.runtime.Seed + m.reloads
	}
	return m.clock().UnixNano()
}

// Init implements tea.Model. Nothing is scheduled until the start action.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	// Stopwatch ticks drive the one-second counter.
	before := m.stopwatch.Elapsed()
	var cmd tea.Cmd
	m.stopwatch, cmd = m.stopwatch.Update(msg)
	if m.stopwatch.Elapsed() > before {
		m.session.AdvanceCounter()
	}
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.notice == "" && key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.keys.Action(msg, m.notice != "") {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionDismiss:
		return m.reload()
	case core.ActionStart:
		return m.start()
	case core.ActionLeft:
		m.nudge(-1)
	case core.ActionRight:
		m.nudge(1)
	}
	return m, nil
}

// handleMouse treats motion over the playfield as pointer input and a left
// click on the start button as the start action.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.notice != "" {
		if press {
			return m.reload()
		}
		return m, nil
	}

	if press && m.startButton().Contains(msg.X, msg.Y) {
		return m.start()
	}

	row := msg.Y - headerRows
	if row >= 0 && row < m.canvas.Screen().Height() {
		m.session.MovePointer(m.canvas.LogicalX(msg.X))
	}
	return m, nil
}

// start begins the session and schedules the first frame callback.
func (m Model) start() (tea.Model, tea.Cmd) {
	res, ok := m.session.Start(m.canvas)
	if !ok {
		return m, nil
	}
	m.logger.Debug("session started", "blocks", m.session.Game().Remaining())

	if res.Phase.Ended() {
		cmd := m.finish(res)
		return m, cmd
	}
	return m, tea.Batch(frameCmd(m.runtime.TickRate), m.stopwatch.Start())
}

// handleFrame runs one frame and requests another only while the session
// continues.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if !m.session.Running() {
		return m, nil
	}

	res := m.session.Frame(m.canvas)
	if res.Phase.Ended() {
		cmd := m.finish(res)
		return m, cmd
	}
	return m, frameCmd(m.runtime.TickRate)
}

// finish raises the notification, records the session and stops the counter.
func (m *Model) finish(res blockbreaker.TickResult) tea.Cmd {
	m.notice = res.Notification
	m.saveRecord(res)
	m.logger.Info("session ended",
		"phase", res.Phase,
		"seconds", m.session.ElapsedSeconds(),
		"destroyed", m.session.Game().Destroyed(),
	)
	return m.stopwatch.Stop()
}

// saveRecord stores the finished session. Failures are logged only.
func (m *Model) saveRecord(res blockbreaker.TickResult) {
	if m.store == nil {
		return
	}

	rec := storage.Record{
		Outcome:         storage.OutcomeLose,
		Seconds:         m.session.ElapsedSeconds(),
		BlocksDestroyed: m.session.Game().Destroyed(),
	}
	if res.Phase == blockbreaker.PhaseWon {
		rec.Outcome = storage.OutcomeWin
		rec.Seconds = res.Seconds
	}

	if _, err := m.store.SaveSession(rec); err != nil {
		m.logger.Warn("could not save session", "error", err)
	}
}

// reload discards the ended session and shows a brand-new one.
func (m Model) reload() (tea.Model, tea.Cmd) {
	m.reloads++
	m.session = m.session.Reload(m.seed())
	m.notice = ""
	m.stopwatch = stopwatch.NewWithInterval(time.Second)
	m.canvas.Resize(m.canvas.Screen().Width(), m.canvas.Screen().Height())
	return m, nil
}

// nudge moves the virtual pointer one step from the paddle center.
func (m *Model) nudge(dir float64) {
	w := m.cfg.Surface.Width
	p := m.session.Game().Paddle()
	x := p.CenterX() + dir*w/nudgeSteps
	x = min(max(x, 1), w-1)
	m.session.MovePointer(x)
}

// resize lays out the playfield between the header and footer rows.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.canvas.Resize(width, core.Max(height-headerRows-footerRows, 0))
}

// startButton returns the clickable start button area in terminal cells.
func (m Model) startButton() core.Rect {
	w := lipgloss.Width(startLabel)
	return core.NewRect((m.width-w)/2, headerRows+m.canvas.Screen().Height(), w, 1)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width < minCols || m.height < minRows {
		return fmt.Sprintf("Terminal too small (%dx%d), need at least %dx%d", m.width, m.height, minCols, minRows)
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(m.noticeView())
	} else {
		if !m.session.Started() {
			m.session.Render(m.canvas)
		}
		b.WriteString(RenderScreen(m.canvas.Screen()))
	}

	b.WriteString("\n")
	b.WriteString(m.buttonView())
	b.WriteString("\n")
	b.WriteString(styleFor(core.ColorMuted).Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) headerView() string {
	left := fmt.Sprintf("経過時間: %d秒", m.session.Counter())

	var right string
	switch m.session.Phase() {
	case blockbreaker.PhaseNotStarted:
		right = "move the mouse to aim, press enter to start"
	case blockbreaker.PhaseRunning:
		right = fmt.Sprintf("blocks left: %d", m.session.Game().Remaining())
	default:
		right = m.session.Phase().String()
	}
	right = styleFor(core.ColorMuted).Render(right)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) buttonView() string {
	style := styleFor(core.ColorHighlight)
	if m.session.Started() {
		style = styleFor(core.ColorMuted)
	}
	return centerText(style.Render(startLabel), m.width)
}

// noticeView renders the blocking notification in place of the playfield.
func (m Model) noticeView() string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(1, 3).
		Align(lipgloss.Center).
		Render(m.notice + "\n\n" + styleFor(core.ColorMuted).Render("press any key to play again"))

	return lipgloss.Place(m.width, m.canvas.Screen().Height(), lipgloss.Center, lipgloss.Center, modal)
}

// Session returns the current session.
func (m Model) Session() *blockbreaker.Session {
	return m.session
}

// Notice returns the notification being shown, or "".
func (m Model) Notice() string {
	return m.notice
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program on the local terminal.
func Run(cfg config.BlockBreakerConfig, rt core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(cfg, rt, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer input without a pressed button
	)

	_, err := p.Run()
	return err
}
