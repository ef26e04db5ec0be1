package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockbreaker/internal/storage"
)

// Records layout constants
const (
	maxRecords = 100 // Max rows to load per view
)

// RecordsView selects which list the records screen shows.
type RecordsView int

const (
	ViewBestClears RecordsView = iota
	ViewRecent
)

// Title returns the tab title for the view.
func (v RecordsView) Title() string {
	if v == ViewRecent {
		return "Recent sessions"
	}
	return "Best clear times"
}

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Switch, k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right"),
			key.WithHelp("tab", "switch list"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel is the Bubble Tea model for the records screen.
type RecordsModel struct {
	store    *storage.Store
	view     RecordsView
	records  []storage.Record
	stats    storage.Stats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     RecordsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRecordsModel creates a records model showing the best clear times.
func NewRecordsModel(store *storage.Store, width, height int) RecordsModel {
	m := RecordsModel{
		store:  store,
		view:   ViewBestClears,
		keys:   DefaultRecordsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with columns for the current view.
func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Result", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Blocks", Width: 8},
		{Title: "Date", Width: 14},
	}
	if m.view == ViewRecent {
		columns[0].Title = "#"
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, stats, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(accentColor).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads records and stats for the current view.
func (m *RecordsModel) load() {
	m.records = nil
	m.stats = storage.Stats{}
	m.loadErr = nil

	if m.store != nil {
		var err error
		if m.view == ViewRecent {
			m.records, err = m.store.RecentSessions(maxRecords)
		} else {
			m.records, err = m.store.BestClears(maxRecords)
		}
		if err == nil {
			m.stats, err = m.store.Stats()
		}
		m.loadErr = err
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded records.
func (m *RecordsModel) updateTableRows() {
	m.table.SetRows(RecordRows(m.records))
	m.table.GotoTop()
}

// RecordRows formats records as table rows.
func RecordRows(records []storage.Record) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			string(r.Outcome),
			fmt.Sprintf("%ds", r.Seconds),
			fmt.Sprintf("%d", r.BlocksDestroyed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			m.view = (m.view + 1) % 2
			m.table = m.createTable()
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("BLOCK BREAKER RECORDS - "+m.view.Title(), m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes all stored sessions.
func (m RecordsModel) statsLine() string {
	return FormatStats(m.stats)
}

// FormatStats renders aggregate statistics on one line.
func FormatStats(st storage.Stats) string {
	best := "-"
	if st.Wins > 0 {
		best = fmt.Sprintf("%ds", st.BestClear)
	}
	return fmt.Sprintf("sessions %d  wins %d  losses %d  best %s  blocks %d",
		st.Sessions, st.Wins, st.Losses, best, st.TotalBlocks)
}

// renderTableContent renders the table or an empty message.
func (m RecordsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("No records database available.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load records:\n" + m.loadErr.Error())
	case len(m.records) == 0 && m.view == ViewBestClears:
		return emptyStyle.Render("No clears recorded yet.\nBreak every block to set a time!")
	case len(m.records) == 0:
		return emptyStyle.Render("No sessions recorded yet.")
	}

	return m.table.View()
}

// RunRecords runs the records screen.
func RunRecords(store *storage.Store, width, height int) error {
	model := NewRecordsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
