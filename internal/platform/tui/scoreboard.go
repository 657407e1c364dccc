package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"snake-engine/internal/leaderboard"
	"snake-engine/internal/storage"
)

// historyLimit caps the rows loaded into the history table per tab.
const historyLimit = 100

// History tabs: per-mode top runs plus a recency view.
var scoreboardTabs = []string{"classic", "obstacles", "recent"}

// ScoreboardKeyMap defines the key bindings for the scores screen.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the five-slot leaderboard alongside the full run
// history from the SQLite store. It is embedded in the session model and
// reports back/quit intents instead of quitting the program itself.
type ScoreboardModel struct {
	board    *leaderboard.Board
	store    *storage.Store
	tab      int
	history  []storage.ScoreEntry
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	back     bool
	quitting bool
}

// NewScoreboardModel creates a scores screen over the given board and store.
// The store may be nil; the history table then stays empty.
func NewScoreboardModel(board *leaderboard.Board, store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		board:  board,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadHistory()

	return m
}

// createTable creates the history table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Combo", Width: 6},
		{Title: "Date", Width: 14},
	}

	height := m.height - leaderboard.Size - 10
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadHistory fills the table for the current tab.
func (m *ScoreboardModel) loadHistory() {
	m.history = nil
	if m.store != nil {
		var err error
		switch tab := scoreboardTabs[m.tab]; tab {
		case "recent":
			m.history, err = m.store.RecentRuns(historyLimit)
		default:
			m.history, err = m.store.TopRuns(tab, historyLimit)
		}
		if err != nil {
			m.history = nil
		}
	}

	rows := make([]table.Row, len(m.history))
	for i, e := range m.history {
		player := e.Player
		if player == "" {
			player = "anonymous"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("x%d", e.MaxCombo),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Update handles messages for the scores screen.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(scoreboardTabs)
			m.loadHistory()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab--
			if m.tab < 0 {
				m.tab = len(scoreboardTabs) - 1
			}
			m.loadHistory()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.loadHistory()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scores screen.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderHistory()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderBoard renders the five-slot local leaderboard.
func (m ScoreboardModel) renderBoard() string {
	var b strings.Builder

	rankStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	for i := 0; i < leaderboard.Size; i++ {
		var line string
		if m.board != nil && i < m.board.Len() {
			e := m.board.Entry(i)
			line = fmt.Sprintf("%d. %-15s %6d  x%d", i+1, e.Name, e.Score, e.MaxCombo)
			if i == 0 {
				line = rankStyle.Render(line)
			}
		} else {
			line = dimStyle.Render(fmt.Sprintf("%d. %-15s %6s", i+1, "---", "-"))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	return b.String()
}

// renderTabs renders the history view selector.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(scoreboardTabs))
	for i, name := range scoreboardTabs {
		if i == m.tab {
			tabs[i] = activeStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}

	return centerText(strings.Join(tabs, " "), m.width)
}

// renderHistory renders the table or an empty message.
func (m ScoreboardModel) renderHistory() string {
	if len(m.history) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay a round to set a score!")
	}

	return m.table.View()
}

// WantsBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) WantsBack() bool {
	return m.back
}

// IsQuitting reports whether the user asked to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// standaloneScores wraps the scoreboard for the scores subcommand, where
// back and quit both end the program.
type standaloneScores struct {
	inner ScoreboardModel
}

func (m standaloneScores) Init() tea.Cmd {
	return nil
}

func (m standaloneScores) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inner, cmd = m.inner.Update(msg)
	if m.inner.WantsBack() || m.inner.IsQuitting() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m standaloneScores) View() string {
	if m.inner.WantsBack() || m.inner.IsQuitting() {
		return ""
	}
	return m.inner.View()
}

// RunScoreboard shows the scores screen as its own program.
func RunScoreboard(board *leaderboard.Board, store *storage.Store, width, height int) error {
	model := standaloneScores{inner: NewScoreboardModel(board, store, width, height)}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
