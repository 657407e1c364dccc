package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"snake-engine/internal/core"
	"snake-engine/internal/engine"
	"snake-engine/internal/leaderboard"
	"snake-engine/internal/storage"
)

// menu entries, in cursor order
var menuItems = []struct {
	key   string
	label string
}{
	{"1", "Classic"},
	{"2", "Obstacle Course"},
	{"h", "High Scores"},
	{"q", "Quit"},
}

// SessionModel drives one player session across the engine scenes:
// menu, game, game over with name entry, and the scores screen.
type SessionModel struct {
	eng       *engine.Engine
	screen    *core.Screen
	board     *leaderboard.Board
	boardPath string
	store     *storage.Store
	cfg       core.RuntimeConfig
	username  string

	keys       KeyMap
	help       help.Model
	nameInput  textinput.Model
	scores     ScoreboardModel
	menuCursor int

	lastFrame time.Time
	saved     bool
	quitting  bool
}

// NewSessionModel creates a session. The store may be nil (history
// disabled); the board may be nil (an empty one is used).
func NewSessionModel(eng *engine.Engine, board *leaderboard.Board, boardPath string,
	store *storage.Store, cfg core.RuntimeConfig, username string) SessionModel {
	if board == nil {
		board = &leaderboard.Board{}
	}

	input := textinput.New()
	input.CharLimit = leaderboard.NameLen
	input.SetValue(username)
	input.Focus()

	h := help.New()
	h.ShowAll = false

	return SessionModel{
		eng:       eng,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		board:     board,
		boardPath: boardPath,
		store:     store,
		cfg:       cfg,
		username:  username,
		keys:      DefaultKeyMap(),
		help:      h,
		nameInput: input,
		scores:    NewScoreboardModel(board, store, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init starts the frame loop.
func (m SessionModel) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and routes them by scene.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.scores, cmd = m.scores.Update(msg)
		return m, cmd

	case TickMsg:
		return m.handleFrame(time.Time(msg))

	case tea.KeyMsg:
		switch m.eng.Scene() {
		case engine.SceneMenu:
			return m.handleMenuKey(msg)
		case engine.SceneGame:
			return m.handleGameKey(msg)
		case engine.SceneGameOver:
			return m.handleGameOverKey(msg)
		case engine.SceneScores:
			return m.handleScoresKey(msg)
		}
	}

	return m, nil
}

// handleFrame feeds real elapsed time to the engine and schedules the next
// frame. Scenes outside the game ignore the delta.
func (m SessionModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastFrame.IsZero() {
		m.eng.Advance(now.Sub(m.lastFrame).Seconds())
	}
	m.lastFrame = now

	return m, tickCmd(m.cfg.TickRate)
}

func (m SessionModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		if m.menuCursor < len(menuItems)-1 {
			m.menuCursor++
		}
	case "enter", " ":
		return m.selectMenuItem(m.menuCursor)
	case "1":
		return m.selectMenuItem(0)
	case "2":
		return m.selectMenuItem(1)
	case "h":
		return m.selectMenuItem(2)
	}

	return m, nil
}

func (m SessionModel) selectMenuItem(idx int) (tea.Model, tea.Cmd) {
	switch idx {
	case 0:
		m.startRound(engine.ModeClassic)
	case 1:
		m.startRound(engine.ModeObstacles)
	case 2:
		m.scores = NewScoreboardModel(m.board, m.store, m.cfg.ScreenW, m.cfg.ScreenH)
		m.eng.ToScores()
	case 3:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// startRound seeds and launches a fresh round.
func (m *SessionModel) startRound(mode engine.Mode) {
	seed := m.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.eng.StartRound(mode, seed)
	m.saved = false
	m.nameInput.SetValue(m.username)
	m.nameInput.CursorEnd()
}

func (m SessionModel) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if dir, dash, ok := heading(msg); ok {
		m.eng.HandleHeading(dir)
		m.eng.SetDashing(dash)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.eng.TogglePause()
	case key.Matches(msg, m.keys.Debug):
		m.eng.ToggleDebug()
	case key.Matches(msg, m.keys.Back):
		m.eng.ToMenu()
	}

	return m, nil
}

func (m SessionModel) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		m.saveScore()
		m.scores = NewScoreboardModel(m.board, m.store, m.cfg.ScreenW, m.cfg.ScreenH)
		m.eng.ToScores()
		return m, nil

	case "esc":
		// Skip saving entirely.
		m.eng.ToMenu()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// saveScore records the finished run on the leaderboard and in history.
// Both writes are best effort; a failed save never blocks the session.
func (m *SessionModel) saveScore() {
	if m.saved {
		return
	}
	m.saved = true

	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		name = "anonymous"
	}

	m.board.Add(leaderboard.Entry{
		Name:     name,
		Score:    m.eng.Score(),
		MaxCombo: m.eng.MaxCombo(),
	})
	if m.boardPath != "" {
		//nolint:errcheck // Best-effort save
		leaderboard.Save(m.boardPath, m.board)
	}

	if m.store != nil {
		//nolint:errcheck // Best-effort save
		m.store.SaveRun(string(m.eng.Mode()), name, m.eng.Score(), m.eng.MaxCombo())
	}
}

func (m SessionModel) handleScoresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scores, cmd = m.scores.Update(msg)

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.WantsBack() {
		m.eng.ToMenu()
		return m, nil
	}

	return m, cmd
}

// View renders the scene.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.eng.Scene() {
	case engine.SceneMenu:
		return m.viewMenu()
	case engine.SceneScores:
		return m.scores.View()
	case engine.SceneGameOver:
		m.screen.Clear()
		m.eng.Render(m.screen)
		m.drawGameOver()
		return RenderScreen(m.screen)
	default:
		m.screen.Clear()
		m.eng.Render(m.screen)
		return RenderScreen(m.screen)
	}
}

func (m SessionModel) viewMenu() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))

	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(centerText("S N A K E", m.cfg.ScreenW)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a mode:", m.cfg.ScreenW))
	b.WriteString("\n\n")

	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	for i, item := range menuItems {
		cursor := "  "
		line := fmt.Sprintf("%s[%s] %s", cursor, item.key, item.label)
		if i == m.menuCursor {
			line = selectedStyle.Render(fmt.Sprintf("> [%s] %s", item.key, item.label))
		}
		b.WriteString(centerText(line, m.cfg.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(centerText("Enter: Select  |  Q: Quit", m.cfg.ScreenW)))
	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.cfg.ScreenW))

	return b.String()
}

// drawGameOver overlays the score summary and name prompt on the frozen
// playfield. The text input state lives in bubbles; only its value is
// painted into the cell buffer so the overlay composes with the field.
func (m SessionModel) drawGameOver() {
	w, h := m.screen.Width(), m.screen.Height()
	box := core.NewRect(w/2-22, h/2-5, 44, 10)
	m.screen.DrawBox(box, core.ColorBrightRed)
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		m.screen.DrawHLine(box.X+1, y, box.W-2, ' ', core.ColorDefault)
	}

	m.screen.DrawTextCentered(box.Y+1, "G A M E  O V E R", core.ColorBrightRed)
	m.screen.DrawTextCentered(box.Y+3,
		fmt.Sprintf("FINAL SCORE: %d   MAX COMBO: x%d", m.eng.Score(), m.eng.MaxCombo()),
		core.ColorBrightWhite)

	m.screen.DrawTextCentered(box.Y+5, "ENTER YOUR NAME:", core.ColorWhite)
	m.screen.DrawTextCentered(box.Y+6, m.nameInput.Value()+"_", core.ColorBrightYellow)

	m.screen.DrawTextCentered(box.Y+8, "[ENTER] SAVE    [ESC] SKIP", core.ColorGray)
}

// Run starts the local (non-SSH) session program.
func Run(eng *engine.Engine, board *leaderboard.Board, boardPath string,
	store *storage.Store, cfg core.RuntimeConfig, username string) error {
	model := NewSessionModel(eng, board, boardPath, store, cfg, username)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
