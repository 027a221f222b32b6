package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/t2048"
)

// Model is the Bubble Tea model for a game of 2048.
// The engine is shared by pointer; the model only adds view state.
type Model struct {
	engine   *t2048.Engine
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	flashing bool // merged tiles are highlighted
	flashSeq int  // identifies the move that started the current flash
	quitting bool
}

// NewModel creates a model for engine and starts a fresh game.
func NewModel(engine *t2048.Engine, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	engine.Reset()

	return Model{
		engine: engine,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   DefaultKeyMap(),
		help:   h,
		config: cfg,
		logger: logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FlashDoneMsg:
		if msg.Seq == m.flashSeq {
			m.flashing = false
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. One direction key is one turn.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.logger.Info("restart", "score", m.engine.Score(), "best", m.engine.Best())
		m.engine.Reset()
		m.flashing = false
		return m, nil
	}

	dir, ok := m.keys.Direction(msg)
	if !ok {
		return m, nil
	}
	return m.move(dir)
}

func (m Model) move(dir t2048.Direction) (tea.Model, tea.Cmd) {
	if m.engine.Over() {
		return m, nil
	}

	turn := m.engine.Move(dir)
	if !turn.Changed {
		return m, nil
	}

	m.logger.Debug("move", "dir", dir, "delta", turn.ScoreDelta, "score", m.engine.Score())
	if turn.ReachedNewMilestone {
		m.logger.Info("win tile reached", "tile", m.engine.WinTile(), "score", m.engine.Score())
	}
	if turn.Over {
		m.logger.Info("game over", "score", m.engine.Score(), "best", m.engine.Best())
	}

	// Only merges produce a score delta, so it doubles as the merge signal.
	m.flashSeq++
	if turn.ScoreDelta == 0 || m.config.MergeFlash <= 0 {
		m.flashing = false
		return m, nil
	}
	m.flashing = true
	return m, flashCmd(m.config.MergeFlash, m.flashSeq)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	boardH := core.Clamp(m.config.ScreenH-lipgloss.Height(helpView), 0, m.config.ScreenH)

	m.screen.Resize(m.config.ScreenW, boardH)
	drawGame(m.screen, m.engine.State(), m.flashing)

	return RenderScreen(m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program for engine.
func Run(engine *t2048.Engine, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(engine, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
