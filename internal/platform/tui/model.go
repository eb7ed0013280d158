package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/bubble-breaker/internal/core"
	"github.com/vovakirdan/bubble-breaker/internal/registry"
	"github.com/vovakirdan/bubble-breaker/internal/storage"
)

// resizer is implemented by games that can follow a terminal resize
// without starting over.
type resizer interface {
	Resize(w, h int)
}

// highScorer is implemented by games that show the stored best score.
type highScorer interface {
	SetHighScore(score int)
}

// GameModel runs a single game: it feeds key and mouse events to the game
// as they arrive, keeps a tick running for animations and records the
// result once the game ends.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	logger     *log.Logger
	player     string
	runID      string
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current game has been recorded
}

// NewGameModel creates a game model and starts the first game.
// A nil store disables persistence; a nil logger discards log output.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		logger:     logger,
		player:     player,
	}
	m.start()
	return m
}

// start resets the game for a new run.
func (m *GameModel) start() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runID = uuid.NewString()
	m.scoreSaved = false
	m.inputFrame.Clear()

	if hs, ok := m.game.(highScorer); ok && m.store != nil {
		best, err := m.store.HighScore(m.game.ID())
		if err != nil {
			m.logger.Warn("could not load high score", "game", m.game.ID(), "error", err)
		}
		hs.SetHighScore(best)
	}

	m.logger.Info("game started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"run", m.runID,
		"player", m.player,
	)
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Actions reach the game immediately
// so that two quick key presses are never merged into one frame.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Back to menu (B when game over or paused)
	if m.keyMapper.IsBack(msg) && (m.gameState.GameOver || m.gameState.Paused) {
		m.saveScore()
		m.backToMenu = true
		return m, tea.Quit
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.config.Seed = time.Now().UnixNano()
			m.start()
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	m.step()
	return m, nil
}

// handleMouse forwards left clicks to the game.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.inputFrame.AddClick(msg.X, msg.Y)
	m.step()
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.gameState = m.game.State()

	return m, nil
}

// handleTick advances animations with an empty frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.step()
	return m, tickCmd(m.config.TickRate)
}

// step runs the game on the pending input and records a finished game.
func (m *GameModel) step() {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.logger.Info("game over",
			"game", m.game.ID(),
			"score", m.gameState.Score,
			"turns", m.gameState.Turns,
			"cleared", m.gameState.Cleared,
		)
		m.saveScore()
	}
}

// saveScore records the current game once. Games that never scored are
// not recorded.
func (m *GameModel) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	_, err := m.store.SaveScore(storage.GameResult{
		RunID:        m.runID,
		GameID:       m.game.ID(),
		Player:       m.player,
		Score:        m.gameState.Score,
		Turns:        m.gameState.Turns,
		BallsCleared: m.gameState.Cleared,
		Seed:         m.config.Seed,
	})
	if err != nil {
		// Best-effort save, the game continues regardless
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".breaker", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Outcome describes how a local game ended.
type Outcome struct {
	State      core.GameState
	BackToMenu bool // False when the player quit
}

// Run plays a game in the local terminal and reports how it ended.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) (Outcome, error) {
	model := NewGameModel(game, store, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks select and move balls
	)

	finalModel, err := p.Run()
	if err != nil {
		return Outcome{State: model.State()}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return Outcome{State: model.State()}, nil
	}
	return Outcome{State: m.State(), BackToMenu: m.BackToMenu()}, nil
}
