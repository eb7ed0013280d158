package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubble-breaker/internal/core"
	"github.com/vovakirdan/bubble-breaker/internal/storage"
)

// recordingGame is a game that records the frames it receives. Every frame
// with input counts as one turn worth 10 points, and the game ends after
// overAfter turns.
type recordingGame struct {
	id        string
	resets    int
	frames    []core.InputFrame
	ticks     int
	state     core.GameState
	overAfter int
	resized   [2]int
	highScore int
}

func (g *recordingGame) ID() string       { return g.id }
func (g *recordingGame) Title() string    { return "Recording" }
func (g *recordingGame) Controls() string { return "" }

func (g *recordingGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.frames = nil
	g.state = core.GameState{}
}

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	if in.Empty() || g.state.GameOver {
		return core.StepResult{State: g.state}
	}
	g.frames = append(g.frames, in.Clone())
	g.state.Turns++
	g.state.Score += 10
	g.state.Cleared += 5
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.overAfter > 0 && g.state.Turns >= g.overAfter {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state, Changed: true}
}

func (g *recordingGame) Render(*core.Screen)    {}
func (g *recordingGame) State() core.GameState  { return g.state }
func (g *recordingGame) Resize(w, h int)        { g.resized = [2]int{w, h} }
func (g *recordingGame) SetHighScore(score int) { g.highScore = score }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// send delivers msg to the model and returns the updated model.
func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, want GameModel", next)
	}
	return gm, cmd
}

func TestGameModelStartsGame(t *testing.T) {
	g := &recordingGame{id: "rec"}
	m := NewGameModel(g, nil, testConfig(), "", nil)

	if g.resets != 1 {
		t.Errorf("game reset %d times, want 1", g.resets)
	}
	if m.runID == "" {
		t.Error("a run id should be assigned")
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}
}

func TestGameModelKeysReachGameImmediately(t *testing.T) {
	g := &recordingGame{id: "rec"}
	m := NewGameModel(g, nil, testConfig(), "", nil)

	right := tea.KeyMsg{Type: tea.KeyRight}
	m, _ = send(t, m, right)
	m, _ = send(t, m, right)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(g.frames) != 3 {
		t.Fatalf("game received %d frames, want 3", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionRight) || !g.frames[1].Has(core.ActionRight) {
		t.Error("each key press should arrive in its own frame")
	}
	if !g.frames[2].Has(core.ActionConfirm) || g.frames[2].Has(core.ActionRight) {
		t.Error("frames should not carry earlier actions")
	}
	if m.State().Turns != 3 {
		t.Errorf("model state turns = %d, want 3", m.State().Turns)
	}
}

func TestGameModelUnboundKeyIgnored(t *testing.T) {
	g := &recordingGame{id: "rec"}
	m := NewGameModel(g, nil, testConfig(), "", nil)

	send(t, m, runeKey('z'))
	if len(g.frames) != 0 || g.ticks != 0 {
		t.Errorf("unbound key reached the game: frames=%d ticks=%d", len(g.frames), g.ticks)
	}
}

func TestGameModelMouse(t *testing.T) {
	g := &recordingGame{id: "rec"}
	m := NewGameModel(g, nil, testConfig(), "", nil)

	m, _ = send(t, m, tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	send(t, m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	send(t, m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if len(g.frames) != 1 {
		t.Fatalf("game received %d frames, want 1", len(g.frames))
	}
	clicks := g.frames[0].Clicks
	if len(clicks) != 1 || clicks[0] != (core.Click{X: 12, Y: 5}) {
		t.Errorf("clicks = %v, want [{12 5}]", clicks)
	}
}

func TestGameModelTickSendsEmptyFrame(t *testing.T) {
	g := &recordingGame{id: "rec"}
	m := NewGameModel(g, nil, testConfig(), "", nil)

	_, cmd := send(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if g.ticks != 1 || len(g.frames) != 0 {
		t.Errorf("ticks=%d frames=%d, want 1 and 0", g.ticks, len(g.frames))
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	g := &recordingGame{id: "rec"}
	m := NewGameModel(g, nil, testConfig(), "", nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resized != [2]int{100, 40} {
		t.Errorf("Resize got %v, want [100 40]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	g := &recordingGame{id: "rec", overAfter: 2}
	m := NewGameModel(g, store, testConfig(), "alice", nil)

	for range 4 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	m, _ = send(t, m, TickMsg{})

	if !m.State().GameOver {
		t.Fatal("game should be over")
	}

	scores, err := store.AllScores("rec")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}

	got := scores[0]
	if got.Score != 20 || got.Turns != 2 || got.BallsCleared != 10 ||
		got.Player != "alice" || got.Seed != 7 || got.RunID != m.runID {
		t.Errorf("saved entry = %+v", got)
	}
}

func TestGameModelQuitSavesScore(t *testing.T) {
	store := openStore(t)
	g := &recordingGame{id: "rec"}
	m := NewGameModel(g, store, testConfig(), "", nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if cmd == nil || !m.IsQuitting() {
		t.Fatal("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}

	high, _ := store.HighScore("rec")
	if high != 10 {
		t.Errorf("high score after quit = %d, want 10", high)
	}
}

func TestGameModelQuitWithoutScoreSavesNothing(t *testing.T) {
	store := openStore(t)
	g := &recordingGame{id: "rec"}
	m := NewGameModel(g, store, testConfig(), "", nil)

	send(t, m, runeKey('q'))

	scores, _ := store.AllScores("rec")
	if len(scores) != 0 {
		t.Errorf("saved %d scores for an empty game, want 0", len(scores))
	}
}

func TestGameModelRestart(t *testing.T) {
	store := openStore(t)
	g := &recordingGame{id: "rec", overAfter: 1}
	m := NewGameModel(g, store, testConfig(), "", nil)

	// Restart is ignored while playing
	m, _ = send(t, m, runeKey('r'))
	if g.resets != 1 {
		t.Fatalf("restart during play reset the game")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	firstRun := m.runID

	m, _ = send(t, m, runeKey('r'))
	if g.resets != 2 {
		t.Fatalf("resets = %d, want 2", g.resets)
	}
	if m.runID == firstRun {
		t.Error("a restarted game needs a new run id")
	}
	if m.State().GameOver {
		t.Error("state should be fresh after restart")
	}

	send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	scores, _ := store.AllScores("rec")
	if len(scores) != 2 {
		t.Errorf("saved %d scores over two games, want 2", len(scores))
	}
}

func TestGameModelLoadsHighScore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(storage.GameResult{GameID: "rec", Score: 77}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	g := &recordingGame{id: "rec"}
	NewGameModel(g, store, testConfig(), "", nil)

	if g.highScore != 77 {
		t.Errorf("high score = %d, want 77", g.highScore)
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	g := &recordingGame{id: "rec"}
	m := NewGameModel(g, nil, testConfig(), "", nil)

	m, _ = send(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("b should be ignored while playing")
	}

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b should return to the menu while paused")
	}
}
