package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-fight/internal/audio"
	"github.com/vovakirdan/sky-fight/internal/combat"
	"github.com/vovakirdan/sky-fight/internal/config"
	"github.com/vovakirdan/sky-fight/internal/core"
	"github.com/vovakirdan/sky-fight/internal/games/skyfight"
	"github.com/vovakirdan/sky-fight/internal/highscore"
	"github.com/vovakirdan/sky-fight/internal/storage"
)

// Phase is the screen the application is showing.
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseNameEntry
	PhaseTopScores
	PhaseMoreMenu
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "MAIN_MENU"
	case PhasePlaying:
		return "PLAYING"
	case PhasePaused:
		return "PAUSED"
	case PhaseGameOver:
		return "GAME_OVER"
	case PhaseNameEntry:
		return "NAME_ENTRY"
	case PhaseTopScores:
		return "TOP_SCORES"
	case PhaseMoreMenu:
		return "MORE_MENU"
	default:
		return "UNKNOWN"
	}
}

// Main menu and pause menu entries, in display order.
const (
	mainPlay = iota
	mainScores
	mainMore
	mainExit
)

const (
	pauseContinue = iota
	pauseQuit
)

// Options wires the application to its configuration and persistence.
type Options struct {
	Runtime    core.RuntimeConfig
	Game       config.SkyFightConfig
	Difficulty string
	Scores     *highscore.Table // Top-5 table; nil disables it
	Store      *storage.Store   // Session history; nil disables it
	Audio      *audio.Player    // Nil plays no sound
	PlayerName string           // Offered as the default high-score name
	HoldWindow int              // Ticks a key press stays held; 0 derives it from TickRate
	Logger     *log.Logger
}

// App is the Bubble Tea model for the whole Sky Fight application.
type App struct {
	opts      Options
	runtime   core.RuntimeConfig
	game      *skyfight.Game
	screen    *core.Screen
	keys      *KeyMapper
	held      *HeldKeys
	logger    *log.Logger
	phase     Phase
	mainMenu  Menu
	pauseMenu Menu
	board     ScoreboardModel
	nameEntry NameEntry
	gameState core.GameState
	ticking   bool // A tick command is in flight
	quitting  bool
}

// NewApp creates the application on the main menu.
func NewApp(opts Options) App {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	window := opts.HoldWindow
	if window <= 0 {
		window = HoldWindow(DefaultHoldDuration, rt.TickRate)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	game := skyfight.New(opts.Game)
	game.Reset(rt)

	subtitle := "arrows move  shift: focus  z: fire"
	if opts.Difficulty != "" {
		subtitle = opts.Difficulty + "  |  " + subtitle
	}

	return App{
		opts:      opts,
		runtime:   rt,
		game:      game,
		screen:    core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:      NewKeyMapper(),
		held:      NewHeldKeys(window),
		logger:    logger,
		phase:     PhaseMainMenu,
		mainMenu:  NewMenu("S K Y   F I G H T", "PLAY", "SCORES", "MORE", "EXIT").WithSubtitle(subtitle),
		pauseMenu: NewMenu("PAUSED", "CONTINUE", "QUIT"),
	}
}

// Init starts the application. Ticks only run while playing.
func (m App) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
			return m, nil
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.phase == PhaseNameEntry {
		var cmd tea.Cmd
		m.nameEntry, cmd = m.nameEntry.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches keyboard input by phase.
func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case PhasePlaying:
		return m.handlePlayingKey(msg)
	case PhaseNameEntry:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		var cmd tea.Cmd
		m.nameEntry, cmd = m.nameEntry.Update(msg)
		if m.nameEntry.Done() {
			m.submitName()
		}
		return m, cmd
	case PhaseTopScores:
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg)
		switch {
		case m.board.IsQuitting():
			return m.quit()
		case m.board.IsGoingBack():
			m.phase = PhaseMainMenu
		}
		return m, cmd
	}

	action := m.keys.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		return m.quit()
	}

	switch m.phase {
	case PhaseMainMenu:
		switch m.mainMenu.Handle(action) {
		case mainPlay:
			return m.startGame()
		case mainScores:
			m.board = NewScoreboardModel(m.opts.Scores, m.opts.Store, m.runtime.ScreenW, m.runtime.ScreenH)
			m.phase = PhaseTopScores
		case mainMore:
			m.phase = PhaseMoreMenu
		case mainExit:
			return m.quit()
		}

	case PhasePaused:
		if action == MenuActionBack || msg.String() == "p" {
			return m.resume()
		}
		switch m.pauseMenu.Handle(action) {
		case pauseContinue:
			return m.resume()
		case pauseQuit:
			m.logger.Info("session abandoned", "tick", m.game.Snapshot().Tick, "score", m.gameState.Score)
			m.newGame()
			m.phase = PhaseMainMenu
		}

	case PhaseGameOver:
		if action == MenuActionSelect || action == MenuActionBack {
			m.finishSession()
		}

	case PhaseMoreMenu:
		if action == MenuActionSelect || action == MenuActionBack {
			m.phase = PhaseMainMenu
		}
	}

	return m, nil
}

// handlePlayingKey feeds a key press to the held-key tracker.
func (m App) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys.MapGameKey(msg)
	switch {
	case k.Quit:
		return m.quit()
	case k.Pause:
		m.held.Release()
		m.pauseMenu.Reset()
		m.phase = PhasePaused
		return m, nil
	case k.ToggleAutoFire:
		m.logger.Debug("auto-fire toggled", "on", m.held.ToggleAutoFire())
	case k.ToggleFocusLock:
		m.logger.Debug("precision lock toggled", "on", m.held.ToggleFocusLock())
	}
	m.held.Press(k.Actions...)
	return m, nil
}

// handleResize processes window resize events. The session keeps running;
// only the projection changes.
func (m App) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	return m, cmd
}

// handleTick advances the simulation by one tick while playing.
func (m App) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != PhasePlaying {
		m.ticking = false
		return m, nil
	}

	result := m.game.Step(m.held.Frame())
	m.held.Advance()
	m.gameState = result.State

	events := m.game.Events()
	m.opts.Audio.HandleEvents(events)
	for _, ev := range events {
		if end, ok := ev.(combat.SessionEnded); ok {
			m.logger.Info("session ended", "won", end.Won, "score", end.FinalScore)
		}
	}

	if m.gameState.GameOver {
		m.phase = PhaseGameOver
		m.ticking = false
		m.held.Release()
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate)
}

// startGame enters PLAYING from the main menu.
func (m App) startGame() (tea.Model, tea.Cmd) {
	m.phase = PhasePlaying
	m.logger.Info("session started", "difficulty", m.opts.Difficulty, "lives", m.opts.Game.Player.Lives)
	return m.ensureTicking()
}

// resume returns from the pause menu.
func (m App) resume() (tea.Model, tea.Cmd) {
	m.phase = PhasePlaying
	return m.ensureTicking()
}

func (m App) ensureTicking() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.runtime.TickRate)
}

func (m App) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// newGame replaces the session with a fresh one.
func (m *App) newGame() {
	m.runtime.Seed = time.Now().UnixNano()
	m.game.Reset(m.runtime)
	m.gameState = core.GameState{}
	m.held.Release()
}

// finishSession leaves GAME_OVER: the session goes into the history and a
// qualifying score moves on to name entry.
func (m *App) finishSession() {
	snap := m.game.Snapshot()
	m.recordSession(snap)

	if snap.Score > 0 && m.opts.Scores != nil && m.opts.Scores.Qualifies(snap.Score) {
		m.nameEntry = NewNameEntry(m.opts.PlayerName, snap.Score)
		m.phase = PhaseNameEntry
		return
	}

	m.newGame()
	m.phase = PhaseMainMenu
}

// recordSession saves a finished session to the history store.
func (m *App) recordSession(snap combat.Snapshot) {
	if m.opts.Store == nil {
		return
	}

	bonus := 0
	if snap.Won {
		bonus = snap.TimeBonus
	}
	rec := storage.SessionRecord{
		Player:      m.playerName(),
		Score:       snap.Score,
		TimeBonus:   bonus,
		Won:         snap.Won,
		Ticks:       snap.Tick,
		LivesLeft:   max(snap.PlayerLives, 0),
		EnemyHealth: max(snap.EnemyHealth, 0),
		Difficulty:  m.opts.Difficulty,
	}
	if _, err := m.opts.Store.SaveSession(rec); err != nil {
		m.logger.Warn("could not save session", "error", err)
	}
}

// submitName inserts the finished name entry into the top-5 table.
func (m *App) submitName() {
	name, score := m.nameEntry.Name(), m.nameEntry.Score()
	rank, err := m.opts.Scores.Insert(name, score)
	switch {
	case errors.Is(err, highscore.ErrNotQualified):
		m.logger.Info("score no longer qualifies", "score", score)
	case err != nil:
		m.logger.Warn("could not save high score", "error", err)
	default:
		m.logger.Info("high score", "name", name, "score", score, "rank", rank+1)
	}

	m.newGame()
	m.phase = PhaseMainMenu
}

func (m App) playerName() string {
	if name := strings.TrimSpace(m.opts.PlayerName); name != "" {
		return name
	}
	return highscore.DefaultName
}

// saveScreenshot writes the current game screen to ~/.skyfight/screenshots.
func (m *App) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".skyfight", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current phase.
func (m App) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.runtime.ScreenW, m.runtime.ScreenH
	switch m.phase {
	case PhasePlaying, PhaseGameOver:
		m.screen.Clear()
		m.game.Render(m.screen)
		m.drawToggles()
		return RenderScreen(m.screen)
	case PhasePaused:
		return m.pauseMenu.View(w, h)
	case PhaseNameEntry:
		return m.nameEntry.View(w, h)
	case PhaseTopScores:
		return m.board.View()
	case PhaseMoreMenu:
		return moreView(w, h)
	default:
		return m.mainMenu.View(w, h)
	}
}

// drawToggles marks active auto-fire and precision lock under the HUD.
func (m App) drawToggles() {
	w, h := m.screen.Width(), m.screen.Height()
	if w < skyfight.MinScreenW || h < skyfight.MinScreenH {
		return
	}
	x := skyfight.NewProjection(m.game.Session().Field(), w, h).Inner.W + 3
	y := h - 3
	if m.held.AutoFire() {
		m.screen.DrawTextColored(x, y, "[AUTO]", core.ColorCyan)
	}
	if m.held.FocusLock() {
		m.screen.DrawTextColored(x, y+1, "[FOCUS]", core.ColorCyan)
	}
}

const helpText = `Move your ship with the arrow keys or WASD.
Shoot with z or space. Hold shift to concentrate
your bullets at the cost of speed.
x toggles auto-fire, c locks the precision mode.
p or esc pauses. Get the highest score!`

const creditsText = `Sky Fight, a terminal bullet-hell duel.
Sound cues are synthesized at runtime.`

// moreView renders the help and credits screen.
func moreView(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("HELP"))
	b.WriteString("\n\n")
	b.WriteString(itemStyle.Render(helpText))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("CREDITS"))
	b.WriteString("\n\n")
	b.WriteString(itemStyle.Render(creditsText))
	b.WriteString("\n\n")
	b.WriteString(selectedStyle.Render("  BACK  "))
	return place(width, height, b.String())
}

// Phase returns the screen being shown.
func (m App) Phase() Phase {
	return m.phase
}

// Game returns the running game.
func (m App) Game() *skyfight.Game {
	return m.game
}

// Held returns the held-key tracker.
func (m App) Held() *HeldKeys {
	return m.held
}

// Run starts the Bubble Tea program and blocks until the player exits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewApp(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
