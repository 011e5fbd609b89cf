// Package skyfight adapts a combat session to the platform's game loop:
// fixed-tick stepping, terminal rendering and the score/game-over state.
package skyfight

import (
	"github.com/vovakirdan/sky-fight/internal/combat"
	"github.com/vovakirdan/sky-fight/internal/config"
	"github.com/vovakirdan/sky-fight/internal/core"
)

// Minimum terminal size the field and HUD fit into.
const (
	MinScreenW = 48
	MinScreenH = 16
)

// Game runs one Sky Fight session at a time.
type Game struct {
	cfg     config.SkyFightConfig
	runtime core.RuntimeConfig
	session *combat.Session
	events  []combat.Event // Events produced by the last Step
	state   core.GameState
}

// New creates a game that builds its sessions from cfg.
func New(cfg config.SkyFightConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyfight"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Fight"
}

// Reset discards the current session and starts a fresh one.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.session = combat.NewSession(g.cfg)
	g.events = nil
	g.state = core.GameState{}
}

// Resize updates the terminal dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step advances the session by one tick of 1/TickRate seconds.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.session.Update(g.runtime.TickDuration(), in)
	g.state = core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Phase() == combat.PhaseEnded,
		Won:      g.session.Won(),
	}
	return core.StepResult{State: g.state}
}

// Events returns the combat events produced by the last Step.
func (g *Game) Events() []combat.Event {
	return g.events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Snapshot returns the HUD read model of the running session.
func (g *Game) Snapshot() combat.Snapshot {
	return g.session.Snapshot()
}

// Session exposes the underlying session.
func (g *Game) Session() *combat.Session {
	return g.session
}
