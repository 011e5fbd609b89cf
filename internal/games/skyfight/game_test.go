package skyfight

import (
	"strings"
	"testing"

	"github.com/vovakirdan/sky-fight/internal/combat"
	"github.com/vovakirdan/sky-fight/internal/config"
	"github.com/vovakirdan/sky-fight/internal/core"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultSkyFightConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 120})
	return g
}

func screenContains(s *core.Screen, text string) bool {
	for y := range s.Height() {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}

func TestStepAdvancesSession(t *testing.T) {
	g := newGame(t)
	none := core.NewInputFrame()

	var attacked bool
	for range 15 {
		g.Step(none)
		for _, ev := range g.Events() {
			if _, ok := ev.(combat.EnemyAttacked); ok {
				attacked = true
			}
		}
	}

	if g.Snapshot().Tick != 15 {
		t.Errorf("tick = %d, expected 15", g.Snapshot().Tick)
	}
	if !attacked {
		t.Error("expected the enemy to attack on tick 15")
	}
	if g.State().GameOver {
		t.Error("game should still be running")
	}
}

func TestResetStartsFreshSession(t *testing.T) {
	g := newGame(t)
	for range 30 {
		g.Step(core.NewInputFrame(core.ActionFire))
	}
	first := g.Session()

	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 120})
	if g.Session() == first {
		t.Fatal("Reset should replace the session")
	}
	if g.Snapshot().Tick != 0 || g.State().Score != 0 {
		t.Errorf("fresh session not clean: %+v", g.Snapshot())
	}
}

func TestStateReportsLoss(t *testing.T) {
	cfg := config.DefaultSkyFightConfig()
	cfg.Player.Lives = -1
	g := New(cfg)

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Won {
		t.Errorf("state = %+v, expected a lost game", res.State)
	}
}

func TestProjection(t *testing.T) {
	p := NewProjection(combat.Field{W: 768, H: 768}, 100, 30)

	if p.Inner != core.NewRect(1, 1, 73, 28) {
		t.Fatalf("inner = %+v", p.Inner)
	}

	tests := []struct {
		name  string
		world core.Vec2
		x, y  int
		ok    bool
	}{
		{"bottom-left", core.V(0, 0), 1, 28, true},
		{"top-right", core.V(768, 768), 73, 1, true},
		{"center", core.V(384, 384), 37, 15, true},
		{"outside", core.V(-5, 100), 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := p.Cell(tc.world)
			if ok != tc.ok || x != tc.x || y != tc.y {
				t.Errorf("Cell(%+v) = (%d, %d, %v), expected (%d, %d, %v)", tc.world, x, y, ok, tc.x, tc.y, tc.ok)
			}
		})
	}
}

func TestRenderDrawsShipsAndHUD(t *testing.T) {
	g := newGame(t)
	scr := core.NewScreen(100, 30)
	g.Render(scr)

	for _, text := range []string{"ENEMY HP: 1000", "LEVEL: 1", "PLAYER LIVES: 3", "SCORE: 0", EnemyArt} {
		if !screenContains(scr, text) {
			t.Errorf("screen missing %q:\n%s", text, scr.String())
		}
	}

	proj := NewProjection(g.Session().Field(), 100, 30)
	x, y, _ := proj.Cell(g.Session().Player().Pos)
	if got := scr.Get(x, y); got != PlayerChar {
		t.Errorf("player cell = %q, expected %q", got, PlayerChar)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t)
	scr := core.NewScreen(30, 10)
	g.Render(scr)
	if !screenContains(scr, "too small") {
		t.Errorf("expected a size warning:\n%s", scr.String())
	}
}

func TestRenderGameOverPanel(t *testing.T) {
	cfg := config.DefaultSkyFightConfig()
	cfg.Player.Lives = -1
	g := New(cfg)
	g.Step(core.NewInputFrame())

	scr := core.NewScreen(100, 30)
	g.Render(scr)
	if !screenContains(scr, "You lost") {
		t.Errorf("expected the game over panel:\n%s", scr.String())
	}
	if !screenContains(scr, "PLAYER: dead") {
		t.Errorf("expected the HUD to show the player as dead")
	}
}

func TestGameOverLinesWin(t *testing.T) {
	lines := GameOverLines(combat.Snapshot{Won: true, Score: 3675000, TimeBonus: 675000})
	if lines[0] != "You win!" {
		t.Errorf("title = %q", lines[0])
	}
	if lines[1] != "Score 3000000 + time bonus 675000" {
		t.Errorf("breakdown = %q", lines[1])
	}
	if lines[2] != "Final score: 3675000" {
		t.Errorf("final = %q", lines[2])
	}
}
