package combat

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/sky-fight/internal/config"
	"github.com/vovakirdan/sky-fight/internal/core"
)

func TestIntegrateStationaryBody(t *testing.T) {
	for _, dt := range []float64{0, 1.0 / 120, 0.5, 100} {
		b := NewBody(core.V(12, 34))
		b.Integrate(dt)
		if b.Pos != core.V(12, 34) {
			t.Errorf("dt=%f: position moved to %+v", dt, b.Pos)
		}
		if b.Sprite != b.Pos {
			t.Errorf("dt=%f: sprite %+v does not mirror position %+v", dt, b.Sprite, b.Pos)
		}
	}
}

func TestIntegrateIgnoresNegativeDt(t *testing.T) {
	b := NewBody(core.V(10, 10))
	b.Vel = core.V(100, -100)
	b.Integrate(-1)
	if b.Pos != core.V(10, 10) {
		t.Errorf("negative dt moved the body to %+v", b.Pos)
	}
}

func TestPlayerFireSpread(t *testing.T) {
	cfg := config.DefaultSkyFightConfig().Player

	tests := []struct {
		name   string
		focus  bool
		spread float64
	}{
		{"normal", false, 15},
		{"focused", true, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(core.V(100, 100), cfg)
			in := core.NewInputFrame(core.ActionFire)
			if tc.focus {
				in.Set(core.ActionFocus)
			}

			shots := p.Fire(in, 16)
			if len(shots) != 3 {
				t.Fatalf("expected 3 shots, got %d", len(shots))
			}
			for i, s := range shots {
				offset := float64(i - 1)
				if s.Pos != core.V(100+10*offset, 100) {
					t.Errorf("shot %d at %+v", i, s.Pos)
				}
				if s.Rotation != offset*tc.spread {
					t.Errorf("shot %d rotation = %f, expected %f", i, s.Rotation, offset*tc.spread)
				}
				if s.Speed != 600 || s.Radius != 15 || s.Scale != 0.2 {
					t.Errorf("shot %d: speed %f radius %f scale %f", i, s.Speed, s.Radius, s.Scale)
				}
			}
		})
	}
}

func TestPlayerFireGating(t *testing.T) {
	cfg := config.DefaultSkyFightConfig().Player
	fire := core.NewInputFrame(core.ActionFire)

	p := NewPlayer(core.V(100, 100), cfg)
	for tick := 1; tick < 8; tick++ {
		if shots := p.Fire(fire, tick); len(shots) != 0 {
			t.Errorf("tick %d: fired %d shots off-cycle", tick, len(shots))
		}
	}
	if shots := p.Fire(core.NewInputFrame(), 8); len(shots) != 0 {
		t.Errorf("fired %d shots without the fire button", len(shots))
	}

	p.Lives = -1
	if shots := p.Fire(fire, 8); len(shots) != 0 {
		t.Errorf("defeated player fired %d shots", len(shots))
	}
}

func TestPlayerMovementSpeed(t *testing.T) {
	cfg := config.DefaultSkyFightConfig().Player
	f := Field{W: 768, H: 768}

	tests := []struct {
		name     string
		actions  []core.Action
		expected core.Vec2
	}{
		{"right", []core.Action{core.ActionRight}, core.V(460, 400)},
		{"focused right", []core.Action{core.ActionRight, core.ActionFocus}, core.V(430, 400)},
		{"up-left", []core.Action{core.ActionUp, core.ActionLeft}, core.V(340, 460)},
		{"left and right cancel", []core.Action{core.ActionLeft, core.ActionRight}, core.V(400, 400)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(core.V(400, 400), cfg)
			p.Update(0.1, core.NewInputFrame(tc.actions...), f)
			if math.Abs(p.Pos.X-tc.expected.X) > 1e-9 || math.Abs(p.Pos.Y-tc.expected.Y) > 1e-9 {
				t.Errorf("position = %+v, expected %+v", p.Pos, tc.expected)
			}
			if p.Sprite != p.Pos {
				t.Error("sprite must mirror position")
			}
		})
	}
}

// Every direction is bounded by the edge margin, including right, up and down.
func TestPlayerBoundsApplyToEveryDirection(t *testing.T) {
	cfg := config.DefaultSkyFightConfig().Player
	f := Field{W: 768, H: 768}

	tests := []struct {
		name   string
		start  core.Vec2
		action core.Action
		moves  bool
	}{
		{"left at margin", core.V(20, 400), core.ActionLeft, false},
		{"right at margin", core.V(748, 400), core.ActionRight, false},
		{"up at margin", core.V(400, 748), core.ActionUp, false},
		{"down at margin", core.V(400, 20), core.ActionDown, false},
		{"right away from margin", core.V(20, 400), core.ActionRight, true},
		{"down away from margin", core.V(400, 748), core.ActionDown, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(tc.start, cfg)
			p.Update(1.0/120, core.NewInputFrame(tc.action), f)
			moved := p.Pos != tc.start
			if moved != tc.moves {
				t.Errorf("moved = %v, expected %v (now at %+v)", moved, tc.moves, p.Pos)
			}
		})
	}
}

func TestPlayerInvincibilityOpacity(t *testing.T) {
	p := NewPlayer(core.V(100, 100), config.DefaultSkyFightConfig().Player)
	f := Field{W: 768, H: 768}
	none := core.NewInputFrame()

	p.Invincibility = 2
	p.Update(0, none, f)
	if p.Invincibility != 1 {
		t.Fatalf("invincibility = %d, expected 1", p.Invincibility)
	}
	if expected := uint8(127 * (math.Sin(1) + 1)); p.Opacity != expected {
		t.Errorf("opacity = %d, expected %d", p.Opacity, expected)
	}

	p.Update(0, none, f)
	if p.Invincibility != 0 || p.Opacity != 127 {
		t.Errorf("invincibility %d opacity %d, expected 0 and 127", p.Invincibility, p.Opacity)
	}

	p.Update(0, none, f)
	if p.Opacity != 255 {
		t.Errorf("opacity = %d, expected 255 once invincibility ran out", p.Opacity)
	}
}

func TestEnemyPatternTiers(t *testing.T) {
	cfg := config.DefaultSkyFightConfig().Enemy

	tests := []struct {
		health   int
		expected []Pattern
	}{
		{1000, []Pattern{PatternRing}},
		{751, []Pattern{PatternRing}},
		{750, []Pattern{PatternRing, PatternTwinRing}},
		{351, []Pattern{PatternRing, PatternTwinRing}},
		{350, []Pattern{PatternRing, PatternTwinRing, PatternCrossfire}},
		{1, []Pattern{PatternRing, PatternTwinRing, PatternCrossfire}},
	}

	for _, tc := range tests {
		e := NewEnemy(core.V(384, 672), cfg)
		e.Health = tc.health
		if got := e.Patterns(); !slices.Equal(got, tc.expected) {
			t.Errorf("health %d: patterns = %v, expected %v", tc.health, got, tc.expected)
		}
		if e.Tier() != len(tc.expected) {
			t.Errorf("health %d: tier = %d, expected %d", tc.health, e.Tier(), len(tc.expected))
		}
	}
}

func TestEnemyFireTracksHealth(t *testing.T) {
	cfg := config.DefaultSkyFightConfig()
	e := NewEnemy(core.V(384, 672), cfg.Enemy)
	p := NewPlayer(core.V(384, 128), cfg.Player)

	// Tick 60 is a firing tick for every pattern
	if got := len(e.Fire(p, 60)); got != 14 {
		t.Errorf("full health fired %d projectiles, expected 14", got)
	}
	e.Health = 300
	if got := len(e.Fire(p, 60)); got != 14+52+24 {
		t.Errorf("low health fired %d projectiles, expected 90", got)
	}
}

func TestEnemyFireFailsClosed(t *testing.T) {
	cfg := config.DefaultSkyFightConfig()

	e := NewEnemy(core.V(384, 672), cfg.Enemy)
	p := NewPlayer(core.V(384, 128), cfg.Player)
	e.Health = 0
	if shots := e.Fire(p, 60); len(shots) != 0 {
		t.Errorf("dead enemy fired %d projectiles", len(shots))
	}

	e.Health = 500
	p.Lives = -1
	if shots := e.Fire(p, 60); len(shots) != 0 {
		t.Errorf("enemy fired %d projectiles at a defeated player", len(shots))
	}
}

func TestEnemySwayFollowsHeight(t *testing.T) {
	e := NewEnemy(core.V(384, 672), config.DefaultSkyFightConfig().Enemy)
	e.Update(1)

	vx := 10 * math.Sin(672.0/10)
	if math.Abs(e.Pos.X-(384+vx)) > 1e-9 {
		t.Errorf("x = %f, expected %f", e.Pos.X, 384+vx)
	}
	if e.Pos.Y != 671 {
		t.Errorf("y = %f, expected 671", e.Pos.Y)
	}
	if e.Sprite != e.Pos {
		t.Error("sprite must mirror position")
	}
}
