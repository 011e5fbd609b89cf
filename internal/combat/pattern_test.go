package combat

import (
	"math"
	"testing"

	"github.com/vovakirdan/sky-fight/internal/core"
)

func TestPatternFiresOnlyOnItsInterval(t *testing.T) {
	origin := core.V(384, 672)
	target := core.V(384, 128)

	tests := []struct {
		pattern  Pattern
		interval int
		count    int
	}{
		{PatternRing, 15, 14},
		{PatternTwinRing, 20, 52},
		{PatternCrossfire, 10, 24},
	}

	for _, tc := range tests {
		t.Run(tc.pattern.String(), func(t *testing.T) {
			for tick := 0; tick <= 240; tick++ {
				got := len(tc.pattern.Spawn(origin, target, tick))
				expected := 0
				if tick%tc.interval == 0 {
					expected = tc.count
				}
				if got != expected {
					t.Fatalf("tick %d: spawned %d projectiles, expected %d", tick, got, expected)
				}
			}
		})
	}
}

func TestRingRotatesWithTick(t *testing.T) {
	origin := core.V(384, 672)
	target := core.V(384, 128) // Straight below: bearing 0

	shots := PatternRing.Spawn(origin, target, 15)
	if len(shots) != 14 {
		t.Fatalf("expected 14 projectiles, got %d", len(shots))
	}

	for i := -3; i <= 3; i++ {
		expected := float64(i)*30 - 10 // 15 / 1.5
		pair := shots[(i+3)*2 : (i+3)*2+2]
		for j, speed := range []float64{-250, 250} {
			p := pair[j]
			if math.Abs(p.Rotation-expected) > 1e-9 {
				t.Errorf("offset %d: rotation = %f, expected %f", i, p.Rotation, expected)
			}
			if p.Speed != speed {
				t.Errorf("offset %d: speed = %f, expected %f", i, p.Speed, speed)
			}
			if p.Radius != 6 || p.Kind != KindOrb {
				t.Errorf("offset %d: radius %f kind %v, expected 6 orb", i, p.Radius, p.Kind)
			}
			if p.Pos != origin {
				t.Errorf("offset %d: spawned at %+v, expected %+v", i, p.Pos, origin)
			}
			v := core.Heading(expected, speed)
			if math.Abs(p.Vel.X-v.X) > 1e-9 || math.Abs(p.Vel.Y-v.Y) > 1e-9 {
				t.Errorf("offset %d: velocity = %+v, expected %+v", i, p.Vel, v)
			}
		}
	}
}

func TestTwinRingCounterRotates(t *testing.T) {
	origin := core.V(300, 600)
	target := core.V(400, 500) // Bearing -45

	shots := PatternTwinRing.Spawn(origin, target, 40)
	if len(shots) != 52 {
		t.Fatalf("expected 52 projectiles, got %d", len(shots))
	}

	for i := -6; i <= 6; i++ {
		base := float64(i)*15 - 45
		group := shots[(i+6)*4 : (i+6)*4+4]
		for j, p := range group {
			var rot, radius float64
			var kind ProjectileKind
			if j < 2 {
				rot, radius, kind = base-20, 7, KindPearl
			} else {
				rot, radius, kind = base+20, 8, KindOval
			}
			if math.Abs(p.Rotation-rot) > 1e-9 {
				t.Errorf("offset %d shot %d: rotation = %f, expected %f", i, j, p.Rotation, rot)
			}
			if p.Radius != radius || p.Kind != kind {
				t.Errorf("offset %d shot %d: radius %f kind %v", i, j, p.Radius, p.Kind)
			}
		}
	}
}

func TestCrossfireFlanksAndSkipsCenter(t *testing.T) {
	origin := core.V(384, 672)
	target := core.V(384, 128)

	shots := PatternCrossfire.Spawn(origin, target, 30)
	if len(shots) != 24 {
		t.Fatalf("expected 24 projectiles, got %d", len(shots))
	}

	left, right := 0, 0
	for _, p := range shots {
		switch p.Pos.X {
		case 184:
			left++
		case 584:
			right++
		default:
			t.Errorf("unexpected emission point %+v", p.Pos)
		}
		if p.Rotation == 0 {
			t.Error("crossfire must not fire along the aim line")
		}
		if math.Abs(p.Speed) != 500 || p.Radius != 10 {
			t.Errorf("speed %f radius %f, expected ±500 and 10", p.Speed, p.Radius)
		}
	}
	if left != 12 || right != 12 {
		t.Errorf("left=%d right=%d, expected 12 each", left, right)
	}
}

func TestPatternLevelTargetIsFinite(t *testing.T) {
	// Emitter and target at the same height
	shots := PatternRing.Spawn(core.V(100, 300), core.V(500, 300), 0)
	for _, p := range shots {
		if math.IsNaN(p.Vel.X) || math.IsNaN(p.Vel.Y) {
			t.Fatalf("projectile velocity is NaN: %+v", p.Vel)
		}
	}
}

func TestProjectileOutOfBounds(t *testing.T) {
	f := Field{W: 768, H: 768}

	tests := []struct {
		name     string
		pos      core.Vec2
		expected bool
	}{
		{"inside", core.V(100, 100), false},
		{"on edge", core.V(768, 0), false},
		{"left", core.V(-0.1, 100), true},
		{"right", core.V(768.1, 100), true},
		{"below", core.V(100, -1), true},
		{"above", core.V(100, 769), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProjectile(KindOrb, tc.pos, 0, 0, 1, 6)
			if got := p.OutOfBounds(f); got != tc.expected {
				t.Errorf("OutOfBounds() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAdvanceDropsEscapedProjectiles(t *testing.T) {
	f := Field{W: 768, H: 768}
	shots := []*Projectile{
		NewProjectile(KindOrb, core.V(100, 100), 0, 100, 1, 6),
		NewProjectile(KindOrb, core.V(100, 760), 0, 100, 1, 6), // leaves through the top
		NewProjectile(KindOrb, core.V(200, 100), 180, 50, 1, 6),
	}

	kept := advance(shots, 0.5, f)
	if len(kept) != 2 {
		t.Fatalf("expected 2 projectiles to remain, got %d", len(kept))
	}
	if kept[0].Pos.Y != 150 {
		t.Errorf("first projectile y = %f, expected 150", kept[0].Pos.Y)
	}
	if math.Abs(kept[1].Pos.Y-75) > 1e-9 {
		t.Errorf("third projectile y = %f, expected 75", kept[1].Pos.Y)
	}
	if kept[1].Sprite != kept[1].Pos {
		t.Error("sprite must mirror position after integration")
	}
}
