package combat

import (
	"math"

	"github.com/vovakirdan/sky-fight/internal/config"
	"github.com/vovakirdan/sky-fight/internal/core"
)

// Enemy is the boss ship. It weaves down the field and escalates its bullet
// patterns as its health drops.
type Enemy struct {
	Body
	Health      int
	StartHealth int
	Radius      float64

	cfg config.EnemyConfig
}

// NewEnemy creates an enemy at pos with full health.
func NewEnemy(pos core.Vec2, cfg config.EnemyConfig) *Enemy {
	e := &Enemy{
		Body:        NewBody(pos),
		Health:      cfg.Health,
		StartHealth: cfg.Health,
		Radius:      cfg.HitboxRadius,
		cfg:         cfg,
	}
	e.Vel = core.V(0, -cfg.DescentSpeed)
	return e
}

// Alive reports whether the enemy still has health.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// Update moves the enemy. The horizontal velocity depends on the sprite's
// height from the previous update, so the sway is tied to position rather
// than time.
func (e *Enemy) Update(dt float64) {
	sway := 0.0
	if e.cfg.SwayPeriod != 0 {
		sway = e.cfg.SwayAmplitude * math.Sin(e.Sprite.Y/e.cfg.SwayPeriod)
	}
	e.Vel = core.V(sway, -e.cfg.DescentSpeed)
	e.Integrate(dt)
}

// Patterns returns the active pattern set for the current health.
// It is derived on every call so it tracks damage immediately.
func (e *Enemy) Patterns() []Pattern {
	switch {
	case e.Health > e.cfg.SecondTierAt:
		return AllPatterns[:1]
	case e.Health > e.cfg.ThirdTierAt:
		return AllPatterns[:2]
	default:
		return AllPatterns[:3]
	}
}

// Tier returns the number of active patterns, shown as the level.
func (e *Enemy) Tier() int {
	return len(e.Patterns())
}

// Fire runs every active pattern against the player's position. It returns
// nothing once either ship is out of the fight.
func (e *Enemy) Fire(target *Player, tick int) []*Projectile {
	if !e.Alive() || target == nil || target.Defeated() {
		return nil
	}
	var shots []*Projectile
	for _, pattern := range e.Patterns() {
		shots = append(shots, pattern.Spawn(e.Pos, target.Pos, tick)...)
	}
	return shots
}
