package combat

import (
	"math"

	"github.com/vovakirdan/sky-fight/internal/config"
	"github.com/vovakirdan/sky-fight/internal/core"
)

// Player is the ship controlled by the input frame.
type Player struct {
	Body
	Lives         int // -1 means defeated
	Invincibility int // Ticks left during which enemy bullets pass through
	Radius        float64
	Opacity       uint8

	cfg config.PlayerConfig
}

// NewPlayer creates a player at pos with the configured lives.
func NewPlayer(pos core.Vec2, cfg config.PlayerConfig) *Player {
	return &Player{
		Body:    NewBody(pos),
		Lives:   cfg.Lives,
		Radius:  cfg.HitboxRadius,
		Opacity: 255,
		cfg:     cfg,
	}
}

// Defeated reports whether the player has run out of lives.
func (p *Player) Defeated() bool {
	return p.Lives < 0
}

// Update moves the player according to the held directions and ticks down
// invincibility. Each direction only applies while the ship is more than the
// edge margin away from the matching side of the field.
func (p *Player) Update(dt float64, in core.InputFrame, f Field) {
	speed := p.cfg.Speed
	if in.Has(core.ActionFocus) {
		speed = p.cfg.FocusSpeed
	}
	margin := p.cfg.EdgeMargin

	var vel core.Vec2
	if in.Has(core.ActionLeft) && p.Pos.X > margin {
		vel.X -= speed
	}
	if in.Has(core.ActionRight) && p.Pos.X < f.W-margin {
		vel.X += speed
	}
	if in.Has(core.ActionUp) && p.Pos.Y < f.H-margin {
		vel.Y += speed
	}
	if in.Has(core.ActionDown) && p.Pos.Y > margin {
		vel.Y -= speed
	}
	p.Vel = vel
	p.Integrate(dt)

	if p.Invincibility > 0 {
		p.Invincibility--
		p.Opacity = uint8(127 * (math.Sin(float64(p.Invincibility)) + 1))
	} else {
		p.Opacity = 255
	}
}

// Fire returns the shots fired on this tick: three lasers spread around the
// nose of the ship while fire is held on a firing tick, nothing otherwise.
func (p *Player) Fire(in core.InputFrame, tick int) []*Projectile {
	if p.Defeated() || !in.Has(core.ActionFire) {
		return nil
	}
	if p.cfg.FireInterval <= 0 || tick%p.cfg.FireInterval != 0 {
		return nil
	}

	spread := p.cfg.Spread
	if in.Has(core.ActionFocus) {
		spread = p.cfg.FocusSpread
	}

	shots := make([]*Projectile, 0, 3)
	for i := -1; i <= 1; i++ {
		pos := p.Pos.Add(core.V(p.cfg.ShotOffset*float64(i), 0))
		shots = append(shots, NewProjectile(KindLaser, pos, float64(i)*spread, p.cfg.BulletSpeed, 0.2, p.cfg.BulletRadius))
	}
	return shots
}
