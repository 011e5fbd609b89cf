// Package combat implements the Sky Fight simulation: ships, projectiles,
// the enemy's bullet patterns and the per-tick session driver that resolves
// collisions and keeps score.
//
// The package has no knowledge of terminals, audio or persistence. Hosts
// feed it a core.InputFrame and a tick delta and react to the returned
// events.
package combat

import "github.com/vovakirdan/sky-fight/internal/core"

// Body is the motion state shared by ships and projectiles.
// Sprite is the position handed to the presentation layer; it mirrors Pos
// after every update call.
type Body struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Sprite core.Vec2
}

// NewBody places a body at rest at pos.
func NewBody(pos core.Vec2) Body {
	return Body{Pos: pos, Sprite: pos}
}

// Integrate advances the position by velocity*dt. Negative dt is treated as zero.
func (b *Body) Integrate(dt float64) {
	if dt > 0 {
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}
	b.Sprite = b.Pos
}

// MoveTo teleports the body and syncs the sprite.
func (b *Body) MoveTo(pos core.Vec2) {
	b.Pos = pos
	b.Sprite = pos
}

// Field is the rectangular play area in world units, origin bottom-left.
type Field struct {
	W, H float64
}

// Contains reports whether p lies inside the field, edges included.
func (f Field) Contains(p core.Vec2) bool {
	return p.X >= 0 && p.X <= f.W && p.Y >= 0 && p.Y <= f.H
}
