package combat

import "github.com/vovakirdan/sky-fight/internal/core"

// ProjectileKind selects the visual used for a projectile.
type ProjectileKind int

const (
	KindLaser ProjectileKind = iota // Player shot
	KindOrb                         // Small round enemy bullet
	KindPearl                       // Bright round enemy bullet
	KindOval                        // Elongated enemy bullet
)

func (k ProjectileKind) String() string {
	switch k {
	case KindLaser:
		return "laser"
	case KindOrb:
		return "orb"
	case KindPearl:
		return "pearl"
	case KindOval:
		return "oval"
	default:
		return "unknown"
	}
}

// Projectile is a body with a fixed hitbox that lives until it leaves the
// field or takes part in a hit.
type Projectile struct {
	Body
	Kind     ProjectileKind
	Rotation float64 // Degrees from straight up, clockwise positive
	Speed    float64 // Signed; negative speeds fly the opposite way
	Scale    float64 // Visual scale only
	Radius   float64 // Hitbox radius
}

// NewProjectile creates a projectile at pos flying at rotation degrees with
// the given signed speed.
func NewProjectile(kind ProjectileKind, pos core.Vec2, rotation, speed, scale, radius float64) *Projectile {
	p := &Projectile{
		Body:     NewBody(pos),
		Kind:     kind,
		Rotation: rotation,
		Speed:    speed,
		Scale:    scale,
		Radius:   radius,
	}
	p.Vel = core.Heading(rotation, speed)
	return p
}

// OutOfBounds reports whether the projectile has left the field.
func (p *Projectile) OutOfBounds(f Field) bool {
	return !f.Contains(p.Pos)
}

// Hits reports whether the projectile overlaps a circular hitbox.
func (p *Projectile) Hits(center core.Vec2, radius float64) bool {
	return core.Distance(p.Pos, center) < p.Radius+radius
}

// advance integrates every projectile and drops the ones that left the field.
// The slice is compacted in place.
func advance(shots []*Projectile, dt float64, f Field) []*Projectile {
	kept := shots[:0]
	for _, p := range shots {
		p.Integrate(dt)
		if p.OutOfBounds(f) {
			continue
		}
		kept = append(kept, p)
	}
	clear(shots[len(kept):])
	return kept
}
