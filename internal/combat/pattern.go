package combat

import "github.com/vovakirdan/sky-fight/internal/core"

// Pattern is one of the enemy's bullet patterns. Each pattern is a pure
// function of emitter position, target position and tick.
type Pattern int

const (
	PatternRing      Pattern = iota + 1 // Rotating ring
	PatternTwinRing                     // Two counter-rotating rings
	PatternCrossfire                    // Bursts from both flanks
)

// AllPatterns lists every pattern in escalation order.
var AllPatterns = []Pattern{PatternRing, PatternTwinRing, PatternCrossfire}

func (p Pattern) String() string {
	switch p {
	case PatternRing:
		return "ring"
	case PatternTwinRing:
		return "twin-ring"
	case PatternCrossfire:
		return "crossfire"
	default:
		return "unknown"
	}
}

// Interval returns the tick period of the pattern. A pattern fires only on
// ticks divisible by its interval.
func (p Pattern) Interval() int {
	switch p {
	case PatternRing:
		return 15
	case PatternTwinRing:
		return 20
	case PatternCrossfire:
		return 10
	default:
		return 0
	}
}

// Ready reports whether the pattern fires on this tick.
func (p Pattern) Ready(tick int) bool {
	n := p.Interval()
	return n > 0 && tick%n == 0
}

// Spawn returns the projectiles the pattern emits from origin, aimed at
// target, on the given tick. It returns nil on ticks the pattern is idle.
func (p Pattern) Spawn(origin, target core.Vec2, tick int) []*Projectile {
	if !p.Ready(tick) {
		return nil
	}
	aim := core.Bearing(origin, target)
	t := float64(tick)

	switch p {
	case PatternRing:
		return spawnRing(origin, aim, t)
	case PatternTwinRing:
		return spawnTwinRing(origin, aim, t)
	case PatternCrossfire:
		return spawnCrossfire(origin, aim)
	default:
		return nil
	}
}

func spawnRing(origin core.Vec2, aim, t float64) []*Projectile {
	out := make([]*Projectile, 0, 14)
	for i := -3; i <= 3; i++ {
		rot := float64(i)*30 + aim - t/1.5
		out = append(out,
			NewProjectile(KindOrb, origin, rot, -250, 1, 6),
			NewProjectile(KindOrb, origin, rot, 250, 1, 6),
		)
	}
	return out
}

func spawnTwinRing(origin core.Vec2, aim, t float64) []*Projectile {
	out := make([]*Projectile, 0, 52)
	for i := -6; i <= 6; i++ {
		base := float64(i)*15 + aim
		out = append(out,
			NewProjectile(KindPearl, origin, base-t/2, -300, 1.2, 7),
			NewProjectile(KindPearl, origin, base-t/2, 300, 1.2, 7),
			NewProjectile(KindOval, origin, base+t/2, -325, 1.2, 8),
			NewProjectile(KindOval, origin, base+t/2, 325, 1.2, 8),
		)
	}
	return out
}

func spawnCrossfire(origin core.Vec2, aim float64) []*Projectile {
	left := origin.Add(core.V(-200, 0))
	right := origin.Add(core.V(200, 0))

	out := make([]*Projectile, 0, 24)
	for i := -3; i <= 3; i++ {
		if i == 0 {
			continue
		}
		rot := float64(i)*30 + aim
		out = append(out,
			NewProjectile(KindOval, left, rot, -500, 1.5, 10),
			NewProjectile(KindOval, left, rot, 500, 1.5, 10),
			NewProjectile(KindOval, right, rot, -500, 1.5, 10),
			NewProjectile(KindOval, right, rot, 500, 1.5, 10),
		)
	}
	return out
}
