package combat

import "math"

// Snapshot is the HUD read model of a session.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick          int
	Score         int
	TimeBonus     int
	EnemyHealth   int
	EnemyAlive    bool
	Tier          int // Active pattern count, shown as LEVEL
	PlayerLives   int
	Invincibility int
	PlayerX       float64
	PlayerY       float64
	EnemyX        float64
	EnemyY        float64
	PlayerShots   int
	EnemyShots    int
	Phase         Phase
	Won           bool
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:          s.tick,
		Score:         s.score,
		TimeBonus:     s.timeBonus,
		EnemyHealth:   s.enemy.Health,
		EnemyAlive:    s.enemyAlive(),
		Tier:          s.enemy.Tier(),
		PlayerLives:   s.player.Lives,
		Invincibility: s.player.Invincibility,
		PlayerX:       s.player.Pos.X,
		PlayerY:       s.player.Pos.Y,
		EnemyX:        s.enemy.Pos.X,
		EnemyY:        s.enemy.Pos.Y,
		PlayerShots:   len(s.playerShots),
		EnemyShots:    len(s.enemyShots),
		Phase:         s.phase,
		Won:           s.won,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TimeBonus)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyHealth)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Tier)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerLives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Invincibility)    //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.EnemyX)
	h = h*31 + math.Float64bits(snap.EnemyY)
	h = h*31 + uint64(snap.PlayerShots) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyShots)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation
	if snap.EnemyAlive {
		h = h*31 + 1
	}
	if snap.Won {
		h = h*31 + 2
	}
	return h
}
