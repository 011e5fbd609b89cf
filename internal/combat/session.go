package combat

import (
	"slices"

	"github.com/vovakirdan/sky-fight/internal/config"
	"github.com/vovakirdan/sky-fight/internal/core"
)

// Phase is the coarse lifecycle of a session.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseEnded
)

func (p Phase) String() string {
	if p == PhaseEnded {
		return "ended"
	}
	return "running"
}

// Session owns every live entity of one fight and advances them a tick at a
// time. It is not safe for concurrent use; the host calls Update from a
// single loop.
type Session struct {
	cfg   config.SkyFightConfig
	field Field

	player  *Player
	enemy   *Enemy
	players []*Player
	enemies []*Enemy // Alive enemies; the enemy record outlives its removal

	playerShots []*Projectile
	enemyShots  []*Projectile

	tick      int
	score     int
	timeBonus int
	phase     Phase
	won       bool
}

// NewSession creates a running session from the configuration.
func NewSession(cfg config.SkyFightConfig) *Session {
	s := &Session{
		cfg:       cfg,
		field:     Field{W: cfg.Arena.Width * cfg.Arena.FieldFraction, H: cfg.Arena.Height},
		timeBonus: cfg.Scoring.TimeBonus,
	}
	s.player = NewPlayer(s.PlayerSpawn(), cfg.Player)
	s.enemy = NewEnemy(s.EnemySpawn(), cfg.Enemy)
	s.players = []*Player{s.player}
	s.enemies = []*Enemy{s.enemy}
	return s
}

// PlayerSpawn returns the player's start and respawn point: a quarter of the
// way across the arena and a sixth of the way up.
func (s *Session) PlayerSpawn() core.Vec2 {
	cx, cy := s.center()
	return core.V(cx*s.cfg.Arena.FieldFraction, float64(int(cy)/3))
}

// EnemySpawn returns the enemy's start point near the top of the field.
func (s *Session) EnemySpawn() core.Vec2 {
	cx, cy := s.center()
	return core.V(cx*s.cfg.Arena.FieldFraction, float64(7*int(cy)/4))
}

func (s *Session) center() (float64, float64) {
	return float64(int(s.cfg.Arena.Width) / 2), float64(int(s.cfg.Arena.Height) / 2)
}

// Update advances the session by one tick and returns the events that
// happened in order. Once the session has ended it does nothing.
func (s *Session) Update(dt float64, in core.InputFrame) []Event {
	if s.phase != PhaseRunning {
		return nil
	}
	dt = max(dt, 0)

	var events []Event

	s.tick++
	if s.enemyAlive() {
		s.timeBonus = max(s.timeBonus-s.cfg.Scoring.TimeBonusDecay, 0)
	}

	for _, p := range s.players {
		p.Update(dt, in, s.field)
	}
	for _, e := range s.enemies {
		e.Update(dt)
	}

	s.playerShots = advance(s.playerShots, dt, s.field)
	s.enemyShots = advance(s.enemyShots, dt, s.field)

	for _, p := range s.players {
		s.playerShots = append(s.playerShots, p.Fire(in, s.tick)...)
	}
	fired := 0
	for _, e := range s.enemies {
		shots := e.Fire(s.player, s.tick)
		fired += len(shots)
		s.enemyShots = append(s.enemyShots, shots...)
	}
	if fired > 0 {
		events = append(events, EnemyAttacked{Projectiles: fired})
	}

	events = s.resolveCollisions(events)

	if (len(s.enemies) == 0 || s.player.Defeated()) && len(s.enemyShots) == 0 {
		events = append(events, s.end())
	}
	return events
}

// resolveCollisions applies hits in both directions.
//
// Each scan stops at its first resolved hit: the player-shot scan after the
// enemy dies, the enemy-shot scan after the player loses a life. Near misses
// are paid for every enemy shot examined before the scan stops, and are paid
// to an invincible player as well.
func (s *Session) resolveCollisions(events []Event) []Event {
	for i := 0; i < len(s.playerShots); i++ {
		shot := s.playerShots[i]
		if !s.enemyAlive() || !shot.Hits(s.enemy.Pos, s.enemy.Radius) {
			continue
		}
		s.enemy.Health--
		s.playerShots = slices.Delete(s.playerShots, i, i+1)
		i--
		s.score += s.cfg.Scoring.Hit

		if s.enemy.Health < s.cfg.Enemy.DamageCueBelow {
			events = append(events, EnemyDamaged{Health: s.enemy.Health})
		}
		if s.enemy.Health <= 0 {
			s.enemies = slices.DeleteFunc(s.enemies, func(e *Enemy) bool { return e == s.enemy })
			s.player.Invincibility = s.cfg.Player.VictoryInvincibility
			events = append(events, EnemyDefeated{})
			break
		}
	}

	if s.player.Defeated() {
		return events
	}
	for i := 0; i < len(s.enemyShots); i++ {
		shot := s.enemyShots[i]
		if shot.Hits(s.player.Pos, s.player.Radius) && s.player.Invincibility == 0 {
			s.player.Lives--
			s.enemyShots = slices.Delete(s.enemyShots, i, i+1)
			s.player.Invincibility = s.cfg.Player.RespawnInvincibility
			s.player.MoveTo(s.PlayerSpawn())
			events = append(events, PlayerHit{LivesLeft: s.player.Lives})
			break
		}
		if core.Distance(shot.Pos, s.player.Pos) < s.cfg.Scoring.NearMissRadius {
			s.score += s.cfg.Scoring.NearMiss
		}
	}
	return events
}

// end moves the session to its terminal phase. The time bonus is credited
// only when the enemy was destroyed.
func (s *Session) end() Event {
	s.phase = PhaseEnded
	s.won = !s.enemyAlive()
	if s.won {
		s.score += s.timeBonus
	}
	return SessionEnded{Won: s.won, FinalScore: s.score}
}

func (s *Session) enemyAlive() bool {
	return len(s.enemies) > 0
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Tick returns the number of updates applied while running.
func (s *Session) Tick() int { return s.tick }

// Score returns the score, including the time bonus once a won session ended.
func (s *Session) Score() int { return s.score }

// TimeBonus returns the remaining time bonus. It stops decaying once the
// enemy is destroyed.
func (s *Session) TimeBonus() int { return s.timeBonus }

// Won reports whether the session ended with the enemy destroyed.
func (s *Session) Won() bool { return s.won }

// EnemyAlive reports whether the enemy is still in the alive set.
func (s *Session) EnemyAlive() bool { return s.enemyAlive() }

// Player returns the player ship.
func (s *Session) Player() *Player { return s.player }

// Enemy returns the enemy record, including after it has been destroyed.
func (s *Session) Enemy() *Enemy { return s.enemy }

// PlayerShots returns the live player projectiles. The slice must not be modified.
func (s *Session) PlayerShots() []*Projectile { return s.playerShots }

// EnemyShots returns the live enemy projectiles. The slice must not be modified.
func (s *Session) EnemyShots() []*Projectile { return s.enemyShots }

// Field returns the play field bounds.
func (s *Session) Field() Field { return s.field }
