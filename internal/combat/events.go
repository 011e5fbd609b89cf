package combat

// Event is emitted by Session.Update for the presentation layer to turn into
// sounds and screen changes.
type Event interface {
	combatEvent()
}

// EnemyAttacked is emitted on ticks where the enemy fired.
type EnemyAttacked struct {
	Projectiles int
}

func (EnemyAttacked) combatEvent() {}

// EnemyDamaged is emitted for every hit that leaves the enemy below the
// damage cue threshold.
type EnemyDamaged struct {
	Health int
}

func (EnemyDamaged) combatEvent() {}

// EnemyDefeated is emitted once, on the hit that takes the enemy to zero.
type EnemyDefeated struct{}

func (EnemyDefeated) combatEvent() {}

// PlayerHit is emitted when an enemy bullet costs the player a life.
type PlayerHit struct {
	LivesLeft int
}

func (PlayerHit) combatEvent() {}

// SessionEnded is emitted once when the session leaves the running phase.
type SessionEnded struct {
	Won        bool
	FinalScore int
}

func (SessionEnded) combatEvent() {}
