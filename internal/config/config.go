// Package config provides YAML-based game configuration loading and
// difficulty presets for Sky Fight.
package config

// SkyFightConfig contains all tunable parameters of a combat session.
type SkyFightConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// ArenaConfig defines the world size. The play field is the left
// FieldFraction of the width; the rest belongs to the HUD.
type ArenaConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	FieldFraction float64 `yaml:"field_fraction"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Lives                int     `yaml:"lives"`
	HitboxRadius         float64 `yaml:"hitbox_radius"`
	Speed                float64 `yaml:"speed"`
	FocusSpeed           float64 `yaml:"focus_speed"`
	EdgeMargin           float64 `yaml:"edge_margin"`
	FireInterval         int     `yaml:"fire_interval"` // Fire when tick % interval == 0
	Spread               float64 `yaml:"spread"`        // Degrees between side shots
	FocusSpread          float64 `yaml:"focus_spread"`
	ShotOffset           float64 `yaml:"shot_offset"` // Lateral spacing of the three shots
	BulletSpeed          float64 `yaml:"bullet_speed"`
	BulletRadius         float64 `yaml:"bullet_radius"`
	RespawnInvincibility int     `yaml:"respawn_invincibility"`
	VictoryInvincibility int     `yaml:"victory_invincibility"`
}

// EnemyConfig defines the boss ship.
type EnemyConfig struct {
	Health         int     `yaml:"health"`
	HitboxRadius   float64 `yaml:"hitbox_radius"`
	DescentSpeed   float64 `yaml:"descent_speed"`
	SwayAmplitude  float64 `yaml:"sway_amplitude"`
	SwayPeriod     float64 `yaml:"sway_period"` // Horizontal velocity = amplitude * sin(y / period)
	SecondTierAt   int     `yaml:"second_tier_at"`
	ThirdTierAt    int     `yaml:"third_tier_at"`
	DamageCueBelow int     `yaml:"damage_cue_below"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	Hit            int     `yaml:"hit"`
	NearMiss       int     `yaml:"near_miss"`
	NearMissRadius float64 `yaml:"near_miss_radius"`
	TimeBonus      int     `yaml:"time_bonus"`
	TimeBonusDecay int     `yaml:"time_bonus_decay"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// LivesForPreset returns the starting lives for a difficulty preset.
func LivesForPreset(preset DifficultyPreset, fallback int) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 1
	default:
		return fallback
	}
}
