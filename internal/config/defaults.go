package config

import (
	_ "embed"
)

//go:embed defaults/skyfight.yaml
var defaultSkyFightYAML []byte

// DefaultSkyFightConfig returns the built-in Sky Fight configuration.
func DefaultSkyFightConfig() SkyFightConfig {
	return SkyFightConfig{
		Arena: ArenaConfig{
			Width:         1024,
			Height:        768,
			FieldFraction: 0.75,
		},
		Player: PlayerConfig{
			Lives:                3,
			HitboxRadius:         5,
			Speed:                600,
			FocusSpeed:           300,
			EdgeMargin:           25,
			FireInterval:         8,
			Spread:               15,
			FocusSpread:          5,
			ShotOffset:           10,
			BulletSpeed:          600,
			BulletRadius:         15,
			RespawnInvincibility: 300,
			VictoryInvincibility: 1200,
		},
		Enemy: EnemyConfig{
			Health:         1000,
			HitboxRadius:   50,
			DescentSpeed:   1,
			SwayAmplitude:  10,
			SwayPeriod:     10,
			SecondTierAt:   750,
			ThirdTierAt:    350,
			DamageCueBelow: 250,
		},
		Scoring: ScoringConfig{
			Hit:            3000,
			NearMiss:       25,
			NearMissRadius: 50,
			TimeBonus:      750000,
			TimeBonusDecay: 75,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultSkyFightYAML
}
