package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the Sky Fight configuration.
// Search order: customPath -> ~/.skyfight/configs/skyfight.yaml -> ./configs/skyfight.yaml -> embedded default
//
// Every document is decoded on top of the built-in defaults, so a partial
// file only overrides the keys it names.
func Load(customPath string) (SkyFightConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSkyFightConfig(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultSkyFightConfig(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("skyfight.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "skyfight.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultSkyFightYAML)
	if err != nil {
		return DefaultSkyFightConfig(), nil
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (SkyFightConfig, error) {
	cfg := DefaultSkyFightConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c SkyFightConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %gx%g", c.Arena.Width, c.Arena.Height))
	}
	if c.Arena.FieldFraction <= 0 || c.Arena.FieldFraction > 1 {
		errs = append(errs, fmt.Errorf("arena.field_fraction must be in (0, 1], got %g", c.Arena.FieldFraction))
	}
	if c.Player.Lives < 0 {
		errs = append(errs, fmt.Errorf("player.lives must not be negative, got %d", c.Player.Lives))
	}
	if c.Player.FireInterval <= 0 {
		errs = append(errs, fmt.Errorf("player.fire_interval must be positive, got %d", c.Player.FireInterval))
	}
	if c.Enemy.Health <= 0 {
		errs = append(errs, fmt.Errorf("enemy.health must be positive, got %d", c.Enemy.Health))
	}
	if c.Enemy.SwayPeriod == 0 {
		errs = append(errs, errors.New("enemy.sway_period must not be zero"))
	}
	if c.Enemy.ThirdTierAt > c.Enemy.SecondTierAt {
		errs = append(errs, fmt.Errorf("enemy.third_tier_at (%d) must not exceed second_tier_at (%d)",
			c.Enemy.ThirdTierAt, c.Enemy.SecondTierAt))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyfight", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SkyFightConfig, preset DifficultyPreset) {
	cfg.Player.Lives = LivesForPreset(preset, cfg.Player.Lives)
}
